package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect the client configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration (secrets masked)",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Load and verify the configuration",
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return render(c, flattenConfig(config.Sanitize(cfg)))
}

func configValidate(c *cli.Context) error {
	if _, err := loadConfig(c); err != nil {
		return err
	}
	notice(c, "Configuration OK")
	return nil
}

// flattenConfig keys every setting by its dotted config path.
func flattenConfig(cfg *config.ClientConfig) map[string]string {
	return map[string]string{
		"api.mode":                     cfg.API.Mode,
		"api.base_url":                 cfg.API.BaseURL,
		"sources.wallets":              cfg.Sources.Wallets,
		"sources.transactions":         cfg.Sources.Transactions,
		"storage.dir":                  cfg.Storage.Dir,
		"storage.encryption_key":       cfg.Storage.EncryptionKey,
		"http.timeout":                 cfg.HTTP.Timeout.String(),
		"http.max_requests_per_second": formatFloat(cfg.HTTP.MaxRequestsPerSecond),
		"http.burst":                   formatInt(cfg.HTTP.Burst),
		"http.ca_file":                 cfg.HTTP.CAFile,
		"auth.mock_delay":              cfg.Auth.MockDelay.String(),
		"log.level":                    cfg.Log.Level,
		"log.format":                   cfg.Log.Format,
	}
}
