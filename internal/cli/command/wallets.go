package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
)

// WalletsCommand returns the wallets command.
func WalletsCommand() *cli.Command {
	return &cli.Command{
		Name:    "wallets",
		Aliases: []string{"wallet"},
		Usage:   "Manage wallets",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List wallets",
				Action:  walletList,
			},
			{
				Name:      "get",
				Usage:     "Show one wallet",
				ArgsUsage: "<wallet-id>",
				Action:    walletGet,
			},
			{
				Name:   "favorites",
				Usage:  "List favorite wallets in display order",
				Action: walletFavorites,
			},
			{
				Name:      "set-favorite",
				Usage:     "Mark a wallet as favorite, or unmark it with --remove",
				ArgsUsage: "<wallet-id>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "order", Usage: "Position among favorites"},
					&cli.BoolFlag{Name: "remove", Usage: "Remove from favorites"},
				},
				Action: walletSetFavorite,
			},
			{
				Name:  "create",
				Usage: "Create a wallet",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Wallet name", Required: true},
					&cli.StringFlag{Name: "type", Usage: "BANK_CASH, INVESTMENTS or CRYPTO", Value: string(domain.WalletTypeBankCash)},
					&cli.StringFlag{Name: "currency", Usage: "ISO currency code"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "icon", Usage: "Icon name"},
					&cli.StringFlag{Name: "color", Usage: "Color, e.g. #4CAF50"},
				},
				Action: walletCreate,
			},
			{
				Name:      "update",
				Usage:     "Update wallet fields",
				ArgsUsage: "<wallet-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Wallet name"},
					&cli.StringFlag{Name: "type", Usage: "BANK_CASH, INVESTMENTS or CRYPTO"},
					&cli.StringFlag{Name: "currency", Usage: "ISO currency code"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "icon", Usage: "Icon name"},
					&cli.StringFlag{Name: "color", Usage: "Color"},
					&cli.BoolFlag{Name: "favorite", Usage: "Favorite flag"},
					&cli.IntFlag{Name: "favorite-order", Usage: "Position among favorites"},
				},
				Action: walletUpdate,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a wallet",
				ArgsUsage: "<wallet-id>",
				Action:    walletDelete,
			},
			{
				Name:      "transfer",
				Usage:     "Hand a wallet over to another wallet",
				ArgsUsage: "<wallet-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "Target wallet ID", Required: true},
				},
				Action: walletTransfer,
			},
		},
	}
}

func walletList(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	wallets, err := env.Services.Wallets.List(c.Context)
	if err != nil {
		return err
	}
	return render(c, wallets)
}

func walletGet(c *cli.Context) error {
	id, err := requireArg(c, "wallet ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	wallet, err := env.Services.Wallets.Get(c.Context, id)
	if err != nil {
		return err
	}
	return render(c, wallet)
}

func walletFavorites(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	wallets, err := env.Services.Wallets.Favorites(c.Context)
	if err != nil {
		return err
	}
	return render(c, wallets)
}

func walletSetFavorite(c *cli.Context) error {
	id, err := requireArg(c, "wallet ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	update := domain.BatchFavoriteUpdate{
		WalletID:   id,
		IsFavorite: !c.Bool("remove"),
	}
	if update.IsFavorite {
		update.FavoriteOrder = optInt(c, "order")
	}

	favorites, err := env.Services.Wallets.UpdateFavorites(c.Context, []domain.BatchFavoriteUpdate{update})
	if err != nil {
		return err
	}
	return render(c, favorites)
}

func walletCreate(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.CreateWalletRequest{
		Name:        c.String("name"),
		Type:        domain.WalletType(c.String("type")),
		Currency:    c.String("currency"),
		Description: c.String("description"),
		Icon:        c.String("icon"),
		Color:       c.String("color"),
	}
	wallet, err := env.Services.Wallets.Create(c.Context, req)
	if err != nil {
		return err
	}
	return render(c, wallet)
}

func walletUpdate(c *cli.Context) error {
	id, err := requireArg(c, "wallet ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.UpdateWalletRequest{
		Name:          optString(c, "name"),
		Type:          optEnum[domain.WalletType](c, "type"),
		Currency:      optString(c, "currency"),
		Description:   optString(c, "description"),
		Icon:          optString(c, "icon"),
		Color:         optString(c, "color"),
		IsFavorite:    optBool(c, "favorite"),
		FavoriteOrder: optInt(c, "favorite-order"),
	}
	wallet, err := env.Services.Wallets.Update(c.Context, id, req)
	if err != nil {
		return err
	}
	return render(c, wallet)
}

func walletDelete(c *cli.Context) error {
	id, err := requireArg(c, "wallet ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	if err := env.Services.Wallets.Delete(c.Context, id); err != nil {
		return fmt.Errorf("delete wallet %s: %w", id, err)
	}
	notice(c, "Wallet %s deleted", id)
	return nil
}

func walletTransfer(c *cli.Context) error {
	id, err := requireArg(c, "wallet ID")
	if err != nil {
		return err
	}
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	target, err := env.Services.Wallets.Transfer(c.Context, id, c.String("to"))
	if err != nil {
		return err
	}
	notice(c, "Wallet %s transferred to %s", id, target.ID)
	return render(c, target)
}
