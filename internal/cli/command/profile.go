package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/core/domain"
)

// ProfileCommand returns the profile command.
func ProfileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show or edit the user profile",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the profile",
				Action: profileShow,
			},
			{
				Name:  "update",
				Usage: "Update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name", Usage: "First name"},
					&cli.StringFlag{Name: "last-name", Usage: "Last name"},
					&cli.StringFlag{Name: "email", Usage: "Email"},
					&cli.StringFlag{Name: "current-password", Usage: "Current password (required to change it)"},
					&cli.StringFlag{Name: "new-password", Usage: "New password"},
				},
				Action: profileUpdate,
			},
		},
	}
}

func profileShow(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	user, err := env.Services.Users.Me(c.Context)
	if err != nil {
		return err
	}
	return render(c, user)
}

func profileUpdate(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	req := domain.UpdateUserRequest{
		FirstName:       optString(c, "first-name"),
		LastName:        optString(c, "last-name"),
		Email:           optString(c, "email"),
		CurrentPassword: optString(c, "current-password"),
		NewPassword:     optString(c, "new-password"),
	}
	user, err := env.Services.Users.UpdateMe(c.Context, req)
	if err != nil {
		return err
	}
	return render(c, user)
}
