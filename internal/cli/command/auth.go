package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/yndnr/moneytracker-go/internal/cli/output"
	"github.com/yndnr/moneytracker-go/internal/core/domain"
	"github.com/yndnr/moneytracker-go/internal/datasource"
)

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and store the issued tokens",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Usage:    "Account email",
				Required: true,
			},
			passwordFlag(),
		},
		Action: authLogin,
	}
}

// RegisterCommand returns the register command.
func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account and sign in as it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Usage:    "Account email",
				Required: true,
			},
			passwordFlag(),
			&cli.StringFlag{
				Name:  "first-name",
				Usage: "First name",
			},
			&cli.StringFlag{
				Name:  "last-name",
				Usage: "Last name",
			},
		},
		Action: authRegister,
	}
}

// LogoutCommand returns the logout command.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "End the session and forget stored tokens",
		Action: authLogout,
	}
}

// WhoamiCommand returns the whoami command.
func WhoamiCommand() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Show the signed-in user",
		Action: authWhoami,
	}
}

// RefreshCommand returns the refresh command.
func RefreshCommand() *cli.Command {
	return &cli.Command{
		Name:   "refresh",
		Usage:  "Exchange the refresh token for a new token pair",
		Action: authRefresh,
	}
}

func passwordFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "Account password (read from stdin when omitted)",
		EnvVars: []string{"MONEYTRACKER_PASSWORD"},
	}
}

var errPasswordRequired = errors.New("password required (use --password or MONEYTRACKER_PASSWORD)")

// readPassword returns --password, or reads one line from the app reader.
// A terminal reader is read without echo.
func readPassword(c *cli.Context) (string, error) {
	if p := c.String("password"); p != "" {
		return p, nil
	}
	if c.App.Reader == nil {
		return "", errPasswordRequired
	}

	fmt.Fprint(c.App.ErrWriter, "Password: ")
	defer fmt.Fprintln(c.App.ErrWriter)

	if f, ok := c.App.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if len(raw) == 0 {
			return "", errPasswordRequired
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errPasswordRequired
	}
	return line, nil
}

// authResult is what login and register print. Tokens are never echoed.
type authResult struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	TokenType string `json:"tokenType,omitempty"`
	ExpiresIn int64  `json:"expiresIn,omitempty"`
	Source    string `json:"source"`
}

func newAuthResult(resp *domain.AuthResponse, source string) authResult {
	r := authResult{
		TokenType: resp.TokenType,
		ExpiresIn: resp.ExpiresIn,
		Source:    source,
	}
	if resp.User != nil {
		r.ID = resp.User.ID
		r.Email = resp.User.Email
		r.FirstName = resp.User.FirstName
		r.LastName = resp.User.LastName
	}
	return r
}

// withSpinner runs fn behind a spinner when stderr is a terminal and the
// output is a table.
func withSpinner(c *cli.Context, message string, fn func() error) error {
	f, ok := c.App.ErrWriter.(*os.File)
	if !ok || ParseGlobalFlags(c).Output != output.FormatTable || ParseGlobalFlags(c).Verbose {
		return fn()
	}
	if !term.IsTerminal(int(f.Fd())) {
		return fn()
	}

	sp := output.NewSpinner(f, message)
	sp.Start()
	err := fn()
	if err != nil {
		sp.Fail(err.Error())
	} else {
		sp.Stop()
	}
	return err
}

func authLogin(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	password, err := readPassword(c)
	if err != nil {
		return err
	}

	var resp *domain.AuthResponse
	err = withSpinner(c, "Signing in", func() error {
		var lerr error
		resp, lerr = env.Services.Session.Login(c.Context, c.String("email"), password)
		return lerr
	})
	if err != nil {
		return err
	}

	return render(c, newAuthResult(resp, string(env.Services.Session.AuthSource())))
}

func authRegister(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	password, err := readPassword(c)
	if err != nil {
		return err
	}

	req := domain.RegisterRequest{
		Email:     c.String("email"),
		Password:  password,
		FirstName: c.String("first-name"),
		LastName:  c.String("last-name"),
	}

	var resp *domain.AuthResponse
	err = withSpinner(c, "Creating account", func() error {
		var rerr error
		resp, rerr = env.Services.Session.Register(c.Context, req)
		return rerr
	})
	if err != nil {
		return err
	}

	return render(c, newAuthResult(resp, string(env.Services.Session.AuthSource())))
}

func authLogout(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	if err := env.Services.Session.Logout(c.Context); err != nil {
		return err
	}
	notice(c, "Logged out")
	return nil
}

func authWhoami(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	session := env.Services.Session

	if err := session.Bootstrap(c.Context); err != nil {
		return fmt.Errorf("session expired, please log in again: %w", err)
	}
	user := session.Snapshot().User
	if user == nil {
		if user, err = session.CurrentUser(c.Context); err != nil {
			return err
		}
	}
	if user == nil {
		if session.State() == domain.StateAnonymous {
			return errors.New("not logged in")
		}
		if session.AuthSource() != datasource.SourceMock {
			return errors.New("server returned no user details")
		}
		// Mock auth with tokens from a previous run: the user only lives in memory.
		notice(c, "Logged in (user details unavailable in mock mode; log in again to load them)")
		return nil
	}
	return render(c, user)
}

func authRefresh(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}

	resp, err := env.Services.Session.RefreshTokens(c.Context)
	if err != nil {
		return err
	}
	if resp == nil {
		notice(c, "Nothing to refresh")
		return nil
	}
	return render(c, newAuthResult(resp, string(env.Services.Session.AuthSource())))
}
