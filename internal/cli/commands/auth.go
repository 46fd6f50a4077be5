package commands

import (
	"fmt"
	"net/http"
	"strings"

	"StockKeeper/internal/cli/api"
	fsrepo "StockKeeper/internal/cli/repo/fs"
	"StockKeeper/internal/config"
)

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func loadToken() string {
	token, err := fsrepo.SessionFSStore{}.Load()
	if err != nil {
		return ""
	}
	return token
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Create an account and store the session cookie" }
func (signupCmd) Usage() string       { return "signup <username> <email> <password>" }

func (signupCmd) Run(cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	req := SignupRequest{Username: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(endpoint(cfg, "/signup/"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("signup failed (%d): %s", resp.StatusCode, body)
	}
	if err := api.PersistSessionFromResponse(resp); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Signed up as %s\n", args[0])
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session cookie" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := LoginRequest{Username: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(endpoint(cfg, "/login/"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed (%d): %s", resp.StatusCode, body)
	}
	if err := api.PersistSessionFromResponse(resp); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s\n", args[0])
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Destroy the server session and forget the cookie" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(cfg *config.Config, _ []string) error {
	resp, body, err := api.PostJSON(endpoint(cfg, "/logout/"), nil, loadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout failed (%d): %s", resp.StatusCode, body)
	}
	if err := (fsrepo.SessionFSStore{}).Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	Register(signupCmd{})
	Register(loginCmd{})
	Register(logoutCmd{})
}
