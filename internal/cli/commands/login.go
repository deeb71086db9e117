package commands

import (
	"QRKeeper/internal/cli/api"
	"QRKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "/api/user/login"), credentials{Login: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized:
		return errors.New("invalid login or password")
	}
	return fmt.Errorf("server error: %s", api.ErrorMessage(body))
}

func init() { RegisterCmd(loginCmd{}) }
