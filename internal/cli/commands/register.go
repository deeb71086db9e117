package commands

import (
	"QRKeeper/internal/cli/api"
	"QRKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "/api/user/register"), credentials{Login: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Registered and logged in")
		return nil
	case http.StatusConflict:
		return errors.New("login already in use")
	}
	return fmt.Errorf("server error: %s", api.ErrorMessage(body))
}

func init() { RegisterCmd(registerCmd{}) }
