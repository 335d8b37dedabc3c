package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
	"github.com/dmitrijs2005/examtrainer/internal/common"
)

// registerView prompts for account details and creates the account. The
// user is asked to sign in afterwards; registration does not establish a
// session.
func (a *App) registerView(ctx context.Context) error {
	username, err := a.promptText("Enter username")
	if err != nil {
		return err
	}
	email, err := a.promptText("Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Username: username, Email: email, Password: string(password)}
	if err := a.auth.Register(ctx, req); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Account created. Use 'login' to sign in.")
	return nil
}

// loginView prompts for credentials, exchanges them for a token, and
// establishes the session. The last successfully used email is remembered
// locally as a prefill for the next login.
func (a *App) loginView(ctx context.Context) error {
	saved, _ := a.local.Get(ctx, lastEmailKey)
	email, err := a.promptTextDefault("Enter email", string(saved))
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.auth.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.local.Set(ctx, lastEmailKey, []byte(email)); err != nil {
		a.logger.Warn(ctx, "failed to remember login email", "error", err)
	}

	user, _ := a.session.Identity()
	printlnFn("Logged in as " + user.Username)
	return nil
}

// logoutView ends the session locally; the server is not called.
func (a *App) logoutView(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
