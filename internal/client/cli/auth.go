package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/pages"
	"github.com/dmitrijs2005/expensetracker/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login opens the login page, prompts for a username (or email) and a
// password and submits them. On success the dashboard is shown.
//
// The password byte slice is wiped before returning. Input errors are
// returned unchanged; API failures have already been shown to the user by
// the page.
func (a *App) Login(ctx context.Context) error {
	a.goTo(ctx, pages.RouteLogin)

	userName, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.login.Submit(ctx, models.LoginForm{UsernameOrEmail: userName, Password: string(password)})
	a.settle(ctx)
	return err
}

// Register opens the registration page, prompts for a username, an email
// and a password and creates the account. On success the dashboard is shown.
func (a *App) Register(ctx context.Context) error {
	a.goTo(ctx, pages.RouteRegister)

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.register.Submit(ctx, models.RegisterForm{Username: userName, Email: email, Password: string(password)})
	a.settle(ctx)
	return err
}

// Logout forgets the saved session and returns to the login page.
func (a *App) Logout(ctx context.Context) error {
	err := a.dashboard.Logout(ctx)
	a.settle(ctx)
	return err
}
