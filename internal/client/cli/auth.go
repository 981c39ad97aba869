package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankcli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// report prints the user-facing text of err and returns err.
func report(err error) error {
	var f *services.Failure
	if errors.As(err, &f) {
		printlnFn(f.Message)
	} else {
		printlnFn("Error:", err.Error())
	}
	return err
}

// Register prompts the user for an email and password and attempts to create
// a new account via the AuthService. The password is wiped by the service.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", promptOut)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, promptOut)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, email, password); err != nil {
		return report(err)
	}

	printlnFn("Registration successful. You can now log in.")
	return nil
}

// Login prompts the user for credentials and hands the issued credential to
// the session store. The password is wiped by the service.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", promptOut)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, promptOut)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, email, password); err != nil {
		return report(err)
	}

	if id := a.authService.WhoAmI(); id != nil {
		printlnFn(fmt.Sprintf("Logged in as %s", id.Identifier))
	} else {
		printlnFn("Logged in")
	}
	return nil
}

// Logout ends the session. It is safe to call when already signed out.
func (a *App) Logout(ctx context.Context) error {
	a.userLogout.Store(true)
	defer a.userLogout.Store(false)

	a.authService.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the identity the session store derived from the credential,
// followed by the account holder record from the backend.
func (a *App) WhoAmI(ctx context.Context) error {
	id := a.authService.WhoAmI()
	if id == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(id.Identifier)

	u, err := a.authService.Profile(ctx)
	if err != nil {
		return report(err)
	}
	status := "active"
	if !u.IsActive {
		status = "inactive"
	}
	printlnFn(fmt.Sprintf("Account holder: %s (%s, id %s)", u.Email, status, u.ID))
	return nil
}
