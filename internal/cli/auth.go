package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/datarium/datarium/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for credentials and creates a new account. Registration
// signs the new user in immediately, matching the mobile app's behavior.
func (a *App) register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(password)

	session, err := a.identity.Register(ctx, username, string(password))
	switch {
	case errors.Is(err, common.ErrDuplicateUser):
		fmt.Fprintln(a.out, "That username is already registered.")
		return
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Username and password are required.")
		return
	case err != nil:
		fmt.Fprintln(a.out, "Registration failed. Try again.")
		return
	}

	if err := a.ledger.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load portfolio:", err)
	}
	fmt.Fprintf(a.out, "Welcome, %s! Your account is ready.\n", session.User.Username)
}

// login prompts for credentials and signs in.
func (a *App) login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(password)

	session, err := a.identity.SignIn(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid username or password.")
		} else {
			fmt.Fprintln(a.out, "Sign-in failed. Try again.")
		}
		return
	}

	if err := a.ledger.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load portfolio:", err)
	}
	fmt.Fprintf(a.out, "Signed in as %s.\n", session.User.Username)
}

// logout clears the session and unloads the portfolio.
func (a *App) logout(ctx context.Context) {
	if err := a.identity.SignOut(ctx); err != nil {
		fmt.Fprintln(a.out, "Sign-out failed:", err)
		return
	}
	if err := a.ledger.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not unload portfolio:", err)
	}
	fmt.Fprintln(a.out, "Signed out.")
}
