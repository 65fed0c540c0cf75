package cli

import (
	"context"
	"errors"
	"strings"
)

var errInvalidEmail = errors.New("a valid email is required")

// Login accepts the email as the first argument or asks for it.
func (a *App) Login(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		email, err = GetSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
	}
	if !strings.Contains(email, "@") {
		return errInvalidEmail
	}

	user, err := a.store.Login(ctx, email)
	if err != nil {
		return err
	}
	a.user = &user
	a.printf("Logged in as %s\n", user.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.println("Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}
	a.printf("%s <%s> id=%s phone=%s\n", user.Name, user.Email, user.ID, user.Phone)
	return nil
}
