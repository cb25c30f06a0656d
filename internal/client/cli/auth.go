package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/calamaunido/internal/client/render"
	"github.com/dmitrijs2005/calamaunido/internal/client/services"
	"github.com/dmitrijs2005/calamaunido/internal/common"
	"github.com/dmitrijs2005/calamaunido/internal/rut"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for RUT and password and tries to authenticate.
//
// The RUT is shown back formatted as it would appear in the input field.
// Field errors are printed inline; any other failure prints only the
// generic alert. On success the stack is reset to Home.
func (a *App) Login(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "RUT", a.out)
	if err != nil {
		return err
	}
	formatted := rut.Format(raw)
	a.println("RUT: " + formatted)

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.authService.Login(ctx, formatted, string(password))

	var fe *services.FormError
	switch {
	case errors.As(err, &fe):
		if fe.RutError != nil {
			a.println(render.FieldError(fe.RutError))
		}
		if fe.PasswordError != nil {
			a.println(render.FieldError(fe.PasswordError))
		}
		return err
	case err != nil:
		a.println(services.GenericLoginAlert)
		return err
	}

	a.nav.Reset(ScreenHome)
	a.enter(ctx, ScreenHome)
	a.render(ctx)
	return nil
}

// Logout is offered by the Home user menu. Storage errors are logged by the
// service; the user is taken to Login either way.
func (a *App) Logout(ctx context.Context) error {
	if !a.userMenu {
		a.println("Abre el menú de usuario primero (user)")
		return nil
	}
	err := a.authService.Logout(ctx)

	a.userMenu = false
	for a.nav.Depth() > 1 {
		left, _ := a.nav.Back()
		a.leave(left)
	}
	a.leave(a.nav.Current())
	a.nav.Reset(ScreenLogin)
	a.render(ctx)
	return err
}
