// Package services contains application services for the CalamaUnido client.
// This file defines the authentication service: login form validation,
// token exchange, and the locally stored session.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/calamaunido/internal/client/client"
	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/logging"
	"github.com/dmitrijs2005/calamaunido/internal/rut"
)

// GenericLoginAlert is the only message shown for a failed login that
// passed local validation. The underlying cause is logged.
const GenericLoginAlert = "No se pudo iniciar sesión. Por favor, verifica tus credenciales e intenta nuevamente."

var (
	ErrPasswordRequired = errors.New("La clave es requerida")
	ErrLoginFailed      = errors.New("login failed")
)

// FormError collects the per-field validation errors of the login form.
// A nil field means that field is valid.
type FormError struct {
	RutError      error
	PasswordError error
}

func (e *FormError) Error() string {
	var parts []string
	if e.RutError != nil {
		parts = append(parts, "rut: "+e.RutError.Error())
	}
	if e.PasswordError != nil {
		parts = append(parts, "password: "+e.PasswordError.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *FormError) Unwrap() []error {
	var errs []error
	if e.RutError != nil {
		errs = append(errs, e.RutError)
	}
	if e.PasswordError != nil {
		errs = append(errs, e.PasswordError)
	}
	return errs
}

// SessionStore persists the tokens issued at login.
type SessionStore interface {
	SaveSession(ctx context.Context, access, refresh string) error
	ClearSession(ctx context.Context) error
	Token(ctx context.Context) (string, error)
}

// AuthService defines authentication operations for the CLI.
//
// Login returns *FormError when the form is invalid, and an error wrapping
// ErrLoginFailed for anything that went wrong after validation.
type AuthService interface {
	Login(ctx context.Context, rutInput, password string) error
	Logout(ctx context.Context) error
	SessionToken(ctx context.Context) (string, error)
}

type authService struct {
	client client.Client
	store  SessionStore
	log    logging.Logger
}

func NewAuthService(c client.Client, store SessionStore, log logging.Logger) AuthService {
	return &authService{client: c, store: store, log: log}
}

// ValidateLogin checks the form fields without touching the network.
func ValidateLogin(rutInput, password string) error {
	fe := &FormError{}
	if err := rut.Validate(rutInput); err != nil {
		fe.RutError = err
	}
	if password == "" {
		fe.PasswordError = ErrPasswordRequired
	}
	if fe.RutError != nil || fe.PasswordError != nil {
		return fe
	}
	return nil
}

func (a *authService) Login(ctx context.Context, rutInput, password string) error {
	if err := ValidateLogin(rutInput, password); err != nil {
		return err
	}

	creds := models.Credentials{Rut: rut.Unformat(rutInput), Password: password}
	resp, err := a.client.ObtainToken(ctx, creds)
	if err != nil {
		a.log.Error(ctx, "token request failed", "rut", creds.Rut, "error", err)
		return errors.Join(ErrLoginFailed, err)
	}

	if err := a.store.SaveSession(ctx, resp.Access, resp.Refresh); err != nil {
		a.log.Error(ctx, "saving session failed", "error", err)
		return errors.Join(ErrLoginFailed, err)
	}

	a.log.Info(ctx, "login succeeded", "rut", creds.Rut)
	return nil
}

// Logout removes the stored tokens. A storage failure is logged and
// returned, but the caller still leaves the authenticated area.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		a.log.Error(ctx, "clearing session failed", "error", err)
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// SessionToken returns the stored access token, or "" when logged out.
func (a *authService) SessionToken(ctx context.Context) (string, error) {
	return a.store.Token(ctx)
}
