package console

import (
	"context"
	"fmt"

	"github.com/dvillarroel/actifijo/internal/client/models"
)

// Login prompts for credentials and authenticates against the backend.
// A rejected login leaves the session untouched; the backend's generic
// unauthorized answer never reveals which part of the credential was wrong.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		a.notify.Error(failureMessage(err))
		return err
	}

	a.notify.Success("Welcome, " + a.session.Claims().Username)
	return nil
}

// Register collects the company, admin account and payment fields in one
// flat form and creates everything in a single backend call. Success leaves
// the console logged in as the new admin.
func (a *App) Register(ctx context.Context) error {
	s := &formSession{reader: a.reader, out: a.out}

	var reg models.Registration
	var err error

	fmt.Fprintln(a.out, "-- Company --")
	if reg.EmpresaNombre, err = s.RequiredText("Company name", ""); err != nil {
		return err
	}
	if reg.EmpresaNIT, err = s.RequiredText("Company NIT", ""); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "-- Administrator --")
	if reg.AdminFirstName, err = s.RequiredText("First name", ""); err != nil {
		return err
	}
	if reg.AdminApellidoP, err = s.RequiredText("Apellido paterno", ""); err != nil {
		return err
	}
	if reg.AdminApellidoM, err = s.Text("Apellido materno", ""); err != nil {
		return err
	}
	if reg.AdminCI, err = s.RequiredText("CI", ""); err != nil {
		return err
	}
	if reg.AdminEmail, err = s.RequiredText("Email", ""); err != nil {
		return err
	}
	if reg.AdminUsername, err = s.RequiredText("Username", ""); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	reg.AdminPassword = string(password)

	fmt.Fprintln(a.out, "-- Payment --")
	if reg.CardNumber, err = s.RequiredText("Card number", ""); err != nil {
		return err
	}
	if reg.CardExpiry, err = s.RequiredText("Card expiry (MM/YY)", ""); err != nil {
		return err
	}
	if reg.CardCVC, err = s.RequiredText("Card CVC", ""); err != nil {
		return err
	}

	if err := a.session.RegisterAndLogin(ctx, reg); err != nil {
		a.notify.Error(failureMessage(err))
		return err
	}

	a.notify.Success("Company registered, welcome " + a.session.Claims().Username)
	return nil
}

// Logout ends the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.previewed = false
	a.notify.Success("Logged out")
	return nil
}
