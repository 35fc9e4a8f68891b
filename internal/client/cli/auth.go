package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
)

// askContact prompts for the OTP channel and the contact on that channel.
func (a *App) askContact() (string, models.Channel, error) {
	ch, err := a.ask("Send the code by phone or email? [phone]")
	if err != nil {
		return "", "", err
	}
	channel := models.Channel(strings.ToLower(ch))
	if channel == "" {
		channel = models.ChannelPhone
	}
	if !channel.Valid() {
		return "", "", fmt.Errorf("unknown channel %q, use phone or email", ch)
	}

	prompt := "Phone number (10 digits)"
	if channel == models.ChannelEmail {
		prompt = "Email address"
	}
	contact, err := a.ask(prompt)
	if err != nil {
		return "", "", err
	}
	return contact, channel, nil
}

func (a *App) printOTPSent(res *models.OTPResponse) {
	msg := res.Message
	if msg == "" {
		msg = "OTP sent"
	}
	if res.ExpiresInMinutes > 0 {
		msg = fmt.Sprintf("%s (valid for %d min)", msg, res.ExpiresInMinutes)
	}
	a.println(msg)
}

// RequestOTP asks for a contact and sends a one-time code to it.
func (a *App) RequestOTP(ctx context.Context) error {
	contact, channel, err := a.askContact()
	if err != nil {
		return err
	}
	res, err := a.session.GenerateOTP(ctx, contact, channel)
	if err != nil {
		return err
	}
	a.contact, a.channel = contact, channel
	a.printOTPSent(res)
	return nil
}

// ResendOTP sends a fresh code to the contact of the last request.
func (a *App) ResendOTP(ctx context.Context) error {
	if a.contact == "" {
		return fmt.Errorf("no OTP requested yet, use 'otp' first")
	}
	res, err := a.session.ResendOTP(ctx, a.contact, a.channel)
	if err != nil {
		return err
	}
	a.printOTPSent(res)
	return nil
}

// Login requests a code if none is pending, then reads it without echo and
// verifies it.
func (a *App) Login(ctx context.Context) error {
	if a.contact == "" {
		if err := a.RequestOTP(ctx); err != nil {
			return err
		}
	}

	otp, err := getSecret(a.reader, "Enter OTP", a.out)
	if err != nil {
		return err
	}

	res, err := a.session.Login(ctx, otp, a.contact, a.channel)
	if err != nil {
		return err
	}
	a.contact, a.channel = "", ""

	if res.Token == "" {
		msg := res.Message
		if msg == "" {
			msg = "Verification succeeded but no session was issued"
		}
		a.println(msg)
		return nil
	}
	a.printf("Welcome, %s!\n", displayName(res.User))
	return nil
}

// Logout always succeeds locally; a failed remote logout is only logged.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		a.println("Not signed in")
		return nil
	}
	u, _ := a.session.CurrentUser(ctx)
	a.println(displayName(u))
	for _, k := range []string{"id", "email", "phone_number", "role"} {
		if v, ok := u[k]; ok && v != nil {
			a.printf("  %s: %v\n", k, v)
		}
	}
	return nil
}
