package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/services"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
)

type App struct {
	session    services.SessionService
	complaints services.ComplaintService
	hr         services.HRService
	log        logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// contact and channel of the last OTP request, reused by resend and login
	contact string
	channel models.Channel
}

func NewApp(session services.SessionService, complaints services.ComplaintService, hr services.HRService,
	log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &App{
		session:    session,
		complaints: complaints,
		hr:         hr,
		log:        log,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Run prints the banner and blocks in the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to fieldkeeper (type 'help' for commands)")
	if u, ok := a.session.CurrentUser(ctx); ok && a.isLoggedIn(ctx) {
		a.log.Debug(ctx, "restored persisted session", "user_id", u.ID())
		a.printf("Signed in as %s\n", displayName(u))
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
	a.log.Debug(ctx, "repl finished")
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}

func (a *App) status(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return "signed out"
	}
	u, _ := a.session.CurrentUser(ctx)
	return displayName(u)
}

func displayName(u models.User) string {
	if n := u.DisplayName(); n != "" {
		return n
	}
	if id := u.ID(); id != "" {
		return "user " + id
	}
	return "signed in"
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
