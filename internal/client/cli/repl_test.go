package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
	err   error
}

func (f *fakeExec) rec(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) RequestOTP(context.Context) error { return f.rec("otp") }
func (f *fakeExec) ResendOTP(context.Context) error { return f.rec("resend") }
func (f *fakeExec) WhoAmI(context.Context) error { return f.rec("whoami") }
func (f *fakeExec) Complaints(context.Context) error { return f.rec("complaints") }
func (f *fakeExec) AddCustomer(context.Context) error { return f.rec("add-customer") }
func (f *fakeExec) NewComplaint(context.Context) error { return f.rec("new-complaint") }
func (f *fakeExec) Lookups(context.Context) error { return f.rec("lookups") }
func (f *fakeExec) ApplyLeave(context.Context) error { return f.rec("leave") }
func (f *fakeExec) CheckIn(context.Context) error { return f.rec("checkin") }
func (f *fakeExec) CheckOut(context.Context) error { return f.rec("checkout") }
func (f *fakeExec) CreateAMC(context.Context) error { return f.rec("amc") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) UpdateStatus(_ context.Context, ref string) error {
	f.args = append(f.args, ref)
	return f.rec("update-status")
}
func (f *fakeExec) Customers(_ context.Context, q string) error {
	f.args = append(f.args, q)
	return f.rec("customers")
}

func run(exec *fakeExec, input string) string {
	var out bytes.Buffer
	runREPL(context.Background(), exec, func(context.Context) string { return "status" },
		bufio.NewReader(strings.NewReader(input)), &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := run(exec, strings.Join([]string{
		"help",
		"otp",
		"login",
		"help",
		"complaints",
		"update-status C-100",
		"customers acme traders",
		"add-customer",
		"new-complaint",
		"lookups",
		"leave",
		"checkin",
		"checkout",
		"amc",
		"whoami",
		"",
		"foobar",
		"logout",
		"exit",
		"complaints",
	}, "\n"))

	assert.Equal(t, []string{
		"otp", "login", "complaints", "update-status", "customers", "add-customer",
		"new-complaint", "lookups", "leave", "checkin", "checkout", "amc", "whoami", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"C-100", "acme traders"}, exec.args)
	assert.Contains(t, out, helpSignedOut)
	assert.Contains(t, out, helpSignedIn)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "fk (status)> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_PrintsErrorsVerbatim(t *testing.T) {
	exec := &fakeExec{err: errors.New("You are not logged in. Please log in again.")}
	out := run(exec, "complaints\nquit\n")

	assert.Contains(t, out, "You are not logged in. Please log in again.\n")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	run(exec, "otp\nresend")
	assert.Equal(t, []string{"otp", "resend"}, exec.calls)

	exec = &fakeExec{}
	run(exec, "")
	assert.Empty(t, exec.calls)
}
