package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs to operate.
// The real App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	RequestOTP(ctx context.Context) error
	ResendOTP(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Complaints(ctx context.Context) error
	UpdateStatus(ctx context.Context, reference string) error
	Customers(ctx context.Context, query string) error
	AddCustomer(ctx context.Context) error
	NewComplaint(ctx context.Context) error
	Lookups(ctx context.Context) error

	ApplyLeave(ctx context.Context) error
	CheckIn(ctx context.Context) error
	CheckOut(ctx context.Context) error
	CreateAMC(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: otp, resend, login, help, exit"
	helpSignedIn  = "Available commands: complaints, update-status [ref], customers [query], add-customer, " +
		"new-complaint, lookups, leave, checkin, checkout, amc, whoami, logout, help, exit"
)

// runREPL reads commands line by line from in and dispatches them to a.
// Handler errors are printed verbatim; the loop keeps going. It returns on
// end of input or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "fk (%s)> ", statusFn(ctx))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, rest := parts[0], strings.Join(parts[1:], " ")

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(out, helpSignedIn)
			} else {
				fmt.Fprintln(out, helpSignedOut)
			}

		case "otp":
			cmdErr = a.RequestOTP(ctx)
		case "resend":
			cmdErr = a.ResendOTP(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "complaints", "c":
			cmdErr = a.Complaints(ctx)
		case "update-status":
			cmdErr = a.UpdateStatus(ctx, rest)
		case "customers":
			cmdErr = a.Customers(ctx, rest)
		case "add-customer":
			cmdErr = a.AddCustomer(ctx)
		case "new-complaint":
			cmdErr = a.NewComplaint(ctx)
		case "lookups":
			cmdErr = a.Lookups(ctx)

		case "leave":
			cmdErr = a.ApplyLeave(ctx)
		case "checkin":
			cmdErr = a.CheckIn(ctx)
		case "checkout":
			cmdErr = a.CheckOut(ctx)
		case "amc":
			cmdErr = a.CreateAMC(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, cmdErr.Error())
		}
		if err != nil {
			// last line had no newline
			return
		}
	}
}
