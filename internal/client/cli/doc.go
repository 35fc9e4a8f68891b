// Package cli provides the interactive fieldkeeper command-line client.
//
// A single App wires the session, complaint and HR services to a line-based
// REPL. Service errors are printed as they are, so the backend's own wording
// reaches the technician.
//
// Key features:
//   - OTP sign-in by phone or email, logout, whoami
//   - Assigned complaints and status updates
//   - Customer search and creation, complaint creation
//   - Leave requests, attendance check-in/out, AMC contracts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
