// Package api is the authenticated REST client of the field-service backend.
//
// # Overview
//
// A Client builds one request per backend operation, attaches the JSON
// content type and, for authenticated operations, an "Authorization: Token"
// header taken from a TokenSource. Responses go through one normalisation
// path:
//
//  1. non-2xx status → ErrServer with the body's "error" field or an
//     operation-specific fallback message;
//  2. 2xx body that is not the expected JSON → ErrMalformedResponse;
//  3. for create/update operations, Resolve turns the loosely shaped body
//     into a Verdict.
//
// # Error Handling
//
// Every error returned by the package is an *Error whose Kind is one of the
// sentinels ErrAuthenticationRequired, ErrTransport, ErrServer,
// ErrMalformedResponse, ErrValidation or ErrRejected; match them with
// errors.Is. Error() is the human-readable message meant for the user.
//
// Nothing is retried. A missing token fails before any network I/O.
package api
