// Package services contains the application services the CLI talks to.
// They sit between the presentation layer and the api client, own the
// session lifecycle and keep the CLI free of transport details.
package services
