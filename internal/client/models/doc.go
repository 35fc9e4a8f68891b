// Package models defines client-side data models of the field-service API.
//
// The backend is loose about shapes, so models decode leniently: unknown
// fields are ignored and lookup entries accept several name keys.
package models
