// Package api implements the HTTP handlers, request/response models, and
// error mapping for the blogging service's REST API.
package api
