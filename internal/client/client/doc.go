// Package client talks to the accountkeeper server on behalf of the CLI.
//
// GRPCClient keeps the current token pair in a SessionStore, attaches the
// access token to every call and, when the server answers "token expired",
// rotates the pair once via RefreshToken and retries the call. gRPC status
// codes are mapped to the sentinel errors in errors.go.
package client
