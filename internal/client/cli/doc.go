// Package cli provides the interactive accountkeeper command-line client.
//
// App wires the configuration, the saved session and the gRPC client, then
// runs a REPL with commands for registration, login, profile management,
// password change, token refresh and logout. The session survives restarts,
// so a user stays logged in until logout, password change or refresh token
// expiry.
package cli
