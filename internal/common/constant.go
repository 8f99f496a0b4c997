// Package common contains shared constants and sentinel errors used across
// accountkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on inbound requests and on the login response header.
const AccessTokenHeaderName = "access_token"

// RefreshTokenHeaderName is the gRPC metadata key that may carry the refresh
// token when it is not present in the request body.
const RefreshTokenHeaderName = "refresh_token"
