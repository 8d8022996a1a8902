// Package startupservice implements the startup catalog, the adopter feed
// matcher and founder-facing feedback listing.
//
// Founder and adopter identities live in the account module; this module only
// sees them through ports.UserDirectory, wired by the composition root.
package startupservice
