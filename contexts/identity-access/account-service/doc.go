// Package accountservice implements the launchpad credential store and account
// lifecycle (signup, login, profile, adopter interests).
//
// Layering:
// - domain: user entity, role rules, sentinel errors
// - application: commands/queries using explicit ports
// - ports: persistence, hashing, clock and id boundaries
// - adapters: concrete HTTP, memory, postgres and bcrypt implementations
// - transport: module-private DTOs for HTTP contracts
//
// Session tokens are not issued here; the platform session package owns them.
package accountservice
