// Package jwk models the JSON Web Keys this module signs and verifies with.
// Keys carry explicit algorithm and curve tags; the composite of the two is
// what the core registry dispatches on.
package jwk
