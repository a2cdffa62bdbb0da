// Package protocol holds negotiation resource and message shapes (Offering,
// RFQ) and dev fixture factories for them. It is a consumer of the token
// core: RFQ claim tokens are ordinary compact signed tokens. Nothing here
// validates payment-detail schemas or performs claim selection.
package protocol
