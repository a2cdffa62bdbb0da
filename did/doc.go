// Package did provides the identity collaborator around the token core: it
// constructs did:jwk signing identities, exposes their documents, and resolves
// DID URIs back into documents through an optional Redis-backed cache.
//
// The token core only ever reads an [Identity]: its ordered key list, its URI,
// and the first verification method id its document exposes.
package did
