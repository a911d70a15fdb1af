// Package storage persists the client's access and refresh tokens.
//
// Two implementations of Store are provided:
//
//   - BadgerTokenStore: durable store on Badger v3 with synchronous writes
//   - MemoryTokenStore: process-local store for tests and ephemeral runs
//
// Tokens are opaque strings. A read that fails, or a value that cannot be
// decoded, is reported as an absent token. Values may optionally be sealed
// at rest with a Sealer.
package storage
