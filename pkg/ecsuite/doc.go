// Package ecsuite exposes a uniform interface over the elliptic-curve
// signature suites supported by this library: ECDSA and BIP340 Schnorr on
// secp256k1, and Ed25519. Each (curve, scheme) pair is represented by a
// Suite that validates and normalizes public keys, signs message digests,
// and verifies signatures.
//
// The package implements no curve arithmetic of its own. Point decoding,
// signing, and verification are delegated to audited primitive libraries
// through an internal provider layer; this package owns only the format
// rules, the suite dispatch, and the validation error taxonomy.
//
// All values at the API boundary are hex-encoded strings. Signing takes a
// precomputed message digest, never a raw message; hashing is the caller's
// responsibility.
//
// Suites are immutable and stateless, so they are safe for concurrent use
// without synchronization.
package ecsuite
