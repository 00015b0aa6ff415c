// Package provider is the boundary between the suite layer and the audited
// primitive libraries that do the actual curve math. It exposes point
// decoding/encoding and raw sign/verify operations keyed by (curve, scheme),
// backed by decred's secp256k1 (ECDSA), btcec's schnorr package (BIP340),
// the standard library's crypto/ed25519, and filippo.io/edwards25519 for
// Edwards point decoding.
//
// Errors returned from this package are the provider's native failures and
// are intentionally distinct from the suite layer's validation errors; the
// suite layer passes them through to callers unmodified.
package provider
