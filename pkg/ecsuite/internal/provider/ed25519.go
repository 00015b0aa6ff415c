package provider

import (
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
)

// Ed25519SeedSize is the raw private key (seed) length in bytes.
const Ed25519SeedSize = ed25519.SeedSize

type edwardsPoint struct {
	p *edwards25519.Point
}

// Encode ignores the compressed flag; Edwards points have exactly one wire
// encoding.
func (p edwardsPoint) Encode(bool) []byte {
	return p.p.Bytes()
}

func decodeEdwardsPoint(data []byte) (Point, error) {
	p, err := new(edwards25519.Point).SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("ed25519: %w", err)
	}
	return edwardsPoint{p: p}, nil
}

func ed25519Sign(digest, priv []byte) ([]byte, error) {
	if len(priv) != Ed25519SeedSize {
		return nil, fmt.Errorf("ed25519: invalid private key length: expected %d bytes, got %d", Ed25519SeedSize, len(priv))
	}
	key := ed25519.NewKeyFromSeed(priv)
	return ed25519.Sign(key, digest), nil
}

// ed25519Verify length-checks the key and signature itself because the
// standard library treats wrong-length inputs as "not valid" or panics,
// while this package's contract is to surface structural problems as errors.
func ed25519Verify(sig, digest, pub []byte) (bool, error) {
	if len(pub) != ed25519.PublicKeySize {
		return false, fmt.Errorf("ed25519: invalid public key length: expected %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	if len(sig) != ed25519.SignatureSize {
		return false, fmt.Errorf("ed25519: malformed signature: expected %d bytes, got %d", ed25519.SignatureSize, len(sig))
	}
	return ed25519.Verify(ed25519.PublicKey(pub), digest, sig), nil
}
