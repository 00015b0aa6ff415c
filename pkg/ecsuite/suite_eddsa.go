package ecsuite

import (
	"encoding/hex"

	"github.com/hsiuhsiu/ecsuite-go/pkg/ecsuite/internal/provider"
)

// eddsaSuite is the ed25519/EdDSA suite. Public keys are 32 bytes in the
// curve's single fixed encoding and are fully point-validated. Signatures
// are the standard 64-byte encoding. Note that Sign operates on the
// caller's digest bytes like every other suite; it does not run the
// Ed25519ph prehash flow.
type eddsaSuite struct{}

var _ Suite = eddsaSuite{}

// eddsaKeyHexLen is the public key length in hex characters (32 bytes).
const eddsaKeyHexLen = 64

func (eddsaSuite) ValidateAndNormalizePublicKey(pubKeyHex string, _ PublicKeyFormat) (NormalizedPublicKey, error) {
	if len(pubKeyHex) != eddsaKeyHexLen {
		return NormalizedPublicKey{}, validationErrorf("invalid public key length: expected %d hex characters, got %d", eddsaKeyHexLen, len(pubKeyHex))
	}
	raw, err := decodeKeyHex(pubKeyHex)
	if err != nil {
		return NormalizedPublicKey{}, err
	}
	if _, err := provider.DecodePoint(provider.CurveEd25519, raw); err != nil {
		return NormalizedPublicKey{}, validationErrorf("not a valid point on the curve")
	}
	// Single fixed encoding: the input is returned as-is and the output
	// format argument is ignored.
	return NormalizedPublicKey{Hex: pubKeyHex, Format: FormatCompressed}, nil
}

func (eddsaSuite) Sign(privKeyHex, digestHex string) (string, error) {
	priv, err := hex.DecodeString(privKeyHex)
	if err != nil {
		return "", err
	}
	defer ZeroizeBytes(priv)
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return "", err
	}
	sig, err := provider.Sign(provider.CurveEd25519, provider.SchemeEdDSA, digest, priv)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig), nil
}

func (eddsaSuite) Verify(sigHex, digestHex, pubKeyHex string) (bool, error) {
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return false, err
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, err
	}
	pub, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return false, err
	}
	return provider.Verify(provider.CurveEd25519, provider.SchemeEdDSA, sig, digest, pub)
}
