package ecsuite

import (
	"encoding/hex"

	"github.com/hsiuhsiu/ecsuite-go/pkg/ecsuite/internal/provider"
)

// schnorrSuite is the secp256k1/BIP340 suite. Public keys are 32-byte
// x-only values. Validation checks hex-ness and length only: x-only keys
// are not point-checked here, matching the scheme's historical contract
// where membership is established at verification time. Changing that would
// change observable behavior for callers holding length-valid, off-curve
// x values.
type schnorrSuite struct{}

var _ Suite = schnorrSuite{}

// schnorrKeyHexLen is the x-only key length in hex characters (32 bytes).
const schnorrKeyHexLen = 64

func (schnorrSuite) ValidateAndNormalizePublicKey(pubKeyHex string, _ PublicKeyFormat) (NormalizedPublicKey, error) {
	if len(pubKeyHex) != schnorrKeyHexLen {
		return NormalizedPublicKey{}, validationErrorf("invalid public key length: expected %d hex characters, got %d", schnorrKeyHexLen, len(pubKeyHex))
	}
	if _, err := decodeKeyHex(pubKeyHex); err != nil {
		return NormalizedPublicKey{}, err
	}
	// No re-encoding; the input is returned as-is. The output format
	// argument is accepted for interface uniformity and ignored.
	return NormalizedPublicKey{Hex: pubKeyHex, Format: FormatSchnorr}, nil
}

func (schnorrSuite) Sign(privKeyHex, digestHex string) (string, error) {
	priv, err := hex.DecodeString(privKeyHex)
	if err != nil {
		return "", err
	}
	defer ZeroizeBytes(priv)
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return "", err
	}
	sig, err := provider.Sign(provider.CurveSecp256k1, provider.SchemeSchnorr, digest, priv)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig), nil
}

func (schnorrSuite) Verify(sigHex, digestHex, pubKeyHex string) (bool, error) {
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
	return provider.Verify(provider.CurveSecp256k1, provider.SchemeSchnorr, sig, digest, pub)
}
