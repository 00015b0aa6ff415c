package ecsuite_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/ecsuite-go/pkg/ecsuite"
)

// sha256("test"), used across the suite tests as the signed digest.
const testDigestHex = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func TestGetSuiteValidPairs(t *testing.T) {
	pairs := []struct {
		curve  ecsuite.Curve
		scheme ecsuite.Scheme
	}{
		{ecsuite.CurveSecp256k1, ecsuite.SchemeECDSA},
		{ecsuite.CurveSecp256k1, ecsuite.SchemeSchnorr},
		{ecsuite.CurveEd25519, ecsuite.SchemeEdDSA},
	}

	for _, pair := range pairs {
		suite, err := ecsuite.GetSuite(pair.curve, pair.scheme)
		require.NoError(t, err)
		require.NotNil(t, suite)
	}
}

func TestGetSuiteUnsupportedPairs(t *testing.T) {
	pairs := []struct {
		curve  ecsuite.Curve
		scheme ecsuite.Scheme
	}{
		{ecsuite.CurveSecp256k1, ecsuite.SchemeEdDSA},
		{ecsuite.CurveEd25519, ecsuite.SchemeECDSA},
		{ecsuite.CurveEd25519, ecsuite.SchemeSchnorr},
		{ecsuite.CurveUnknown, ecsuite.SchemeECDSA},
		{ecsuite.CurveSecp256k1, ecsuite.SchemeUnknown},
		{ecsuite.CurveUnknown, ecsuite.SchemeUnknown},
	}

	for _, pair := range pairs {
		suite, err := ecsuite.GetSuite(pair.curve, pair.scheme)
		require.Nil(t, suite)
		require.Error(t, err)
		require.ErrorIs(t, err, ecsuite.ErrValidation)

		// The error names both tags so callers can see what they asked for.
		msg := err.Error()
		require.Contains(t, msg, pair.curve.String())
		require.Contains(t, msg, pair.scheme.String())
	}
}

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	_, err := ecsuite.GetSuite(ecsuite.CurveEd25519, ecsuite.SchemeSchnorr)
	require.Error(t, err)

	var verr *ecsuite.ValidationError
	require.True(t, errors.As(err, &verr))
	require.NotEmpty(t, verr.Reason)
	require.True(t, strings.Contains(err.Error(), verr.Reason))
}

// Every suite is a stateless value; hammering the same suite from many
// goroutines with different inputs must produce independent results.
func TestSuitesConcurrentUse(t *testing.T) {
	type fixture struct {
		curve      ecsuite.Curve
		scheme     ecsuite.Scheme
		privKeyHex string
		pubKeyHex  string
	}
	fixtures := []fixture{
		{ecsuite.CurveSecp256k1, ecsuite.SchemeECDSA, ecdsaPrivHex, ecdsaCompressedPubHex(t, ecdsaPrivHex)},
		{ecsuite.CurveSecp256k1, ecsuite.SchemeSchnorr, ecdsaPrivHex, schnorrPubHex(t, ecdsaPrivHex)},
		{ecsuite.CurveEd25519, ecsuite.SchemeEdDSA, eddsaSeedHex, eddsaPubHex},
	}

	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, len(fixtures)*workers)

	for _, fx := range fixtures {
		suite, err := ecsuite.GetSuite(fx.curve, fx.scheme)
		require.NoError(t, err)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(s ecsuite.Suite, fx fixture) {
				defer wg.Done()

				if _, err := s.ValidateAndNormalizePublicKey(fx.pubKeyHex, ecsuite.FormatDefault); err != nil {
					errCh <- err
					return
				}
				sigHex, err := s.Sign(fx.privKeyHex, testDigestHex)
				if err != nil {
					errCh <- err
					return
				}
				ok, err := s.Verify(sigHex, testDigestHex, fx.pubKeyHex)
				if err != nil {
					errCh <- err
					return
				}
				if !ok {
					errCh <- errors.New("signature did not verify")
				}
			}(suite, fx)
		}
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent suite use: %v", err)
	}
}
