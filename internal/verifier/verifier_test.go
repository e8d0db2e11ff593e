package verifier

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"testing"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/asn1/asn1der"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicKeyPem(t *testing.T, key any) []byte {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(key)
	require.NoError(t, err)
	return []byte(asn1der.ToPem(der, "PUBLIC KEY"))
}

func TestVerify(t *testing.T) {
	for _, curve := range []struct {
		curve elliptic.Curve
		oid   asn1der.OID
	}{
		{elliptic.P256(), asn1der.OIDPrime256v1},
		{elliptic.P384(), asn1der.OIDSecp384r1},
		{elliptic.P521(), asn1der.OIDSecp521r1},
	} {
		t.Run(curve.curve.Params().Name, func(t *testing.T) {
			key, err := ecdsa.GenerateKey(curve.curve, rand.Reader)
			require.NoError(t, err)

			pub, info, err := LoadPublicKey(publicKeyPem(t, &key.PublicKey))
			require.NoError(t, err)
			assert.True(t, info.Algorithm.Equal(asn1der.OIDECPublicKey))
			assert.True(t, info.Curve.Equal(curve.oid), "got curve %s", info.Curve)
			assert.Equal(t, byte(0x04), info.Point[0])

			message := []byte("pay 10 to bob")
			digest := sha256.Sum256(message)
			r, s, err := ecdsa.Sign(rand.Reader, key, digest[:])
			require.NoError(t, err)

			der, err := ecsig.New(r, s).ToDer()
			require.NoError(t, err)
			sig, err := ecsig.FromDer(der)
			require.NoError(t, err)

			assert.True(t, Verify(pub, message, sig))
			assert.False(t, Verify(pub, []byte("pay 99 to bob"), sig))
		})
	}
}

func TestKeyInfoString(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	_, info, err := LoadPublicKey(publicKeyPem(t, &key.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, "id-ecPublicKey on prime256v1 (65 byte point)", info.String())
}

func TestLoadPublicKeyErrors(t *testing.T) {
	edPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, _, err = LoadPublicKey(publicKeyPem(t, edPub))
	assert.ErrorContains(t, err, "not id-ecPublicKey")

	_, _, err = LoadPublicKey([]byte("-----BEGIN PUBLIC KEY-----\n!!!\n-----END PUBLIC KEY-----\n"))
	assert.True(t, asn1core.IsType(err, asn1core.InvalidText))

	_, _, err = LoadPublicKey([]byte(asn1der.ToPem([]byte{0x02, 0x01, 0x01}, "PUBLIC KEY")))
	assert.True(t, asn1core.IsType(err, asn1core.TagMismatch))
}
