// Package verifier checks signatures against ECDSA public keys using the
// standard library's curve arithmetic. Only the key and signature framing is
// handled here.
package verifier

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/asn1/asn1der"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
)

// KeyInfo is the outline of a SubjectPublicKeyInfo structure.
type KeyInfo struct {
	Algorithm asn1der.OID
	Curve     asn1der.OID
	Point     []byte
}

func (k *KeyInfo) String() string {
	return fmt.Sprintf("%s on %s (%d byte point)", asn1der.OIDName(k.Algorithm), asn1der.OIDName(k.Curve), len(k.Point))
}

// DescribeKey walks SEQUENCE { SEQUENCE { OID algorithm, OID curve }, BIT STRING point }.
func DescribeKey(der []byte) (*KeyInfo, error) {
	spki, rest, err := asn1der.RemoveSequence(der)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, asn1core.NewErrorf("trailing junk after public key: %d byte(s)", len(rest)).WithType(asn1core.TrailingData)
	}
	algorithmID, spki, err := asn1der.RemoveSequence(spki)
	if err != nil {
		return nil, err
	}
	info := &KeyInfo{}
	info.Algorithm, algorithmID, err = asn1der.RemoveObject(algorithmID)
	if err != nil {
		return nil, err
	}
	if !info.Algorithm.Equal(asn1der.OIDECPublicKey) {
		return nil, fmt.Errorf("public key algorithm %s is not id-ecPublicKey", info.Algorithm)
	}
	info.Curve, _, err = asn1der.RemoveObject(algorithmID)
	if err != nil {
		return nil, err
	}
	bits, _, err := asn1der.RemoveBitString(spki)
	if err != nil {
		return nil, err
	}
	if len(bits) < 1 || bits[0] != 0 {
		return nil, fmt.Errorf("public key bit string has unused bits")
	}
	info.Point = bits[1:]
	return info, nil
}

// LoadPublicKey decodes a PEM framed PKIX public key, which must be ECDSA.
func LoadPublicKey(pemText []byte) (*ecdsa.PublicKey, *KeyInfo, error) {
	der, err := asn1der.FromPem(string(pemText))
	if err != nil {
		return nil, nil, err
	}
	info, err := DescribeKey(der)
	if err != nil {
		return nil, nil, err
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, nil, err
	}
	pub, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("public key is %T, not ECDSA", key)
	}
	return pub, info, nil
}

// Verify hashes message with SHA-256 and checks sig against pub.
func Verify(pub *ecdsa.PublicKey, message []byte, sig *ecsig.Signature) bool {
	digest := sha256.Sum256(message)
	return ecdsa.Verify(pub, digest[:], sig.R(), sig.S())
}
