// Package ecsig holds the value form of an elliptic-curve signature and its
// canonical DER, base64 and PEM representations.
package ecsig

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/asn1/asn1der"
)

// DefaultPemLabel is the PEM name used when callers do not supply one.
const DefaultPemLabel = "SIGNATURE"

// Signature is an immutable (r, s) pair.
type Signature struct {
	r, s *big.Int
}

// New copies r and s into a new Signature. A nil component is treated as zero.
// Negative components are accepted here and rejected when encoding.
func New(r, s *big.Int) *Signature {
	return &Signature{r: clone(r), s: clone(s)}
}

func clone(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}

func (sig *Signature) R() *big.Int {
	return clone(sig.r)
}

func (sig *Signature) S() *big.Int {
	return clone(sig.s)
}

func (sig *Signature) Equal(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("r=%s s=%s", sig.r, sig.s)
}

// ToDer encodes the signature as SEQUENCE { INTEGER r, INTEGER s }.
func (sig *Signature) ToDer() ([]byte, error) {
	r, err := asn1der.EncodeInteger(sig.r)
	if err != nil {
		return nil, err
	}
	s, err := asn1der.EncodeInteger(sig.s)
	if err != nil {
		return nil, err
	}
	return asn1der.EncodeSequence(r, s), nil
}

func (sig *Signature) ToBase64() (string, error) {
	der, err := sig.ToDer()
	if err != nil {
		return "", err
	}
	return asn1der.EncodeBase64(der), nil
}

func (sig *Signature) ToHex() (string, error) {
	der, err := sig.ToDer()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(der), nil
}

// ToPem frames the DER encoding under name, or DefaultPemLabel when name is empty.
func (sig *Signature) ToPem(name string) (string, error) {
	der, err := sig.ToDer()
	if err != nil {
		return "", err
	}
	if name == "" {
		name = DefaultPemLabel
	}
	return asn1der.ToPem(der, name), nil
}

// FromDer decodes exactly one DER signature; any byte left over is an error.
func FromDer(data []byte) (*Signature, error) {
	body, rest, err := asn1der.RemoveSequence(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, trailingJunk("after DER signature", rest)
	}
	r, rest, err := asn1der.RemoveInteger(body)
	if err != nil {
		return nil, err
	}
	s, rest, err := asn1der.RemoveInteger(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, trailingJunk("after DER numbers", rest)
	}
	return &Signature{r: r, s: s}, nil
}

func FromBase64(text string) (*Signature, error) {
	der, err := asn1der.DecodeBase64(text)
	if err != nil {
		return nil, err
	}
	return FromDer(der)
}

// FromPem ignores the PEM label; any framed DER signature is accepted.
func FromPem(text string) (*Signature, error) {
	der, err := asn1der.FromPem(text)
	if err != nil {
		return nil, err
	}
	return FromDer(der)
}

func trailingJunk(where string, junk []byte) error {
	return asn1core.NewErrorf("trailing junk %s: %s", where, hex.EncodeToString(junk)).WithType(asn1core.TrailingData)
}
