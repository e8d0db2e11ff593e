package asn1der

import (
	"math/big"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
)

// EncodeInteger emits x as a DER INTEGER. Only non-negative values are accepted;
// a 0x00 octet is prepended when the top bit of the magnitude is set.
func EncodeInteger(x *big.Int) ([]byte, error) {
	if x == nil {
		return nil, asn1core.NewErrorf("integer is nil")
	}
	if x.Sign() < 0 {
		return nil, asn1core.NewUnexpectedError(">= 0", x.String(), "integer cannot be negative").WithType(asn1core.NegativeValue)
	}
	magnitude := x.Bytes()
	switch {
	case len(magnitude) == 0:
		return encodeTLV(asn1core.TagInteger, []byte{0x00}), nil
	case magnitude[0]&0x80 != 0:
		return encodeTLV(asn1core.TagInteger, []byte{0x00}, magnitude), nil
	default:
		return encodeTLV(asn1core.TagInteger, magnitude), nil
	}
}

// RemoveInteger decodes a non-negative DER INTEGER.
func RemoveInteger(data []byte) (*big.Int, []byte, error) {
	body, rest, err := removeTLV(data, asn1core.TagInteger)
	if err != nil {
		return nil, nil, err
	}
	if err := checkIntegerBody(body); err != nil {
		return nil, nil, err
	}
	return new(big.Int).SetBytes(body), rest, nil
}

func checkIntegerBody(body []byte) error {
	if len(body) == 0 {
		return asn1core.NewUnexpectedError(1, 0, "integer body empty").WithUnits("byte(s)").WithType(asn1core.InvalidIntegerEncoding)
	}
	if body[0] >= 0x80 {
		return asn1core.NewErrorf("integer is negative (leading byte 0x%02x)", body[0]).WithType(asn1core.InvalidIntegerEncoding)
	}
	if len(body) > 1 && body[0] == 0x00 && body[1] < 0x80 {
		return asn1core.NewErrorf("integer has a redundant leading zero byte").WithType(asn1core.InvalidIntegerEncoding)
	}
	return nil
}
