package asn1der

import "github.com/davidjspooner/ecsig/pkg/asn1/asn1core"

// maxLengthOctets limits long form lengths to 32 bits.
const maxLengthOctets = 4

// EncodeLength returns the DER length octets for n. n must not be negative.
func EncodeLength(n int) []byte {
	if n < 0 {
		panic("asn1der: negative length")
	}
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var reverse [8]byte
	count := 0
	for v := n; v > 0; v >>= 8 {
		reverse[count] = byte(v)
		count++
	}
	b := make([]byte, 1+count)
	b[0] = 0x80 | byte(count)
	for i := 0; i < count; i++ {
		b[1+i] = reverse[count-1-i]
	}
	return b
}

// ReadLength decodes the length octets at the start of data, returning the
// length and the number of octets it occupied.
func ReadLength(data []byte) (length int, consumed int, err error) {
	if len(data) < 1 {
		return 0, 0, asn1core.NewUnexpectedError(1, len(data), "length missing").WithUnits("byte(s)").WithType(asn1core.TruncatedValue)
	}
	first := data[0]
	if first&0x80 == 0 {
		return int(first & 0x7F), 1, nil
	}
	count := int(first & 0x7F)
	if count == 0 {
		return 0, 0, asn1core.NewErrorf("indefinite length is not allowed").WithType(asn1core.NonCanonicalLength)
	}
	if count > len(data)-1 {
		return 0, 0, asn1core.NewUnexpectedError(count, len(data)-1, "ran out of length bytes").WithUnits("byte(s)").WithType(asn1core.TruncatedLength)
	}
	if count > maxLengthOctets {
		return 0, 0, asn1core.NewUnexpectedError(maxLengthOctets, count, "length too long").WithUnits("byte(s)").WithType(asn1core.NonCanonicalLength)
	}
	if data[1] == 0 {
		return 0, 0, asn1core.NewErrorf("long form length has a leading zero byte").WithType(asn1core.NonCanonicalLength)
	}
	for _, b := range data[1 : 1+count] {
		length = length<<8 | int(b)
	}
	if length < 0x80 {
		return 0, 0, asn1core.NewErrorf("long form used for length %d", length).WithType(asn1core.NonCanonicalLength)
	}
	return length, 1 + count, nil
}
