package asn1der

import "github.com/davidjspooner/ecsig/pkg/asn1/asn1core"

// encodeTLV writes tag, the length of the concatenated parts and the parts themselves.
func encodeTLV(tag asn1core.Tag, parts ...[]byte) []byte {
	length := 0
	for _, part := range parts {
		length += len(part)
	}
	encodedLength := EncodeLength(length)
	b := make([]byte, 0, 1+len(encodedLength)+length)
	b = append(b, byte(tag))
	b = append(b, encodedLength...)
	for _, part := range parts {
		b = append(b, part...)
	}
	return b
}

// EncodeSequence wraps already encoded values in a SEQUENCE. No parts gives an empty sequence.
func EncodeSequence(parts ...[]byte) []byte {
	return encodeTLV(asn1core.TagSequence, parts...)
}

// EncodeBitString emits b as the body of a BIT STRING. The caller supplies the
// unused-bits octet as the first byte of b.
func EncodeBitString(b []byte) []byte {
	return encodeTLV(asn1core.TagBitString, b)
}

func EncodeOctetString(b []byte) []byte {
	return encodeTLV(asn1core.TagOctetString, b)
}

// EncodeConstructed emits a context-specific constructed value [tag]. tag is
// expected in 0..31 and is not checked.
func EncodeConstructed(tag int, b []byte) []byte {
	return encodeTLV(asn1core.ContextConstructed(tag), b)
}
