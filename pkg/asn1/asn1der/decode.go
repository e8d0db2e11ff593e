package asn1der

import "github.com/davidjspooner/ecsig/pkg/asn1/asn1core"

func firstTag(data []byte) (asn1core.Tag, error) {
	if len(data) < 1 {
		return 0, asn1core.NewUnexpectedError(1, 0, "tag missing").WithUnits("byte(s)").WithType(asn1core.TruncatedValue)
	}
	return asn1core.Tag(data[0]), nil
}

// splitValue reads the length following the identifier octet and cuts the body
// from the remainder. The body is capped so appending to it cannot overwrite the remainder.
func splitValue(data []byte) (body, rest []byte, err error) {
	length, consumed, err := ReadLength(data[1:])
	if err != nil {
		return nil, nil, err
	}
	start := 1 + consumed
	if len(data)-start < length {
		return nil, nil, asn1core.NewUnexpectedError(length, len(data)-start, "value truncated").WithUnits("byte(s)").WithType(asn1core.TruncatedValue)
	}
	end := start + length
	return data[start:end:end], data[end:], nil
}

func removeTLV(data []byte, want asn1core.Tag) (body, rest []byte, err error) {
	got, err := firstTag(data)
	if err != nil {
		return nil, nil, err
	}
	if got != want {
		return nil, nil, asn1core.NewUnexpectedError(want, got, "unexpected tag").WithType(asn1core.TagMismatch)
	}
	return splitValue(data)
}

// RemoveSequence returns the body of the SEQUENCE at the start of data and the bytes after it.
func RemoveSequence(data []byte) (body, rest []byte, err error) {
	return removeTLV(data, asn1core.TagSequence)
}

// RemoveBitString returns the raw BIT STRING body, unused-bits octet included.
func RemoveBitString(data []byte) (body, rest []byte, err error) {
	return removeTLV(data, asn1core.TagBitString)
}

func RemoveOctetString(data []byte) (body, rest []byte, err error) {
	return removeTLV(data, asn1core.TagOctetString)
}

// RemoveConstructed decodes a context-specific constructed value and returns its tag number.
func RemoveConstructed(data []byte) (tag int, body, rest []byte, err error) {
	got, err := firstTag(data)
	if err != nil {
		return 0, nil, nil, err
	}
	if !got.IsContextConstructed() {
		return 0, nil, nil, asn1core.NewUnexpectedError(asn1core.TagContextConstructed, got, "wanted constructed tag (0xa0-0xbf)").WithType(asn1core.TagMismatch)
	}
	body, rest, err = splitValue(data)
	if err != nil {
		return 0, nil, nil, err
	}
	return got.Number(), body, rest, nil
}
