package asn1der

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
)

type OID []int

// EncodeOid emits an OBJECT IDENTIFIER. The first two components are folded
// into one octet, so the first must be at most 2 and the second at most 39.
func EncodeOid(oid OID) ([]byte, error) {
	if len(oid) < 2 {
		return nil, asn1core.NewUnexpectedError(2, len(oid), "OID prefix").WithUnits("elements").WithType(asn1core.MalformedOid)
	}
	first, second := oid[0], oid[1]
	if first < 0 || first > 2 {
		return nil, asn1core.NewUnexpectedError("0..2", strconv.Itoa(first), "OID first element").WithType(asn1core.MalformedOid)
	}
	if second < 0 || second > 39 {
		return nil, asn1core.NewUnexpectedError("0..39", strconv.Itoa(second), "OID second element").WithType(asn1core.MalformedOid)
	}
	b := bytes.Buffer{}
	b.WriteByte(byte(40*first + second))
	for i := 2; i < len(oid); i++ {
		n := oid[i]
		if n < 0 {
			return nil, asn1core.NewErrorf("OID element %d is negative", i).WithType(asn1core.MalformedOid)
		}
		writeBase128(&b, n)
	}
	return encodeTLV(asn1core.TagOID, b.Bytes()), nil
}

func writeBase128(b *bytes.Buffer, n int) {
	if n < 0x80 {
		b.WriteByte(byte(n))
		return
	}
	var reverse [10]byte
	j := 0
	for n > 0 {
		reverse[j] = byte(n & 0x7F)
		n >>= 7
		j++
	}
	for j--; j >= 0; j-- {
		if j > 0 {
			b.WriteByte(reverse[j] | 0x80)
		} else {
			b.WriteByte(reverse[j])
		}
	}
}

// RemoveObject decodes an OBJECT IDENTIFIER, unfolding the first octet into two components.
func RemoveObject(data []byte) (OID, []byte, error) {
	body, rest, err := removeTLV(data, asn1core.TagOID)
	if err != nil {
		return nil, nil, err
	}
	numbers := make([]int, 0, 10)
	for len(body) > 0 {
		n, consumed, err := readBase128(body)
		if err != nil {
			return nil, nil, err
		}
		numbers = append(numbers, n)
		body = body[consumed:]
	}
	if len(numbers) == 0 {
		return nil, nil, asn1core.NewErrorf("OID body is empty").WithType(asn1core.MalformedOid)
	}
	first := numbers[0] / 40
	second := numbers[0] - 40*first
	oid := append(OID{first, second}, numbers[1:]...)
	return oid, rest, nil
}

const maxBase128 = int(^uint(0)>>1) >> 7

func readBase128(body []byte) (n int, consumed int, err error) {
	for consumed < len(body) {
		if n > maxBase128 {
			return 0, 0, asn1core.NewErrorf("OID element overflows int").WithType(asn1core.MalformedOid)
		}
		d := body[consumed]
		n = n<<7 | int(d&0x7F)
		consumed++
		if d&0x80 == 0 {
			return n, consumed, nil
		}
	}
	return 0, 0, asn1core.NewErrorf("OID element %d is truncated", n).WithType(asn1core.MalformedOid)
}

func (o OID) String() string {
	sb := strings.Builder{}
	for i, v := range o {
		if i != 0 {
			sb.WriteString(".")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

func (o OID) Equal(other OID) bool {
	return slices.Equal(o, other)
}

// ParseOID accepts dotted decimal form or one of the names known to OIDName.
func ParseOID(s string) (OID, error) {
	if known, ok := oidByName[strings.ToLower(s)]; ok {
		return slices.Clone(known), nil
	}
	parts := strings.Split(s, ".")
	oid := make(OID, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, asn1core.NewErrorf("OID element %d of %q is empty", i, s).WithType(asn1core.MalformedOid)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, asn1core.NewErrorf("OID element %d of %q is not a number", i, s).WithType(asn1core.MalformedOid)
		}
		oid = append(oid, n)
	}
	return oid, nil
}
