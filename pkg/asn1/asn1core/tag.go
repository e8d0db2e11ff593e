package asn1core

import "fmt"

// Tag is a complete DER identifier octet: class, constructed flag and tag number.
type Tag byte

const (
	Constructed = Tag(0x20)
	NumberMask  = Tag(0x1F)

	TagInteger     = Tag(0x02)
	TagBitString   = Tag(0x03)
	TagOctetString = Tag(0x04)
	TagOID         = Tag(0x06)
	TagSequence    = Tag(0x30)

	// TagContextConstructed is [0] with the constructed bit set; tag numbers are OR'd in.
	TagContextConstructed = Tag(0xA0)
)

var tagMap nameTable[Tag]

func init() {
	tagMap.Add("Integer", TagInteger)
	tagMap.Add("BitString", TagBitString)
	tagMap.Add("OctetString", TagOctetString)
	tagMap.Add("OID", TagOID)
	tagMap.Add("Sequence", TagSequence)

	tagMap.AddAlias("OID", "ObjectIdentifier")
	tagMap.AddAlias("Sequence", "SequenceOf")
}

// ContextConstructed returns the identifier octet for the context-specific constructed tag n.
// n is not range checked.
func ContextConstructed(n int) Tag {
	return TagContextConstructed | Tag(n)
}

func (t Tag) Class() Class {
	return Class(t >> 6)
}

func (t Tag) Number() int {
	return int(t & NumberMask)
}

func (t Tag) IsConstructed() bool {
	return t&Constructed != 0
}

// IsContextConstructed reports whether the top three bits of t are 0b101.
func (t Tag) IsContextConstructed() bool {
	return t.Class() == ClassContextSpecific && t.IsConstructed()
}

func (t Tag) String() string {
	name, err := tagMap.Name(t)
	if err == nil {
		return fmt.Sprintf("%s(0x%02x)", name, byte(t))
	}
	if t.IsContextConstructed() {
		return fmt.Sprintf("[%d] constructed(0x%02x)", t.Number(), byte(t))
	}
	return fmt.Sprintf("tag=0x%02x", byte(t))
}

func ParseTag(tag string) (Tag, error) {
	return tagMap.Value(tag)
}
