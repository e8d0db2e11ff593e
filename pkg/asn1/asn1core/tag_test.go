package asn1core

import "testing"

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{TagSequence, "Sequence(0x30)"},
		{TagInteger, "Integer(0x02)"},
		{TagOID, "OID(0x06)"},
		{ContextConstructed(0), "[0] constructed(0xa0)"},
		{ContextConstructed(3), "[3] constructed(0xa3)"},
		{Tag(0x31), "tag=0x31"},
	}
	for _, test := range tests {
		if got := test.tag.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestTagBits(t *testing.T) {
	for n := 0; n < 32; n++ {
		tag := ContextConstructed(n)
		if !tag.IsContextConstructed() {
			t.Errorf("0x%02x not recognised as context constructed", byte(tag))
		}
		if tag.Number() != n {
			t.Errorf("0x%02x: got number %d, want %d", byte(tag), tag.Number(), n)
		}
	}
	for _, tag := range []Tag{TagSequence, 0x80, 0xC0, 0xE0, 0x20} {
		if tag.IsContextConstructed() {
			t.Errorf("0x%02x wrongly recognised as context constructed", byte(tag))
		}
	}
	if TagSequence.Class() != ClassUniversal || !TagSequence.IsConstructed() {
		t.Error("sequence should be universal and constructed")
	}
}

func TestParseTag(t *testing.T) {
	for name, want := range map[string]Tag{
		"sequence":         TagSequence,
		"SequenceOf":       TagSequence,
		"objectidentifier": TagOID,
		"BitString":        TagBitString,
	} {
		got, err := ParseTag(name)
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
	if _, err := ParseTag("Boolean"); err == nil {
		t.Error("expected an error for an unsupported tag")
	}
	for _, name := range []string{"contextspecific", "Context"} {
		class, err := ParseClass(name)
		if err != nil || class != ClassContextSpecific {
			t.Errorf("%s: got %s, %v", name, class, err)
		}
	}
	if Class(7).String() != "class=7" {
		t.Errorf("got %s", Class(7))
	}
}
