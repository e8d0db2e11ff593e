package asn1der

import (
	"bytes"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
)

func TestPemMatchesEncodingPem(t *testing.T) {
	for _, size := range []int{0, 1, 47, 48, 49, 96, 200} {
		data := bytes.Repeat([]byte{0x5A, 0xC3}, size)[:size]
		want := string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: data}))
		got := ToPem(data, "EC PRIVATE KEY")
		if got != want {
			t.Errorf("size %d:\ngot  %q\nwant %q", size, got, want)
		}
		decoded, err := FromPem(got)
		if err != nil {
			t.Fatalf("size %d: %s", size, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("size %d: round trip got 0x%X", size, decoded)
		}
	}
}

func TestPemLayout(t *testing.T) {
	text := ToPem(bytes.Repeat([]byte{0xFF}, 60), "SIGNATURE")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if lines[0] != "-----BEGIN SIGNATURE-----" || lines[len(lines)-1] != "-----END SIGNATURE-----" {
		t.Errorf("bad markers in %q", text)
	}
	if len(lines[1]) != 64 || len(lines[2]) != 16 {
		t.Errorf("got body line lengths %d and %d", len(lines[1]), len(lines[2]))
	}
	label, ok := PemLabel(text)
	if !ok || label != "SIGNATURE" {
		t.Errorf("got label %q", label)
	}
}

func TestFromPemTolerance(t *testing.T) {
	text := "-----BEGIN X-----\r\nMAYCAQECAQI=\r\n-----END X-----\r\n"
	got, err := FromPem(text)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}) {
		t.Errorf("got 0x%X", got)
	}
	if _, err := FromPem("-----BEGIN X-----\n***\n-----END X-----\n"); !asn1core.IsType(err, asn1core.InvalidText) {
		t.Errorf("got %v, want InvalidText", err)
	}
	if _, ok := PemLabel("no markers"); ok {
		t.Error("found a label in plain text")
	}
}

func TestBase64(t *testing.T) {
	if got := EncodeBase64([]byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}); got != "MAYCAQECAQI=" {
		t.Errorf("got %q", got)
	}
	decoded, err := DecodeBase64(" MAYCAQECAQI=\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 8 {
		t.Errorf("got 0x%X", decoded)
	}
	if _, err := DecodeBase64("MAYCAQECAQI"); !asn1core.IsType(err, asn1core.InvalidText) {
		t.Errorf("unpadded input: got %v", err)
	}
	if _, err := DecodeBase64("MA-_"); !asn1core.IsType(err, asn1core.InvalidText) {
		t.Errorf("url alphabet: got %v", err)
	}
}
