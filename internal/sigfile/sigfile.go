// Package sigfile reads signatures from disk in any of the text or binary
// forms the codec understands.
package sigfile

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatDER
	FormatPEM
	FormatBase64
	FormatHex
)

var formatNames = map[Format]string{
	FormatUnknown: "unknown",
	FormatDER:     "der",
	FormatPEM:     "pem",
	FormatBase64:  "base64",
	FormatHex:     "hex",
}

func (f Format) String() string {
	name, ok := formatNames[f]
	if ok {
		return name
	}
	return fmt.Sprintf("format=%d", int(f))
}

func ParseFormat(name string) (Format, error) {
	lname := strings.ToLower(strings.TrimSpace(name))
	if lname == "" || lname == "auto" {
		return FormatUnknown, nil
	}
	for f, n := range formatNames {
		if n == lname && f != FormatUnknown {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unknown format %q", name)
}

// Detect guesses the encoding of data. A leading SEQUENCE tag means raw DER and a
// BEGIN marker means PEM; text made only of hex digits is hex, anything else base64.
func Detect(data []byte) Format {
	if len(data) == 0 {
		return FormatUnknown
	}
	if asn1core.Tag(data[0]) == asn1core.TagSequence {
		return FormatDER
	}
	text := bytes.TrimSpace(data)
	if bytes.HasPrefix(text, []byte("-----BEGIN ")) {
		return FormatPEM
	}
	if len(text) > 0 && len(text)%2 == 0 && isHex(text) {
		return FormatHex
	}
	return FormatBase64
}

func isHex(text []byte) bool {
	for _, c := range text {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Parse decodes data in the given format; FormatUnknown means detect it first.
func Parse(data []byte, format Format) (*ecsig.Signature, Format, error) {
	if format == FormatUnknown {
		format = Detect(data)
	}
	switch format {
	case FormatDER:
		sig, err := ecsig.FromDer(data)
		return sig, format, err
	case FormatPEM:
		sig, err := ecsig.FromPem(string(data))
		return sig, format, err
	case FormatBase64:
		sig, err := ecsig.FromBase64(string(data))
		return sig, format, err
	case FormatHex:
		der, err := hex.DecodeString(string(bytes.TrimSpace(data)))
		if err != nil {
			return nil, format, asn1core.NewErrorf("invalid hex text").WithCause(err).WithType(asn1core.InvalidText)
		}
		sig, err := ecsig.FromDer(der)
		return sig, format, err
	}
	return nil, format, fmt.Errorf("cannot decode %s data", format)
}

// Load reads path and decodes it, detecting the format.
func Load(path string) (*ecsig.Signature, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FormatUnknown, err
	}
	sig, format, err := Parse(data, FormatUnknown)
	if err != nil {
		return nil, format, fmt.Errorf("%s: %w", path, err)
	}
	return sig, format, nil
}

// Render encodes sig in format. label is only used for PEM.
func Render(sig *ecsig.Signature, format Format, label string) ([]byte, error) {
	switch format {
	case FormatDER:
		return sig.ToDer()
	case FormatPEM:
		text, err := sig.ToPem(label)
		return []byte(text), err
	case FormatBase64:
		text, err := sig.ToBase64()
		if err != nil {
			return nil, err
		}
		return []byte(text + "\n"), nil
	case FormatHex:
		der, err := sig.ToDer()
		if err != nil {
			return nil, err
		}
		return []byte(hex.EncodeToString(der) + "\n"), nil
	}
	return nil, fmt.Errorf("cannot encode to %s", format)
}
