package asn1der

import (
	"encoding/base64"
	"strings"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
)

const pemLineLength = 64

// EncodeBase64 uses the standard alphabet with padding and no line breaks.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func DecodeBase64(text string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, asn1core.NewErrorf("invalid base64 text").WithCause(err).WithType(asn1core.InvalidText)
	}
	return b, nil
}

// ToPem frames b as "-----BEGIN name-----", base64 lines of 64 characters and
// "-----END name-----". Every line, the last included, ends in a newline.
func ToPem(b []byte, name string) string {
	b64 := EncodeBase64(b)
	sb := strings.Builder{}
	sb.Grow(len(b64) + len(b64)/pemLineLength + 2*len(name) + 40)
	sb.WriteString("-----BEGIN " + name + "-----\n")
	for start := 0; start < len(b64); start += pemLineLength {
		end := min(start+pemLineLength, len(b64))
		sb.WriteString(b64[start:end])
		sb.WriteByte('\n')
	}
	sb.WriteString("-----END " + name + "-----\n")
	return sb.String()
}

// FromPem drops every line starting with "-----", joins the rest and decodes it as base64.
func FromPem(text string) ([]byte, error) {
	sb := strings.Builder{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-----") {
			continue
		}
		sb.WriteString(line)
	}
	return DecodeBase64(sb.String())
}

// PemLabel returns the name from the first BEGIN marker in text.
func PemLabel(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if label, ok := strings.CutPrefix(line, "-----BEGIN "); ok {
			return strings.TrimSuffix(label, "-----"), true
		}
	}
	return "", false
}
