package sigfile

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidjspooner/ecsig/pkg/asn1/asn1core"
	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = ecsig.New(big.NewInt(1), big.NewInt(2))

func TestDetect(t *testing.T) {
	tests := []struct {
		data string
		want Format
	}{
		{"", FormatUnknown},
		{"\x30\x06\x02\x01\x01\x02\x01\x02", FormatDER},
		{"-----BEGIN SIGNATURE-----\nMAYCAQECAQI=\n-----END SIGNATURE-----\n", FormatPEM},
		{"\n  -----BEGIN X-----\n", FormatPEM},
		{"MAYCAQECAQI=\n", FormatBase64},
		{"3006020101020102\n", FormatHex},
		{"300602010102010", FormatBase64},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Detect([]byte(test.data)), "%q", test.data)
	}
}

func TestRenderAndParse(t *testing.T) {
	for _, format := range []Format{FormatDER, FormatPEM, FormatBase64, FormatHex} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Render(sample, format, "ECDSA SIGNATURE")
			require.NoError(t, err)
			assert.Equal(t, format, Detect(data))

			sig, detected, err := Parse(data, FormatUnknown)
			require.NoError(t, err)
			assert.Equal(t, format, detected)
			assert.True(t, sample.Equal(sig))

			sig, _, err = Parse(data, format)
			require.NoError(t, err)
			assert.True(t, sample.Equal(sig))
		})
	}
	_, err := Render(sample, FormatUnknown, "")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse([]byte("zz"), FormatHex)
	assert.True(t, asn1core.IsType(err, asn1core.InvalidText))

	_, _, err = Parse([]byte("3106020101020102"), FormatUnknown)
	assert.True(t, asn1core.IsType(err, asn1core.TagMismatch))

	_, _, err = Parse([]byte{}, FormatUnknown)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sig.pem")
	data, err := Render(sample, FormatPEM, "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	sig, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPEM, format)
	assert.Equal(t, "r=1 s=2", sig.String())

	junk := filepath.Join(dir, "junk.der")
	require.NoError(t, os.WriteFile(junk, []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02, 0x00}, 0o600))
	_, _, err = Load(junk)
	assert.True(t, asn1core.IsType(err, asn1core.TrailingData))
	assert.Contains(t, err.Error(), junk)

	_, _, err = Load(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": FormatUnknown, "auto": FormatUnknown, "DER": FormatDER, "pem": FormatPEM, "base64": FormatBase64, "hex": FormatHex} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseFormat("unknown")
	assert.Error(t, err)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
