package sevenz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{'7', 'z', 0xbc, 0xaf, 0x27, 0x1c}, MagicNumber)
}

func TestCheckSignature(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckSignature([]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}))
	// Start header continues with the version bytes.
	require.NoError(t, CheckSignature([]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c, 0x00, 0x04}))

	tests := []struct {
		name  string
		in    []byte
		found []byte
	}{
		{"rar", []byte("Rar!\x1A\x07\x01\x00"), []byte("Rar!\x1A\x07")},
		{"truncated", []byte{0x37, 0x7a, 0xbc}, []byte{0x37, 0x7a, 0xbc}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckSignature(tt.in)
			require.ErrorIs(t, err, ErrInvalidArchive)
			var sigErr *SignatureError
			require.ErrorAs(t, err, &sigErr)
			assert.Equal(t, tt.found, sigErr.Found)
		})
	}
}

func TestCheckSignatureCopiesInput(t *testing.T) {
	t.Parallel()

	in := []byte("PK\x03\x04\x14\x00")
	err := CheckSignature(in)
	in[0] = 0
	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
	assert.Equal(t, byte('P'), sigErr.Found[0])
}

func TestCheckVersion(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckVersion(MajorVersion, MinorVersion))
	require.NoError(t, CheckVersion(0, 2))
	require.NoError(t, CheckVersion(0, 0xff))

	err := CheckVersion(1, 0)
	require.ErrorIs(t, err, ErrUnsupportedArchive)
	var verErr *VersionError
	require.ErrorAs(t, err, &verErr)
	assert.Equal(t, VersionError{Major: 1, Minor: 0}, *verErr)
}

func TestExpectEnd(t *testing.T) {
	t.Parallel()

	require.NoError(t, ExpectEnd(10, PropertyEnd.Code()))

	err := ExpectEnd(10, PropertyCrc.Code())
	require.ErrorIs(t, err, ErrInvalidArchive)
	var endErr *EndPropertyError
	require.ErrorAs(t, err, &endErr)
	assert.Equal(t, EndPropertyError{Position: 10, Found: 0x0a}, *endErr)
}
