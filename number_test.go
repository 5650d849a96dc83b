package sevenz

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNumber(t *testing.T) {
	t.Parallel()

	buf := AppendNumber(nil, 1<<20)
	buf = append(buf, PropertyEnd.Code())
	require.Len(t, buf, NumberLen(1<<20)+1)

	v, n, err := ReadNumber(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<20), v)
	require.NoError(t, ExpectEnd(int64(n), buf[n]))
}

func TestReadNumberTruncated(t *testing.T) {
	t.Parallel()

	_, _, err := ReadNumber([]byte{0xC0, 0x00})
	require.ErrorIs(t, err, ErrInvalidArchive)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "invalid 7z archive", err.Error())
}
