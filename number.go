package sevenz

import (
	"fmt"

	"github.com/javi11/sevenz/internal/parse"
)

// ReadNumber decodes a header NUMBER from the start of b and returns the
// value and the count of bytes it used. Truncated input is an invalid
// archive.
func ReadNumber(b []byte) (uint64, int, error) {
	v, n, err := parse.ReadNumberFromSlice(b)
	if err != nil {
		return 0, n, InvalidArchive(fmt.Errorf("read number: %w", err))
	}
	return v, n, nil
}

// AppendNumber appends the shortest NUMBER encoding of v to dst.
func AppendNumber(dst []byte, v uint64) []byte { return parse.AppendNumber(dst, v) }

// NumberLen returns the size of the NUMBER encoding of v.
func NumberLen(v uint64) int { return parse.NumberLen(v) }
