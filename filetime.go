package sevenz

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"time"
)

// FileTime is a 7z timestamp: the number of 100 ns ticks since
// 1601-01-01 00:00:00 UTC, the same value as a Windows NT FILETIME.
// The zero value is the epoch itself.
type FileTime uint64

const (
	ticksPerSecond = 10_000_000
	nanosPerTick   = 100
	// ntEpochUnix is 1601-01-01 00:00:00 UTC in Unix seconds.
	ntEpochUnix int64 = -11_644_473_600
)

var (
	NTEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)
	// MaxStandardTime is the last instant Time returns without large dates.
	MaxStandardTime = time.Date(9999, time.December, 31, 23, 59, 59, 999_999_999, time.UTC)
)

func (ft FileTime) Uint64() uint64 { return uint64(ft) }

// NewFileTime converts t to a FileTime, truncating to 100 ns. It fails with
// ErrInvalidFileTime when t is before the epoch or past the last
// representable tick.
func NewFileTime(t time.Time) (FileTime, error) {
	return defaultConverter.FromTime(t)
}

// Time converts ft to a UTC time. Values past MaxStandardTime fail with
// ErrFileTimeTooBig; use a TimeConverter created WithLargeDates to accept
// the whole range.
func (ft FileTime) Time() (time.Time, error) {
	return defaultConverter.ToTime(ft)
}

func (ft FileTime) String() string {
	t, err := ft.Time()
	if err != nil {
		return strconv.FormatUint(uint64(ft), 10)
	}
	return t.Format(time.RFC3339Nano)
}

// TimeConverter converts between FileTime and time.Time under a range policy.
// The zero value uses the standard range.
type TimeConverter struct {
	largeDates bool
}

// TimeOption configures a TimeConverter.
type TimeOption func(*TimeConverter)

// WithLargeDates lets ToTime produce instants past year 9999, covering every
// tick up to 60056-05-28 05:36:10.9551615 UTC.
func WithLargeDates() TimeOption {
	return func(c *TimeConverter) { c.largeDates = true }
}

var defaultConverter = NewTimeConverter()

func NewTimeConverter(opts ...TimeOption) TimeConverter {
	var c TimeConverter
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LargeDates reports whether c accepts instants past MaxStandardTime.
func (c TimeConverter) LargeDates() bool { return c.largeDates }

// FromTime converts t to ticks since the epoch.
func (c TimeConverter) FromTime(t time.Time) (FileTime, error) {
	unix := t.Unix()
	if unix > math.MaxInt64+ntEpochUnix {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFileTime, t.UTC())
	}
	secs := unix - ntEpochUnix
	if secs < 0 {
		return 0, fmt.Errorf("%w: %s is before %s", ErrInvalidFileTime, t.UTC(), NTEpoch)
	}
	hi, ticks := bits.Mul64(uint64(secs), ticksPerSecond)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFileTime, t.UTC())
	}
	ticks, carry := bits.Add64(ticks, uint64(t.Nanosecond()/nanosPerTick), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFileTime, t.UTC())
	}
	return FileTime(ticks), nil
}

// ToTime converts ft to a UTC time.
func (c TimeConverter) ToTime(ft FileTime) (time.Time, error) {
	secs := int64(uint64(ft) / ticksPerSecond)
	nanos := int64(uint64(ft)%ticksPerSecond) * nanosPerTick
	t := time.Unix(ntEpochUnix+secs, nanos).UTC()
	if !c.largeDates && t.After(MaxStandardTime) {
		return time.Time{}, fmt.Errorf("%w: %d ticks", ErrFileTimeTooBig, uint64(ft))
	}
	return t, nil
}
