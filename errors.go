package sevenz

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies an archive error.
type Kind uint8

const (
	KindOther Kind = iota
	KindInvalidArchive
	KindUnsupportedArchive
	KindPasswordRequired
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArchive:
		return "invalid archive"
	case KindUnsupportedArchive:
		return "unsupported archive"
	case KindPasswordRequired:
		return "password required"
	case KindIO:
		return "io"
	default:
		return "other"
	}
}

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrInvalidArchive     = errors.New("invalid 7z archive")
	ErrUnsupportedArchive = errors.New("unsupported 7z archive")
	ErrPasswordRequired   = errors.New("the password is required to decrypt 7z archive")
	ErrIO                 = errors.New("7z i/o failure")
)

// Causes of an invalid archive.
var (
	ErrStartHeaderCRC = errors.New("start header CRC mismatch")
	ErrNextHeaderCRC  = errors.New("next header CRC mismatch")
)

// Timestamp range errors.
var (
	ErrInvalidFileTime = errors.New("out of range of 7z timestamp")
	ErrFileTimeTooBig  = errors.New("7z timestamp is too big")
)

// Error is the error type returned for archive level failures. The message
// only depends on Kind; the structured cause is reachable through Unwrap.
type Error struct {
	Kind Kind
	Err  error
	msg  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidArchive:
		return ErrInvalidArchive.Error()
	case KindUnsupportedArchive:
		return ErrUnsupportedArchive.Error()
	case KindPasswordRequired:
		return ErrPasswordRequired.Error()
	case KindIO:
		if e.Err != nil {
			return e.Err.Error()
		}
		return ErrIO.Error()
	default:
		return e.msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindInvalidArchive:
		return target == ErrInvalidArchive
	case KindUnsupportedArchive:
		return target == ErrUnsupportedArchive
	case KindPasswordRequired:
		return target == ErrPasswordRequired
	case KindIO:
		return target == ErrIO
	}
	return false
}

// PathError embeds e in the error shape used by os and io/fs so it can be
// returned from file oriented APIs. errors.As recovers e unchanged.
func (e *Error) PathError(op, path string) *fs.PathError {
	return &fs.PathError{Op: op, Path: path, Err: e}
}

func InvalidArchive(cause error) *Error {
	return &Error{Kind: KindInvalidArchive, Err: cause}
}

func UnsupportedArchive(cause error) *Error {
	return &Error{Kind: KindUnsupportedArchive, Err: cause}
}

// UnsupportedMethod reports a coder whose method id has no decoder.
func UnsupportedMethod(id []byte) *Error {
	return UnsupportedArchive(&MethodError{Name: MethodName(id)})
}

func PasswordRequired() *Error {
	return &Error{Kind: KindPasswordRequired}
}

// IOFailure wraps err as a KindIO error. The message is err's message.
func IOFailure(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

// Errorf builds a KindOther error with a free-form message.
func Errorf(format string, a ...any) *Error {
	err := fmt.Errorf(format, a...)
	return &Error{Kind: KindOther, Err: errors.Unwrap(err), msg: err.Error()}
}

// FromIO converts an error coming back from an io call chain. An *Error
// anywhere in the chain is returned as is, so a value passed through
// PathError keeps its kind; any other error becomes a KindIO error.
func FromIO(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return IOFailure(err)
}

// SignatureError reports the bytes found where the magic number was expected.
type SignatureError struct {
	Found []byte
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("signature mismatch: found [% x]", e.Found)
}

// EndPropertyError reports a byte other than PropertyEnd at a position that
// must terminate a header record.
type EndPropertyError struct {
	Position int64
	Found    byte
}

func (e *EndPropertyError) Error() string {
	if p, ok := PropertyFromCode(e.Found); ok {
		return fmt.Sprintf("expected end property at %d, found %s (%#04x)", e.Position, p, e.Found)
	}
	return fmt.Sprintf("expected end property at %d, found %#04x", e.Position, e.Found)
}

// VersionError reports an archive format version this package cannot read.
type VersionError struct {
	Major, Minor uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported format version %d.%d", e.Major, e.Minor)
}

// MethodError names a compression method without a decoder.
type MethodError struct {
	Name string
}

func (e *MethodError) Error() string {
	return "unsupported compression method " + e.Name
}
