package sevenz

import "bytes"

// Signature and format version declarations.

// MagicNumber opens every 7z archive: "7z" followed by bc af 27 1c.
var MagicNumber = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}

// Format version written by current 7-Zip releases.
const (
	MajorVersion uint8 = 0
	MinorVersion uint8 = 4
)

// CheckSignature validates the leading bytes of a start header.
func CheckSignature(b []byte) error {
	if len(b) >= len(MagicNumber) && bytes.Equal(b[:len(MagicNumber)], MagicNumber) {
		return nil
	}
	found := b
	if len(found) > len(MagicNumber) {
		found = found[:len(MagicNumber)]
	}
	return InvalidArchive(&SignatureError{Found: bytes.Clone(found)})
}

// CheckVersion accepts any minor version of the supported major version.
func CheckVersion(major, minor uint8) error {
	if major != MajorVersion {
		return UnsupportedArchive(&VersionError{Major: major, Minor: minor})
	}
	return nil
}

// ExpectEnd checks that the byte read at pos terminates a header record.
func ExpectEnd(pos int64, b byte) error {
	if b != PropertyEnd.Code() {
		return InvalidArchive(&EndPropertyError{Position: pos, Found: b})
	}
	return nil
}
