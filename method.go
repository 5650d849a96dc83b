package sevenz

import (
	"bytes"
	"encoding/hex"
)

// Family is the top level of the method id hierarchy.
type Family uint8

const (
	FamilyCopy Family = iota + 1
	FamilyDelta
	FamilyLzma2
	FamilySz
	FamilyMisc
	FamilyCrypto
)

// SzMethod enumerates the 7-Zip native coders (id prefix 0x03).
type SzMethod uint8

const (
	SzLzma SzMethod = iota + 1
	SzBcj
	SzBcj2
	SzPpc
	SzIa64
	SzArm
	SzArmT
	SzSparc
	SzPpmd
)

// MiscMethod enumerates the foreign coders (id prefix 0x04).
type MiscMethod uint8

const (
	MiscDeflate MiscMethod = iota + 1
	MiscDeflate64
	MiscBzip2
)

// CryptoMethod enumerates the encryption coders (id prefix 0x06).
type CryptoMethod uint8

const (
	CryptoSzAes CryptoMethod = iota + 1
)

// Method identifies a coder. The zero value is not a valid method.
type Method struct {
	family  Family
	variant uint8
}

var (
	MethodCopy  = Method{family: FamilyCopy}
	MethodDelta = Method{family: FamilyDelta}
	MethodLzma2 = Method{family: FamilyLzma2}
)

func Sz(m SzMethod) Method { return Method{family: FamilySz, variant: uint8(m)} }
func Misc(m MiscMethod) Method { return Method{family: FamilyMisc, variant: uint8(m)} }
func Crypto(m CryptoMethod) Method { return Method{family: FamilyCrypto, variant: uint8(m)} }

func (m Method) Family() Family { return m.family }

func (m Method) Sz() (SzMethod, bool) {
	if m.family != FamilySz {
		return 0, false
	}
	return SzMethod(m.variant), true
}

func (m Method) Misc() (MiscMethod, bool) {
	if m.family != FamilyMisc {
		return 0, false
	}
	return MiscMethod(m.variant), true
}

func (m Method) Crypto() (CryptoMethod, bool) {
	if m.family != FamilyCrypto {
		return 0, false
	}
	return CryptoMethod(m.variant), true
}

const (
	prefixSz     = 0x03
	prefixMisc   = 0x04
	prefixCrypto = 0x06
)

type methodEntry struct {
	method Method
	name   string
	id     []byte
}

var topMethods = []methodEntry{
	{MethodCopy, "Copy", []byte{0x00}},
	{MethodDelta, "Delta", []byte{0x03}},
	{MethodLzma2, "LZMA2", []byte{0x21}},
}

var szMethods = []methodEntry{
	{Sz(SzLzma), "LZMA", []byte{0x03, 0x01, 0x01}},
	{Sz(SzBcj), "BCJ", []byte{0x03, 0x03, 0x01, 0x03}},
	{Sz(SzBcj2), "BCJ2", []byte{0x03, 0x03, 0x01, 0x1b}},
	{Sz(SzPpc), "PPC", []byte{0x03, 0x03, 0x02, 0x05}},
	{Sz(SzIa64), "IA64", []byte{0x03, 0x03, 0x04, 0x01}},
	{Sz(SzArm), "ARM", []byte{0x03, 0x03, 0x05, 0x01}},
	{Sz(SzArmT), "ARMT", []byte{0x03, 0x03, 0x07, 0x01}},
	{Sz(SzSparc), "SPARC", []byte{0x03, 0x03, 0x08, 0x05}},
	{Sz(SzPpmd), "PPMD", []byte{0x03, 0x04, 0x01}},
}

var miscMethods = []methodEntry{
	{Misc(MiscDeflate), "Deflate", []byte{0x04, 0x01, 0x08}},
	{Misc(MiscDeflate64), "Deflate64", []byte{0x04, 0x01, 0x09}},
	{Misc(MiscBzip2), "BZip2", []byte{0x04, 0x02, 0x02}},
}

var cryptoMethods = []methodEntry{
	{Crypto(CryptoSzAes), "7zAES", []byte{0x06, 0xf1, 0x07, 0x01}},
}

func (m Method) table() []methodEntry {
	switch m.family {
	case FamilyCopy, FamilyDelta, FamilyLzma2:
		return topMethods
	case FamilySz:
		return szMethods
	case FamilyMisc:
		return miscMethods
	case FamilyCrypto:
		return cryptoMethods
	}
	return nil
}

func (m Method) entry() (methodEntry, bool) {
	for _, e := range m.table() {
		if e.method == m {
			return e, true
		}
	}
	return methodEntry{}, false
}

// ID returns a copy of the canonical id bytes of m, or nil when m is not a
// defined method.
func (m Method) ID() []byte {
	e, ok := m.entry()
	if !ok {
		return nil
	}
	return bytes.Clone(e.id)
}

func (m Method) String() string {
	if e, ok := m.entry(); ok {
		return e.name
	}
	return "Unknown"
}

// MethodByID resolves a coder id. A single byte only ever names a top level
// method, so 0x03 alone is Delta while longer ids starting with 0x03 belong
// to the Sz family. Family members must match the whole id.
func MethodByID(id []byte) (Method, bool) {
	if len(id) == 0 {
		return Method{}, false
	}
	if len(id) == 1 {
		return lookupMethod(topMethods, id)
	}
	switch id[0] {
	case prefixSz:
		return lookupMethod(szMethods, id)
	case prefixMisc:
		return lookupMethod(miscMethods, id)
	case prefixCrypto:
		return lookupMethod(cryptoMethods, id)
	}
	return Method{}, false
}

func lookupMethod(table []methodEntry, id []byte) (Method, bool) {
	for _, e := range table {
		if bytes.Equal(e.id, id) {
			return e.method, true
		}
	}
	return Method{}, false
}

// MethodName returns the name of the method with the given id, or the id in
// hex when it is unknown.
func MethodName(id []byte) string {
	if m, ok := MethodByID(id); ok {
		return m.String()
	}
	if len(id) == 0 {
		return "<empty>"
	}
	return hex.EncodeToString(id)
}
