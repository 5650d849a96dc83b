// Package sevenz defines the binary vocabulary shared by 7z header readers
// and writers: the property markers of the header grammar, the hierarchical
// coder method ids, the NUMBER encoding, the 100 ns FILETIME timestamp and
// the errors raised when a header breaks the format.
//
// Everything here is a pure value conversion. Nothing reads from or writes to
// an archive stream, so all functions are safe for concurrent use.
package sevenz
