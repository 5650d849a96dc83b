package sevenz

// Property is a single byte marker of the 7z header grammar.
type Property uint8

const (
	PropertyEnd                   Property = 0x00
	PropertyHeader                Property = 0x01
	PropertyArchiveProperties     Property = 0x02
	PropertyAdditionalStreamsInfo Property = 0x03
	PropertyMainStreamsInfo       Property = 0x04
	PropertyFilesInfo             Property = 0x05
	PropertyPackInfo              Property = 0x06
	PropertyUnpackInfo            Property = 0x07
	PropertySubStreamsInfo        Property = 0x08
	PropertySize                  Property = 0x09
	PropertyCrc                   Property = 0x0a
	PropertyFolder                Property = 0x0b
	PropertyCodersUnpackSize      Property = 0x0c
	PropertyNumUnpackStream       Property = 0x0d
	PropertyEmptyStream           Property = 0x0e
	PropertyEmptyFile             Property = 0x0f
	PropertyAnti                  Property = 0x10
	PropertyName                  Property = 0x11
	PropertyCTime                 Property = 0x12
	PropertyATime                 Property = 0x13
	PropertyMTime                 Property = 0x14
	PropertyWinAttributes         Property = 0x15
	PropertyComment               Property = 0x16
	PropertyEncodedHeader         Property = 0x17
	PropertyStartPos              Property = 0x18
	PropertyDummy                 Property = 0x19
)

// properties maps every defined code to its name. Codes are wire values and
// must never be renumbered.
var properties = map[Property]string{
	PropertyEnd:                   "End",
	PropertyHeader:                "Header",
	PropertyArchiveProperties:     "ArchiveProperties",
	PropertyAdditionalStreamsInfo: "AdditionalStreamsInfo",
	PropertyMainStreamsInfo:       "MainStreamsInfo",
	PropertyFilesInfo:             "FilesInfo",
	PropertyPackInfo:              "PackInfo",
	PropertyUnpackInfo:            "UnpackInfo",
	PropertySubStreamsInfo:        "SubStreamsInfo",
	PropertySize:                  "Size",
	PropertyCrc:                   "Crc",
	PropertyFolder:                "Folder",
	PropertyCodersUnpackSize:      "CodersUnpackSize",
	PropertyNumUnpackStream:       "NumUnpackStream",
	PropertyEmptyStream:           "EmptyStream",
	PropertyEmptyFile:             "EmptyFile",
	PropertyAnti:                  "Anti",
	PropertyName:                  "Name",
	PropertyCTime:                 "CTime",
	PropertyATime:                 "ATime",
	PropertyMTime:                 "MTime",
	PropertyWinAttributes:         "WinAttributes",
	PropertyComment:               "Comment",
	PropertyEncodedHeader:         "EncodedHeader",
	PropertyStartPos:              "StartPos",
	PropertyDummy:                 "Dummy",
}

// Code returns the wire byte of p.
func (p Property) Code() byte { return byte(p) }

// PropertyFromCode resolves a header byte. Bytes outside the defined set
// are common in damaged archives and are reported with ok == false.
func PropertyFromCode(b byte) (Property, bool) {
	if _, ok := properties[Property(b)]; !ok {
		return 0, false
	}
	return Property(b), true
}

func (p Property) String() string {
	if name, ok := properties[p]; ok {
		return name
	}
	return "Unknown"
}
