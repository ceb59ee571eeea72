// Package trk implements the TRK binary format for named 2D polyline tracks.
package trk

// Constants for file format
const (
	// MagicNumberStr is the string representation of the magic number
	MagicNumberStr = "TRKF"

	// Version of the file format
	MajorVersion uint32 = 0
	MinorVersion uint32 = 1

	// Size constants
	headerSize    = 128
	nameSize      = 64
	reservedSize  = headerSize - 4 - 4 - 4 - nameSize
	nodeCountSize = 2
	nodeSize      = 8 // two float32s
)

// FileHeader represents the fixed 128-byte header of a track file.
// Fields are serialized in declaration order, little-endian.
type FileHeader struct {
	Magic        [4]byte
	MajorVersion uint32
	MinorVersion uint32
	Name         [nameSize]byte
	Reserved     [reservedSize]byte
}

// NewFileHeader creates a header for a track with the given name.
// Only the first 64 bytes of the name are kept; the cut is made on bytes,
// so a multi-byte UTF-8 sequence may be split.
func NewFileHeader(name string) FileHeader {
	h := FileHeader{
		MajorVersion: MajorVersion,
		MinorVersion: MinorVersion,
	}
	copy(h.Magic[:], MagicNumberStr)
	copy(h.Name[:], name)
	return h
}

// EncodedSize returns the size in bytes of a track file holding nodeCount nodes.
func EncodedSize(nodeCount int) int64 {
	return int64(headerSize + nodeCountSize + nodeSize*nodeCount)
}
