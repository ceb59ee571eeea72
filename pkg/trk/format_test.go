package trk

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileHeader(t *testing.T) {
	header := NewFileHeader("100 m Straight")

	if string(header.Magic[:]) != MagicNumberStr {
		t.Errorf("Expected magic %q, got %q", MagicNumberStr, header.Magic[:])
	}

	if header.MajorVersion != 0 {
		t.Errorf("Expected major version 0, got %d", header.MajorVersion)
	}

	if header.MinorVersion != 1 {
		t.Errorf("Expected minor version 1, got %d", header.MinorVersion)
	}

	assert.Equal(t, "100 m Straight", string(bytes.TrimRight(header.Name[:], "\x00")))
	assert.Equal(t, make([]byte, reservedSize), header.Reserved[:])
}

func TestFileHeaderSize(t *testing.T) {
	assert.Equal(t, headerSize, binary.Size(FileHeader{}))
	assert.Equal(t, 52, reservedSize)
}

func TestNewFileHeaderTruncatesName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"empty", "", nil},
		{"exactly 64 bytes", strings.Repeat("x", 64), []byte(strings.Repeat("x", 64))},
		{"longer than 64 bytes", strings.Repeat("ab", 40), []byte(strings.Repeat("ab", 32))},
		// é is two bytes; only its first byte fits
		{"split codepoint", strings.Repeat("a", 63) + "é", append([]byte(strings.Repeat("a", 63)), 0xC3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			header := NewFileHeader(tc.input)

			expected := make([]byte, nameSize)
			copy(expected, tc.expected)
			assert.Equal(t, expected, header.Name[:])
		})
	}
}

func TestEncodedSize(t *testing.T) {
	testCases := []struct {
		count    int
		expected int64
	}{
		{0, 130},
		{1, 138},
		{2, 146},
		{MaxNodes, 130 + 8*65535},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, EncodedSize(tc.count), "count=%d", tc.count)
	}
}

func TestWriteHeaderLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.writeHeader(&countingWriter{w: &buf}, "Double Lane Change")
	require.NoError(t, err)

	data := buf.Bytes()
	require.Len(t, data, headerSize)
	assert.Equal(t, []byte("TRKF"), data[0:4])
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, []byte("Double Lane Change"), data[12:30])
	assert.Equal(t, make([]byte, headerSize-30), data[30:])
}
