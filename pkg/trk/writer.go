package trk

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Writer encodes tracks to a byte sink
type Writer struct {
	w io.Writer
}

// NewWriter creates a new track writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes t and returns the number of bytes written. Nothing is
// written if t fails validation.
func (w *Writer) Write(t Track) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w.w}

	if err := w.writeHeader(cw, t.Name); err != nil {
		return cw.n, err
	}

	if err := binary.Write(cw, binary.LittleEndian, uint16(len(t.Nodes))); err != nil {
		return cw.n, fmt.Errorf("failed to write node count: %w", err)
	}

	if err := w.writeNodes(cw, t.Nodes); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

// writeHeader writes the fixed-size file header
func (w *Writer) writeHeader(cw *countingWriter, name string) error {
	headerStart := cw.n

	header := NewFileHeader(name)
	if err := binary.Write(cw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if actual := cw.n - headerStart; actual != headerSize {
		return fmt.Errorf("header size mismatch: expected=%d, actual=%d", headerSize, actual)
	}

	return nil
}

// writeNodes writes each node as two little-endian float32s, x then y
func (w *Writer) writeNodes(cw *countingWriter, nodes []Node) error {
	var buf [nodeSize]byte
	for i, node := range nodes {
		binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(node[0]))
		binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(node[1]))
		if _, err := cw.Write(buf[:]); err != nil {
			return fmt.Errorf("failed to write node %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile validates t, then creates or truncates filename and writes the
// encoded track to it. The file is not touched if validation fails, and it
// is always closed before WriteFile returns.
func WriteFile(filename string, t Track, options ...WriterOption) (err error) {
	if err := t.Validate(); err != nil {
		return err
	}

	cfg := defaultFileConfig()
	for _, option := range options {
		option(&cfg)
	}

	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, cfg.mode)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if _, err := NewWriter(bw).Write(t); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	if cfg.sync {
		if err := file.Sync(); err != nil {
			return fmt.Errorf("failed to sync file: %w", err)
		}
	}

	return nil
}

// countingWriter tracks how many bytes have reached the underlying writer
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
