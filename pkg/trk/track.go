package trk

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/math/f32"
)

// MaxNodes is the maximum number of nodes a track file can hold.
const MaxNodes = 1<<16 - 1

// ErrNodeCountExceeded is returned when a track has more than MaxNodes nodes.
var ErrNodeCountExceeded = errors.New("node count exceeds maximum")

// Node is one (x, y) control point of a track.
type Node = f32.Vec2

// Track is a named polyline. Node order defines the path.
type Track struct {
	Name  string
	Nodes []Node
}

// Validate checks that the track fits in the file format
func (t Track) Validate() error {
	if len(t.Nodes) > MaxNodes {
		return fmt.Errorf("%w: %d > %d", ErrNodeCountExceeded, len(t.Nodes), MaxNodes)
	}
	return nil
}

// WriteTo encodes the track to w. It implements io.WriterTo.
func (t Track) WriteTo(w io.Writer) (int64, error) {
	return NewWriter(w).Write(t)
}
