package trk

import "os"

// WriterOption defines a function type for configuring file output
type WriterOption func(*fileConfig)

type fileConfig struct {
	mode os.FileMode
	sync bool
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		mode: 0o644,
		sync: false,
	}
}

// WithFileMode sets the permission bits used when the file is created
func WithFileMode(mode os.FileMode) WriterOption {
	return func(c *fileConfig) {
		c.mode = mode
	}
}

// WithSync makes WriteFile fsync the file before closing it
func WithSync(sync bool) WriterOption {
	return func(c *fileConfig) {
		c.sync = sync
	}
}
