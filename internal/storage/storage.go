package storage

import "io"

// Storage retains uploaded evidence images. Retention failures are
// non-fatal to the analysis pipeline.
type Storage interface {
	SaveBytes(data []byte, originalName string) (string, error)
	OpenFile(path string) (io.ReadSeekCloser, error)
	DeleteFile(path string) error
}
