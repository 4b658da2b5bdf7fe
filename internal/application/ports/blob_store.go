package ports

import (
	"io"
)

// BlobStore is the filesystem side of the pipelines: everything it does is
// confined to the configured storage root.
type BlobStore interface {
	Root() string
	Abs(externalPath string) string
	SaveTemp(src io.Reader, leaf string) (string, error)
	MkdirAll(dir string) error
	Move(src, dst string) error
	Remove(path string) error
	Exists(path string) bool
	PruneEmpty(dir string) error
	List(selector string) []string
}

// Sniffer reports the true MIME type and extension of a staged file, or an
// error when no signature matches.
type Sniffer interface {
	Sniff(path string) (mime string, ext string, err error)
}
