package storage

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"file-storage-api/internal/apperrors"
)

// Sniffer derives a file's true MIME type and extension from its leading
// bytes. Client-declared names and extensions play no part here; this is
// the trust boundary of the ingestion pipeline.
type Sniffer struct{}

func NewSniffer() *Sniffer { return &Sniffer{} }

func (s *Sniffer) Sniff(path string) (string, string, error) {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return "", "", apperrors.ErrUnreadableType
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", "", apperrors.ErrUnreadableType
	}

	mime := mt.String()
	if i := strings.IndexByte(mime, ';'); i != -1 {
		mime = strings.TrimSpace(mime[:i])
	}
	// the detector's root fallback means no signature matched
	if mime == "application/octet-stream" {
		return "", "", apperrors.ErrUnreadableType
	}

	return mime, strings.TrimPrefix(mt.Extension(), "."), nil
}
