// Package apperrors holds the error taxonomy shared by the pipelines,
// repositories and controllers. Sentinels are matched with errors.Is;
// ingestion rejections carry sniffing diagnostics via Rejection.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadableType - content sniffing found no known signature.
	ErrUnreadableType = errors.New("file content type could not be determined")

	// ErrEmptyRegistry - the type registry snapshot was built from zero rows.
	ErrEmptyRegistry = errors.New("file type registry is empty")

	// ErrRegistryUnavailable - no accepted types configured, uploads must be rejected.
	ErrRegistryUnavailable = errors.New("no accepted file types configured")

	// ErrTypeNotAccepted - the sniffed MIME is not in the registry.
	ErrTypeNotAccepted = errors.New("file type not accepted")

	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("file type name already exists")
	ErrTypeInUse     = errors.New("file type is referenced by existing files")

	// ErrFilesystem - an unexpected I/O failure, distinct from benign
	// "already absent" cases which are downgraded to warnings.
	ErrFilesystem = errors.New("filesystem failure")
)

// Rejection is a caller-facing upload rejection. It wraps one of the
// validation sentinels and surfaces what the sniffer actually saw, so the
// client learns why without internal paths leaking out.
type Rejection struct {
	Err         error
	SniffedMime string
	SniffedExt  string
}

func NewRejection(err error, mime, ext string) *Rejection {
	return &Rejection{Err: err, SniffedMime: mime, SniffedExt: ext}
}

func (r *Rejection) Error() string {
	if r.SniffedMime == "" {
		return r.Err.Error()
	}
	return fmt.Sprintf("%s: sniffed %s (.%s)", r.Err.Error(), r.SniffedMime, r.SniffedExt)
}

func (r *Rejection) Unwrap() error { return r.Err }
