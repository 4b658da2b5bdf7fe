package services

import (
	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/domain/filetype"
)

// registry is an immutable snapshot of the accepted file types, rebuilt
// from the metadata store once per ingestion. No snapshot is shared across
// requests: freshness over throughput.
type registry struct {
	byMime map[string]*filetype.FileType
	byName map[string]*filetype.FileType
}

func newRegistry(rows filetype.FileTypes) (*registry, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyRegistry
	}

	r := &registry{
		byMime: make(map[string]*filetype.FileType, len(rows)),
		byName: make(map[string]*filetype.FileType, len(rows)),
	}
	for _, ft := range rows {
		r.byName[ft.Name] = ft
		// rules without a MIME string exist but never match a sniff
		if ft.MimeType != nil && *ft.MimeType != "" {
			r.byMime[*ft.MimeType] = ft
		}
	}

	return r, nil
}

// exact string match only, no wildcards
func (r *registry) lookupByMime(mime string) (*filetype.FileType, bool) {
	ft, ok := r.byMime[mime]
	return ft, ok
}

func (r *registry) lookupByName(name string) (*filetype.FileType, bool) {
	ft, ok := r.byName[name]
	return ft, ok
}
