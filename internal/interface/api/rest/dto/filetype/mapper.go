package filetype

import (
	"file-storage-api/internal/domain/filetype"
)

func ToDomainFileType(req Request) filetype.FileType {
	return filetype.FileType{
		Name:     req.Name,
		Type:     req.Type,
		MimeType: req.MimeType,
	}
}

func ToResponseFileType(ftDomain filetype.FileType) Response {
	var ft = Response{
		ID:       ftDomain.ID,
		Name:     ftDomain.Name,
		Type:     ftDomain.Type,
		MimeType: ftDomain.MimeType,
	}

	return ft
}

func ToResponseFileTypes(ftDomain filetype.FileTypes) Responses {
	fts := make(Responses, len(ftDomain))
	for idx, ft := range ftDomain {
		fts[idx] = ToResponseFileType(*ft)
	}

	return fts
}
