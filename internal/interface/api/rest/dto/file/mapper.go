package file

import (
	"file-storage-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) Response {
	var f = Response{
		ID:     uint64(fDomain.ID),
		Alt:    fDomain.Alt,
		Size:   fDomain.Size,
		TypeID: fDomain.TypeID,
	}

	return f
}

func ToResponseFiles(fDomain file.Files) Responses {
	fls := make(Responses, len(fDomain))
	for idx, f := range fDomain {
		fls[idx] = ToResponseFile(*f)
	}

	return fls
}
