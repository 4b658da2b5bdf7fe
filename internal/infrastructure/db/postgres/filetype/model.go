package filetype

type (
	FileType struct {
		ID       uint64
		Name     string
		Type     string
		MimeType *string
	}
	FileTypes []*FileType
)
