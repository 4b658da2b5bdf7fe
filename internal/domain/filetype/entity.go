package filetype

type (
	// FileType is a registered acceptance rule: uploads whose sniffed MIME
	// matches MimeType are stored under the Type directory segment.
	FileType struct {
		ID       uint64
		Name     string // unique token, conventionally an extension
		Type     string // storage partition segment, e.g. "images"
		MimeType *string
	}
	FileTypes []*FileType
)
