package filetype

type (
	Request struct {
		Name     string  `json:"name"`
		Type     string  `json:"type"`
		MimeType *string `json:"mime_type,omitempty"`
	}

	Response struct {
		ID       uint64  `json:"id"`
		Name     string  `json:"name"`
		Type     string  `json:"type"`
		MimeType *string `json:"mime_type,omitempty"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
