package file

type (
	// Response is the public projection of a stored file. Internal
	// housekeeping fields (raw name, destination, path, storage filename)
	// are deliberately excluded.
	Response struct {
		ID     uint64 `json:"id"`
		Alt    string `json:"alt"`
		Size   uint64 `json:"size"`
		TypeID uint64 `json:"type_id"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}

	ListResponse struct {
		Documents []string `json:"documents"`
	}

	DeleteResponse struct {
		Deleted bool   `json:"deleted"`
		Warning string `json:"warning,omitempty"`
	}
)
