package file

type (
	ID uint64

	// File is one stored object: a metadata row plus a physical payload
	// living under the storage root. The two are kept in lockstep by the
	// ingestion and deletion pipelines.
	File struct {
		ID           ID
		Originalname string // client-supplied name, normalized before storage
		Filename     string // randomized on-disk leaf name
		Alt          string
		Destination  string // directory prefix, "/<route>/<type>"
		Path         string // external path, "/<route>/<type>/<filename>"
		Size         uint64
		TypeID       uint64
	}
	Files []*File

	// Upload describes a payload already staged on disk by the transport
	// layer, before it has been validated or placed.
	Upload struct {
		TempPath     string
		OriginalName string
		Size         uint64
	}

	// DeleteOutcome reports an eventually-consistent delete: the metadata
	// row is gone, Warning is set when the on-disk cleanup was degraded.
	DeleteOutcome struct {
		Deleted bool
		Warning string
	}
)
