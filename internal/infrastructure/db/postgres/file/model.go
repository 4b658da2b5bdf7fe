package file

type (
	File struct {
		ID           uint64
		Originalname string
		Filename     string
		Alt          string
		Destination  string
		Path         string
		Size         uint64
		TypeID       uint64
	}
	Files []*File
)
