package file

import (
	domain "file-storage-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:           domain.ID(model.ID),
		Originalname: model.Originalname,
		Filename:     model.Filename,
		Alt:          model.Alt,
		Destination:  model.Destination,
		Path:         model.Path,
		Size:         model.Size,
		TypeID:       model.TypeID,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fls := make(domain.Files, len(*models))
	for idx, f := range *models {
		fls[idx] = fromDBModel(f)
	}

	return fls
}
