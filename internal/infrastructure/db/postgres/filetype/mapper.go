package filetype

import (
	domain "file-storage-api/internal/domain/filetype"
)

func fromDBModel(model *FileType) *domain.FileType {
	var ft = &domain.FileType{
		ID:       model.ID,
		Name:     model.Name,
		Type:     model.Type,
		MimeType: model.MimeType,
	}

	return ft
}

func fromDBModels(models *FileTypes) domain.FileTypes {
	fts := make(domain.FileTypes, len(*models))
	for idx, ft := range *models {
		fts[idx] = fromDBModel(ft)
	}

	return fts
}
