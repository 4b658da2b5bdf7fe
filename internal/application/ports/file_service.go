package ports

import (
	"context"
	"mime/multipart"

	"file-storage-api/internal/domain/file"
)

type FileService interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, route string) (*file.File, error)
	Delete(ctx context.Context, id file.ID) (file.DeleteOutcome, error)
	List(selector string) []string
	FindFiles(ctx context.Context, page int) (file.Files, error)
	FindFileByID(ctx context.Context, id file.ID) (*file.File, error)
	FindFileByPath(ctx context.Context, path string) (*file.File, error)
	FindFilesByType(ctx context.Context, typeName string) (file.Files, error)
}
