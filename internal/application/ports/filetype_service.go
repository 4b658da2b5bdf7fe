package ports

import (
	"context"

	"file-storage-api/internal/domain/filetype"
)

type FileTypeService interface {
	CreateFileType(ctx context.Context, ft filetype.FileType) (*filetype.FileType, error)
	DeleteFileType(ctx context.Context, name string) error
	FindFileTypes(ctx context.Context) (filetype.FileTypes, error)
	FindFileTypeByName(ctx context.Context, name string) (*filetype.FileType, error)
}
