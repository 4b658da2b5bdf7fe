package filetype

import (
	"context"
)

type Repository interface {
	FetchFileTypes(ctx context.Context) (FileTypes, error)
	FetchFileTypeByName(ctx context.Context, name string) (*FileType, error)
	CreateFileType(ctx context.Context, req *FileType) (*FileType, error)
	DeleteFileTypeByName(ctx context.Context, name string) error
	CountFilesForType(ctx context.Context, typeID uint64) (uint64, error)
}
