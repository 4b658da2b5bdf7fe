package file

import (
	"context"
)

type Repository interface {
	FetchFiles(ctx context.Context, page int) (Files, error)
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	FetchFileByPath(ctx context.Context, path string) (*File, error)
	FetchFilesByType(ctx context.Context, typeID uint64) (Files, error)
	CreateFile(ctx context.Context, req *File) (*File, error)
	DeleteFile(ctx context.Context, id ID) error
}
