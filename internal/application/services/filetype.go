package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	domain "file-storage-api/internal/domain/filetype"
)

type FileTypeService struct {
	typeRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewFileTypeService(
	typeRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.FileTypeService {
	return &FileTypeService{
		typeRepository: typeRepository,
		mCounter:       mCounter,
	}
}

func (fts *FileTypeService) CreateFileType(ctx context.Context, ft domain.FileType) (*domain.FileType, error) {
	out, err := fts.typeRepository.CreateFileType(ctx, &ft)
	if err != nil {
		return nil, err
	}

	fts.mCounter.WithLabelValues("file_types_created_total").Inc()

	return out, nil
}

// DeleteFileType refuses to orphan existing files: a type still referenced
// by file rows cannot be removed.
func (fts *FileTypeService) DeleteFileType(ctx context.Context, name string) error {
	ft, err := fts.typeRepository.FetchFileTypeByName(ctx, name)
	if err != nil {
		return err
	}

	n, err := fts.typeRepository.CountFilesForType(ctx, ft.ID)
	if err != nil {
		return fmt.Errorf("count referencing files: %w", err)
	}
	if n > 0 {
		return apperrors.ErrTypeInUse
	}

	return fts.typeRepository.DeleteFileTypeByName(ctx, name)
}

func (fts *FileTypeService) FindFileTypes(ctx context.Context) (domain.FileTypes, error) {
	rows, err := fts.typeRepository.FetchFileTypes(ctx)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (fts *FileTypeService) FindFileTypeByName(ctx context.Context, name string) (*domain.FileType, error) {
	ft, err := fts.typeRepository.FetchFileTypeByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return ft, nil
}
