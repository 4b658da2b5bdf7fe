package filetype

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"file-storage-api/internal/apperrors"
	domain "file-storage-api/internal/domain/filetype"
	"file-storage-api/internal/infrastructure/db/postgres"
)

const uniqueViolation = "23505"

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileTypes(ctx context.Context) (domain.FileTypes, error) {
	rows, err := r.db.Query(ctx, SelectFileTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fts FileTypes
	for rows.Next() {
		ft := new(FileType)

		if err = rows.Scan(
			&ft.ID,
			&ft.Name,
			&ft.Type,
			&ft.MimeType,
		); err != nil {
			return nil, err
		}

		fts = append(fts, ft)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fts), nil
}

func (r *Repository) FetchFileTypeByName(ctx context.Context, name string) (*domain.FileType, error) {
	ft := new(FileType)
	err := r.db.QueryRow(ctx, SelectFileTypeByName, name).Scan(
		&ft.ID,
		&ft.Name,
		&ft.Type,
		&ft.MimeType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(ft), nil
}

func (r *Repository) CreateFileType(ctx context.Context, req *domain.FileType) (*domain.FileType, error) {
	ft := new(FileType)

	err := r.db.QueryRow(
		ctx,
		InsertFileType,
		req.Name, req.Type, req.MimeType,
	).Scan(
		&ft.ID,
		&ft.Name,
		&ft.Type,
		&ft.MimeType,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrDuplicateName
		}
		return nil, err
	}

	return fromDBModel(ft), nil
}

func (r *Repository) DeleteFileTypeByName(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, DeleteFileTypeByName, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *Repository) CountFilesForType(ctx context.Context, typeID uint64) (uint64, error) {
	var n uint64
	if err := r.db.QueryRow(ctx, CountFilesByType, typeID).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
