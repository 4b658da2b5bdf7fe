package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"file-storage-api/internal/apperrors"
	domain "file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFiles(ctx context.Context, page int) (domain.Files, error) {
	rows, err := r.db.Query(ctx, SelectFiles, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fls Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.Originalname,
			&f.Filename,
			&f.Alt,
			&f.Destination,
			&f.Path,
			&f.Size,
			&f.TypeID,
		); err != nil {
			return nil, err
		}

		fls = append(fls, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fls), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	return r.fetchOne(ctx, SelectFileByID, uint64(id))
}

func (r *Repository) FetchFileByPath(ctx context.Context, path string) (*domain.File, error) {
	return r.fetchOne(ctx, SelectFileByPath, path)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&f.ID,
		&f.Originalname,
		&f.Filename,
		&f.Alt,
		&f.Destination,
		&f.Path,
		&f.Size,
		&f.TypeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFilesByType(ctx context.Context, typeID uint64) (domain.Files, error) {
	rows, err := r.db.Query(ctx, SelectFilesByType, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fls Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.Originalname,
			&f.Filename,
			&f.Alt,
			&f.Destination,
			&f.Path,
			&f.Size,
			&f.TypeID,
		); err != nil {
			return nil, err
		}

		fls = append(fls, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fls), nil
}

func (r *Repository) CreateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.Originalname, req.Filename, req.Alt, req.Destination, req.Path, req.Size, req.TypeID,
	).Scan(
		&f.ID,
		&f.Originalname,
		&f.Filename,
		&f.Alt,
		&f.Destination,
		&f.Path,
		&f.Size,
		&f.TypeID,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) DeleteFile(ctx context.Context, id domain.ID) error {
	tag, err := r.db.Exec(ctx, DeleteFileByID, uint64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
