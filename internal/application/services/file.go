package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/filetype"
	"file-storage-api/internal/infrastructure/mq"
	filedto "file-storage-api/internal/interface/api/rest/dto/file"
)

const missingObjectWarning = "object missing on disk, metadata removed anyway"

type FileService struct {
	store          ports.BlobStore
	sniffer        ports.Sniffer
	fileRepository file.Repository
	typeRepository filetype.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	store ports.BlobStore,
	sniffer ports.Sniffer,
	fileRepository file.Repository,
	typeRepository filetype.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		store:          store,
		sniffer:        sniffer,
		fileRepository: fileRepository,
		typeRepository: typeRepository,
		mq:             rbMQ,
		mCounter:       mCounter,
	}
}

// Upload stages the multipart payload under the storage root and hands it
// to the ingestion pipeline. The on-disk leaf is a fresh uuid; the
// client's extension only decorates the temp name and never drives
// acceptance.
func (fs *FileService) Upload(ctx context.Context, fh *multipart.FileHeader, route string) (*file.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	leaf := uuid.New().String() + declaredExt(fh.Filename)
	tempPath, err := fs.store.SaveTemp(src, leaf)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	return fs.Ingest(ctx, file.Upload{
		TempPath:     tempPath,
		OriginalName: fh.Filename,
		Size:         uint64(fh.Size),
	}, route)
}

// Ingest runs sniff -> validate -> normalize -> place -> persist for a
// payload already staged on disk. Every rejection path removes the staged
// file; the metadata row is only written after the physical move
// succeeded, so no row ever points at nothing.
func (fs *FileService) Ingest(ctx context.Context, up file.Upload, route string) (*file.File, error) {
	mime, ext, err := fs.sniffer.Sniff(up.TempPath)
	if err != nil {
		fs.discard(up.TempPath)
		fs.mCounter.WithLabelValues("files_rejected_total").Inc()
		return nil, apperrors.NewRejection(apperrors.ErrUnreadableType, "", "")
	}

	rows, err := fs.typeRepository.FetchFileTypes(ctx)
	if err != nil {
		fs.discard(up.TempPath)
		return nil, fmt.Errorf("refresh type registry: %w", err)
	}
	reg, err := newRegistry(rows)
	if err != nil {
		fs.discard(up.TempPath)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrRegistryUnavailable, err)
	}

	ft, ok := reg.lookupByMime(mime)
	if !ok {
		fs.discard(up.TempPath)
		fs.mCounter.WithLabelValues("files_rejected_total").Inc()
		return nil, apperrors.NewRejection(apperrors.ErrTypeNotAccepted, mime, ext)
	}

	name := normalizeName(up.OriginalName)
	tempName := path.Base(filepath.ToSlash(up.TempPath))
	plan := planPlacement(route, ft.Type, up.TempPath, tempName)

	if err = fs.store.MkdirAll(plan.dir); err != nil {
		fs.discard(up.TempPath)
		return nil, fmt.Errorf("%w: create destination: %w", apperrors.ErrFilesystem, err)
	}
	if err = fs.store.Move(up.TempPath, plan.path); err != nil {
		fs.discard(up.TempPath)
		return nil, fmt.Errorf("%w: place object: %w", apperrors.ErrFilesystem, err)
	}

	rec := &file.File{
		Originalname: name,
		Filename:     tempName,
		Alt:          name,
		Destination:  "/" + route + "/" + ft.Type,
		Path:         "/" + route + "/" + ft.Type + "/" + tempName,
		Size:         up.Size,
		TypeID:       ft.ID,
	}
	out, err := fs.fileRepository.CreateFile(ctx, rec)
	if err != nil {
		// roll the placed object back so disk and metadata stay in lockstep
		_ = fs.store.Remove(plan.path)
		_ = fs.store.PruneEmpty(path.Dir(plan.path))
		return nil, fmt.Errorf("persist file metadata: %w", err)
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPost,
		FileID:  uint64(out.ID),
		Payload: filedto.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_ingested_total").Inc()

	return out, nil
}

// Delete removes the metadata row first, then cleans up the physical
// object and prunes newly empty ancestors. A payload already missing on
// disk degrades to a warning instead of failing the delete.
func (fs *FileService) Delete(ctx context.Context, id file.ID) (file.DeleteOutcome, error) {
	var out file.DeleteOutcome

	rec, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return out, err
	}
	if err = fs.fileRepository.DeleteFile(ctx, id); err != nil {
		return out, err
	}
	out.Deleted = true

	phys := fs.store.Abs(rec.Path)
	if !fs.store.Exists(phys) {
		out.Warning = missingObjectWarning
	}
	if err = fs.store.Remove(phys); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return out, fmt.Errorf("%w: remove object: %w", apperrors.ErrFilesystem, err)
		}
		out.Warning = missingObjectWarning
	}

	if err = fs.store.PruneEmpty(filepath.Dir(phys)); err != nil {
		out.Warning = "failed to prune empty directories"
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodDelete,
		FileID:  uint64(rec.ID),
		Payload: filedto.ToResponseFile(*rec),
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return out, nil
}

func (fs *FileService) List(selector string) []string {
	return fs.store.List(selector)
}

func (fs *FileService) FindFiles(ctx context.Context, page int) (file.Files, error) {
	fls, err := fs.fileRepository.FetchFiles(ctx, page)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (fs *FileService) FindFileByID(ctx context.Context, id file.ID) (*file.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (fs *FileService) FindFileByPath(ctx context.Context, path string) (*file.File, error) {
	f, err := fs.fileRepository.FetchFileByPath(ctx, path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (fs *FileService) FindFilesByType(ctx context.Context, typeName string) (file.Files, error) {
	ft, err := fs.typeRepository.FetchFileTypeByName(ctx, typeName)
	if err != nil {
		return nil, err
	}

	fls, err := fs.fileRepository.FetchFilesByType(ctx, ft.ID)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

// discard is the rollback of every rejection path: the staged temp file
// must not survive a failed ingestion.
func (fs *FileService) discard(tempPath string) {
	_ = fs.store.Remove(tempPath)
}

func declaredExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filepath.FromSlash(name))))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}

	return ext
}
