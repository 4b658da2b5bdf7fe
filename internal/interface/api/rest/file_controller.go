package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	domain "file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/jwt"
	filedto "file-storage-api/internal/interface/api/rest/dto/file"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

// 10MB
const defaultMaxUpload = int64(10 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
	maxUpload   int64
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	maxUpload int64,
) *FileController {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
		maxUpload:   maxUpload,
	}

	r.POST(RouteFileUpload, middleware.AuthMiddleware(jwtService), fc.UploadFileHandler)
	r.DELETE(RouteFileDelete, middleware.AuthMiddleware(jwtService), fc.DeleteFileHandler)
	r.GET(RouteFiles, fc.GetFilesHandler)
	r.GET(RouteFileByID, fc.GetFileByIDHandler)
	r.GET(RouteFileByPath, fc.GetFileByPathHandler)
	r.GET(RouteFilesByType, fc.GetFilesByTypeHandler)
	r.GET(RouteFileListing, fc.ListFilePathsHandler)

	return fc
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	route := c.Param("route")
	if err := validator.ValidateRoute(route); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > fc.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), fh, route)
	if err != nil {
		var rej *apperrors.Rejection
		switch {
		case errors.As(err, &rej):
			resp := gin.H{"error": rej.Err.Error()}
			if rej.SniffedMime != "" {
				resp["sniffed_mime"] = rej.SniffedMime
				resp["sniffed_extension"] = rej.SniffedExt
			}
			c.JSON(http.StatusUnsupportedMediaType, resp)
		case errors.Is(err, apperrors.ErrRegistryUnavailable):
			c.JSON(
				http.StatusServiceUnavailable,
				gin.H{"error": apperrors.ErrRegistryUnavailable.Error()},
			)
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to store the file"},
			)
			fc.logger.Error("Upload() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, filedto.ToResponseFile(*f))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	out, err := fc.fileService.Delete(c.Request.Context(), domain.ID(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete file"},
		)
		fc.logger.Error("Delete() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.DeleteResponse{
		Deleted: out.Deleted,
		Warning: out.Warning,
	})
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	fls, err := fc.fileService.FindFiles(c.Request.Context(), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.ResponseData{
		Data: filedto.ToResponseFiles(fls),
	})
}

func (fc *FileController) GetFileByIDHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	f, err := fc.fileService.FindFileByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get file"},
		)
		fc.logger.Error("FindFileByID() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.ToResponseFile(*f))
}

func (fc *FileController) GetFileByPathHandler(c *gin.Context) {
	// the catch-all param keeps its leading slash, matching the stored form
	path := c.Param("path")
	if path == "" || path == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	f, err := fc.fileService.FindFileByPath(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get file"},
		)
		fc.logger.Error("FindFileByPath() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.ToResponseFile(*f))
}

func (fc *FileController) GetFilesByTypeHandler(c *gin.Context) {
	typeName := c.Param("type")

	fls, err := fc.fileService.FindFilesByType(c.Request.Context(), typeName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file type not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFilesByType() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.ResponseData{
		Data: filedto.ToResponseFiles(fls),
	})
}

func (fc *FileController) ListFilePathsHandler(c *gin.Context) {
	// the catch-all param carries a leading slash
	selector := strings.TrimPrefix(c.Param("selector"), "/")
	if err := validator.ValidateSelector(selector); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	documents := fc.fileService.List(selector)
	if documents == nil {
		documents = []string{}
	}

	c.JSON(http.StatusOK, filedto.ListResponse{Documents: documents})
}
