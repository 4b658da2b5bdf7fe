package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/infrastructure/jwt"
	ftdto "file-storage-api/internal/interface/api/rest/dto/filetype"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

type FileTypeController struct {
	fileTypeService ports.FileTypeService
	logger          *zap.Logger
}

func NewFileTypeController(
	r *gin.Engine,
	fileTypeService ports.FileTypeService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileTypeController {
	ftc := &FileTypeController{
		fileTypeService: fileTypeService,
		logger:          logger,
	}

	r.POST(RouteFileTypes, middleware.AuthMiddleware(jwtService), ftc.CreateFileTypeHandler)
	r.DELETE(RouteFileTypeByName, middleware.AuthMiddleware(jwtService), ftc.DeleteFileTypeHandler)
	r.GET(RouteFileTypes, ftc.GetFileTypesHandler)
	r.GET(RouteFileTypeByName, ftc.GetFileTypeHandler)

	return ftc
}

func (ftc *FileTypeController) CreateFileTypeHandler(c *gin.Context) {
	var req ftdto.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validator.ValidateFileType(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	ft, err := ftc.fileTypeService.CreateFileType(c.Request.Context(), ftdto.ToDomainFileType(req))
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrDuplicateName.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create file type"},
		)
		ftc.logger.Error("CreateFileType() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, ftdto.ToResponseFileType(*ft))
}

func (ftc *FileTypeController) DeleteFileTypeHandler(c *gin.Context) {
	name := c.Param("name")

	err := ftc.fileTypeService.DeleteFileType(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file type not found"})
		case errors.Is(err, apperrors.ErrTypeInUse):
			c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrTypeInUse.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to delete file type"},
			)
			ftc.logger.Error("DeleteFileType() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (ftc *FileTypeController) GetFileTypesHandler(c *gin.Context) {
	fts, err := ftc.fileTypeService.FindFileTypes(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get file types"},
		)
		ftc.logger.Error("FindFileTypes() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, ftdto.ResponseData{
		Data: ftdto.ToResponseFileTypes(fts),
	})
}

func (ftc *FileTypeController) GetFileTypeHandler(c *gin.Context) {
	name := c.Param("name")

	ft, err := ftc.fileTypeService.FindFileTypeByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file type not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get file type"},
		)
		ftc.logger.Error("FindFileTypeByName() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, ftdto.ToResponseFileType(*ft))
}
