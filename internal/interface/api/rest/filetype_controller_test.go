package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	domain "file-storage-api/internal/domain/filetype"
	jwtSvc "file-storage-api/internal/infrastructure/jwt"
	ftdto "file-storage-api/internal/interface/api/rest/dto/filetype"
	"file-storage-api/internal/interface/api/rest/middleware"
)

type FakeFileTypeService struct {
	CreateFileTypeFunc     func(ctx context.Context, ft domain.FileType) (*domain.FileType, error)
	DeleteFileTypeFunc     func(ctx context.Context, name string) error
	FindFileTypesFunc      func(ctx context.Context) (domain.FileTypes, error)
	FindFileTypeByNameFunc func(ctx context.Context, name string) (*domain.FileType, error)
}

func (f *FakeFileTypeService) CreateFileType(ctx context.Context, ft domain.FileType) (*domain.FileType, error) {
	if f.CreateFileTypeFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFileTypeFunc(ctx, ft)
}
func (f *FakeFileTypeService) DeleteFileType(ctx context.Context, name string) error {
	if f.DeleteFileTypeFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileTypeFunc(ctx, name)
}
func (f *FakeFileTypeService) FindFileTypes(ctx context.Context) (domain.FileTypes, error) {
	if f.FindFileTypesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileTypesFunc(ctx)
}
func (f *FakeFileTypeService) FindFileTypeByName(ctx context.Context, name string) (*domain.FileType, error) {
	if f.FindFileTypeByNameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileTypeByNameFunc(ctx, name)
}

func setupFileTypeRouter(t *testing.T, fts ports.FileTypeService, withJWT bool) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	secret := "test-secret"
	j := jwtSvc.New(secret)

	ftc := &FileTypeController{
		fileTypeService: fts,
		logger:          zap.NewNop(),
	}

	if withJWT {
		r.POST(RouteFileTypes, middleware.AuthMiddleware(j), ftc.CreateFileTypeHandler)
		r.DELETE(RouteFileTypeByName, middleware.AuthMiddleware(j), ftc.DeleteFileTypeHandler)
	} else {
		r.POST(RouteFileTypes, ftc.CreateFileTypeHandler)
		r.DELETE(RouteFileTypeByName, ftc.DeleteFileTypeHandler)
	}
	r.GET(RouteFileTypes, ftc.GetFileTypesHandler)
	r.GET(RouteFileTypeByName, ftc.GetFileTypeHandler)

	return r, secret
}

func mimePtr(s string) *string { return &s }

func validFileTypeRequest() ftdto.Request {
	return ftdto.Request{
		Name:     "png",
		Type:     "images",
		MimeType: mimePtr("image/png"),
	}
}

func someDomainFileType() *domain.FileType {
	return &domain.FileType{
		ID:       1,
		Name:     "png",
		Type:     "images",
		MimeType: mimePtr("image/png"),
	}
}

func TestFileTypeController_CreateFileTypeHandler(t *testing.T) {
	validReq := validFileTypeRequest()

	tests := []struct {
		name       string
		body       any
		mockFTS    func() ports.FileTypeService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid JSON",
			body:       "{bad json",
			mockFTS:    func() ports.FileTypeService { return &FakeFileTypeService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "400 validation error",
			body: ftdto.Request{
				Name:     "PNG!",
				Type:     "a/b",
				MimeType: mimePtr("nonsense"),
			},
			mockFTS:    func() ports.FileTypeService { return &FakeFileTypeService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "409 duplicate name",
			body: validReq,
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					CreateFileTypeFunc: func(ctx context.Context, ft domain.FileType) (*domain.FileType, error) {
						return nil, apperrors.ErrDuplicateName
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    apperrors.ErrDuplicateName.Error(),
		},
		{
			name: "500 service error",
			body: validReq,
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					CreateFileTypeFunc: func(ctx context.Context, ft domain.FileType) (*domain.FileType, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create file type",
		},
		{
			name: "201 success",
			body: validReq,
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					CreateFileTypeFunc: func(ctx context.Context, ft domain.FileType) (*domain.FileType, error) {
						assert.Equal(t, "png", ft.Name)
						assert.Equal(t, "images", ft.Type)
						return someDomainFileType(), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupFileTypeRouter(t, tt.mockFTS(), false)
			rr := doPlainReq(t, r, http.MethodPost, "/api/v1/file-types", tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestFileTypeController_CreateFileTypeHandler_FieldErrors(t *testing.T) {
	r, _ := setupFileTypeRouter(t, &FakeFileTypeService{}, false)

	rr := doPlainReq(t, r, http.MethodPost, "/api/v1/file-types", ftdto.Request{
		Name:     "",
		Type:     "../escape",
		MimeType: mimePtr("no-slash"),
	}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "type")
	assert.Contains(t, resp.Errors, "mime_type")
}

func TestFileTypeController_CreateFileTypeHandler_Auth(t *testing.T) {
	r, secret := setupFileTypeRouter(t, &FakeFileTypeService{
		CreateFileTypeFunc: func(ctx context.Context, ft domain.FileType) (*domain.FileType, error) {
			return someDomainFileType(), nil
		},
	}, true)

	rr := doPlainReq(t, r, http.MethodPost, "/api/v1/file-types", validFileTypeRequest(), nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doPlainReq(t, r, http.MethodPost, "/api/v1/file-types", validFileTypeRequest(), authHeader(t, secret))
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestFileTypeController_DeleteFileTypeHandler(t *testing.T) {
	tests := []struct {
		name       string
		typeName   string
		mockFTS    func() ports.FileTypeService
		wantStatus int
		wantErr    string
	}{
		{
			name:     "404 unknown name",
			typeName: "gif",
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					DeleteFileTypeFunc: func(ctx context.Context, name string) error {
						return apperrors.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "file type not found",
		},
		{
			name:     "409 still referenced",
			typeName: "png",
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					DeleteFileTypeFunc: func(ctx context.Context, name string) error {
						return apperrors.ErrTypeInUse
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    apperrors.ErrTypeInUse.Error(),
		},
		{
			name:     "500 service error",
			typeName: "png",
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					DeleteFileTypeFunc: func(ctx context.Context, name string) error {
						return errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to delete file type",
		},
		{
			name:     "204 success",
			typeName: "png",
			mockFTS: func() ports.FileTypeService {
				return &FakeFileTypeService{
					DeleteFileTypeFunc: func(ctx context.Context, name string) error {
						assert.Equal(t, "png", name)
						return nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupFileTypeRouter(t, tt.mockFTS(), false)
			rr := doPlainReq(t, r, http.MethodDelete, "/api/v1/file-types/"+tt.typeName, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestFileTypeController_GetFileTypesHandler(t *testing.T) {
	r, _ := setupFileTypeRouter(t, &FakeFileTypeService{
		FindFileTypesFunc: func(ctx context.Context) (domain.FileTypes, error) {
			return domain.FileTypes{someDomainFileType()}, nil
		},
	}, false)

	rr := doPlainReq(t, r, http.MethodGet, "/api/v1/file-types", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data, ok := resp["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "png", first["name"])
	assert.Equal(t, "image/png", first["mime_type"])
}

func TestFileTypeController_GetFileTypeHandler(t *testing.T) {
	r, _ := setupFileTypeRouter(t, &FakeFileTypeService{
		FindFileTypeByNameFunc: func(ctx context.Context, name string) (*domain.FileType, error) {
			if name != "png" {
				return nil, apperrors.ErrNotFound
			}
			return someDomainFileType(), nil
		},
	}, false)

	rr := doPlainReq(t, r, http.MethodGet, "/api/v1/file-types/png", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doPlainReq(t, r, http.MethodGet, "/api/v1/file-types/gif", nil, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
