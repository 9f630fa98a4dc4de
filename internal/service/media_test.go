package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	repoMocks "jumpingkids/internal/repository/mocks"
	"jumpingkids/internal/storage"
	storeMocks "jumpingkids/internal/storage/mocks"
)

func ownedExercise() *model.Exercise {
	return &model.Exercise{
		ID:        testExerciseID,
		Name:      "Saltos de Estrella",
		CreatedBy: "7",
		IsCustom:  true,
	}
}

func TestMediaService_Attach(t *testing.T) {
	ctx := context.Background()
	imageKey := fmt.Sprintf("exercises/%s/image.png", testExerciseID)

	tests := []struct {
		name       string
		kind       MediaKind
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockExerciseRepository) io.Reader
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path links the stored object",
			kind: MediaImage,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockExerciseRepository) io.Reader {
				r := strings.NewReader("png content")
				mRepo.On("FindByID", ctx, testExerciseID, "7").Return(ownedExercise(), nil)
				mStore.On("Put", ctx, imageKey, r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "frog.PNG"},
				}).Return(storage.ObjectInfo{Key: imageKey, Size: 11}, nil)
				mRepo.On("Update", ctx, mock.MatchedBy(func(e *model.Exercise) bool {
					return e.ImageURL != nil && *e.ImageURL == imageKey
				})).Return(&model.Exercise{ID: testExerciseID, ImageURL: &imageKey}, nil)
				return r
			},
		},
		{
			name: "catalog exercise rejects uploads",
			kind: MediaImage,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockExerciseRepository) io.Reader {
				mRepo.On("FindByID", ctx, testExerciseID, "7").Return(&model.Exercise{
					ID:        testExerciseID,
					CreatedBy: model.SystemAuthor,
				}, nil)
				return strings.NewReader("png content")
			},
			wantErr: ErrExerciseNotFound,
		},
		{
			name: "nil reader",
			kind: MediaImage,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockExerciseRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name: "unknown kind",
			kind: MediaKind("gif"),
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockExerciseRepository) io.Reader {
				return strings.NewReader("png content")
			},
			wantErr: ErrMediaKindInvalid,
		},
		{
			name: "db failure rolls back the upload",
			kind: MediaImage,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockExerciseRepository) io.Reader {
				r := strings.NewReader("png content")
				mRepo.On("FindByID", ctx, testExerciseID, "7").Return(ownedExercise(), nil)
				mStore.On("Put", ctx, imageKey, r, mock.Anything).
					Return(storage.ObjectInfo{Key: imageKey}, nil)
				mRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, imageKey).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockExerciseRepository)
			svc := NewMediaService(mStore, mRepo)

			r := tt.setupMocks(mStore, mRepo)

			e, err := svc.Attach(ctx, testExerciseID, 7, tt.kind, r, "frog.PNG", "image/png", 11)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, e.ImageURL)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestMediaService_ImportFromURL(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path downloads and attaches", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png from afar"))
		}))
		defer srv.Close()

		imageKey := fmt.Sprintf("exercises/%s/image.png", testExerciseID)

		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockExerciseRepository)
		mRepo.On("FindByID", ctx, testExerciseID, "7").Return(ownedExercise(), nil)
		mStore.On("Put", ctx, imageKey, mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "image/png" && opt.Size == int64(len("png from afar"))
		})).Return(storage.ObjectInfo{Key: imageKey}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(&model.Exercise{ID: testExerciseID, ImageURL: &imageKey}, nil)
		svc := NewMediaService(mStore, mRepo)

		e, err := svc.ImportFromURL(ctx, testExerciseID, 7, MediaImage, srv.URL+"/media/frog.png")
		assert.NoError(t, err)
		assert.Equal(t, imageKey, *e.ImageURL)
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("rejects non-http urls", func(t *testing.T) {
		svc := NewMediaService(new(storeMocks.MockStorage), new(repoMocks.MockExerciseRepository))
		_, err := svc.ImportFromURL(ctx, testExerciseID, 7, MediaImage, "ftp://example.com/frog.png")
		assert.ErrorIs(t, err, ErrMediaURLInvalid)
	})

	t.Run("rejects mismatched content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		svc := NewMediaService(new(storeMocks.MockStorage), new(repoMocks.MockExerciseRepository))
		_, err := svc.ImportFromURL(ctx, testExerciseID, 7, MediaImage, srv.URL+"/frog.png")
		assert.ErrorIs(t, err, ErrMediaContentType)
	})

	t.Run("propagates upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		svc := NewMediaService(new(storeMocks.MockStorage), new(repoMocks.MockExerciseRepository))
		_, err := svc.ImportFromURL(ctx, testExerciseID, 7, MediaImage, srv.URL+"/frog.png")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status")
	})
}

func TestMediaService_PresignedURL(t *testing.T) {
	ctx := context.Background()
	imageKey := fmt.Sprintf("exercises/%s/image.png", testExerciseID)

	t.Run("stored media is presigned", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockExerciseRepository)
		mRepo.On("FindByID", ctx, testExerciseID, "7").Return(&model.Exercise{
			ID:       testExerciseID,
			ImageURL: &imageKey,
		}, nil)
		mStore.On("PresignGet", ctx, imageKey, presignExpiry).
			Return("https://minio.local/"+imageKey+"?sig=abc", nil)
		svc := NewMediaService(mStore, mRepo)

		u, err := svc.PresignedURL(ctx, testExerciseID, 7, MediaImage)
		assert.NoError(t, err)
		assert.Contains(t, u, "sig=abc")
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("external references pass through", func(t *testing.T) {
		staticPath := "/images/exercises/saltos_rana.jpg"
		mRepo := new(repoMocks.MockExerciseRepository)
		mRepo.On("FindByID", ctx, testExerciseID, "7").Return(&model.Exercise{
			ID:       testExerciseID,
			ImageURL: &staticPath,
		}, nil)
		svc := NewMediaService(new(storeMocks.MockStorage), mRepo)

		u, err := svc.PresignedURL(ctx, testExerciseID, 7, MediaImage)
		assert.NoError(t, err)
		assert.Equal(t, staticPath, u)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing media", func(t *testing.T) {
		mRepo := new(repoMocks.MockExerciseRepository)
		mRepo.On("FindByID", ctx, testExerciseID, "7").Return(&model.Exercise{ID: testExerciseID}, nil)
		svc := NewMediaService(new(storeMocks.MockStorage), mRepo)

		_, err := svc.PresignedURL(ctx, testExerciseID, 7, MediaVideo)
		assert.ErrorIs(t, err, ErrMediaNotFound)
		mRepo.AssertExpectations(t)
	})
}

func TestMediaService_Open(t *testing.T) {
	ctx := context.Background()
	imageKey := fmt.Sprintf("exercises/%s/image.png", testExerciseID)

	t.Run("streams stored media", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockExerciseRepository)
		mRepo.On("FindByID", ctx, testExerciseID, "7").Return(&model.Exercise{
			ID:       testExerciseID,
			ImageURL: &imageKey,
		}, nil)
		mStore.On("Get", ctx, imageKey).Return(
			io.NopCloser(strings.NewReader("png content")),
			storage.ObjectInfo{Key: imageKey, ContentType: "image/png", Size: 11},
			nil,
		)
		svc := NewMediaService(mStore, mRepo)

		rc, info, err := svc.Open(ctx, testExerciseID, 7, MediaImage)
		assert.NoError(t, err)
		defer rc.Close()

		content, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, "png content", string(content))
		assert.Equal(t, "image/png", info.ContentType)
		mStore.AssertExpectations(t)
	})

	t.Run("external references are not stored", func(t *testing.T) {
		external := "https://cdn.example.com/frog.png"
		mRepo := new(repoMocks.MockExerciseRepository)
		mRepo.On("FindByID", ctx, testExerciseID, "7").Return(&model.Exercise{
			ID:       testExerciseID,
			ImageURL: &external,
		}, nil)
		svc := NewMediaService(new(storeMocks.MockStorage), mRepo)

		_, _, err := svc.Open(ctx, testExerciseID, 7, MediaImage)
		assert.ErrorIs(t, err, ErrMediaNotStored)
		mRepo.AssertExpectations(t)
	})
}
