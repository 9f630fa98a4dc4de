package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"jumpingkids/internal/model"
	"jumpingkids/internal/repository"
	"jumpingkids/internal/storage"
)

// MediaKind names the two media attachments an exercise can carry.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Valid reports whether the value is a known media kind.
func (k MediaKind) Valid() bool {
	return k == MediaImage || k == MediaVideo
}

const (
	presignExpiry  = 15 * time.Minute
	maxImportBytes = 50 << 20
	objectPrefix   = "exercises/"
)

var (
	ErrReaderNil        = errors.New("reader is nil")
	ErrMediaKindInvalid = errors.New("media kind must be image or video")
	ErrMediaURLInvalid  = errors.New("source url must be http or https")
	ErrMediaTooLarge    = errors.New("source file exceeds the media size limit")
	ErrMediaContentType = errors.New("source content type does not match media kind")
	ErrMediaNotFound    = errors.New("exercise has no media of that kind")
	ErrMediaNotStored   = errors.New("media is referenced by url, not stored")
)

// MediaService stores exercise images and videos in object storage. Only
// custom exercises accept uploads; catalog media ships with the app and
// is served as-is.
type MediaService interface {
	// Attach streams media into storage and links it to an exercise the
	// user owns. An earlier attachment of the same kind is replaced.
	Attach(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind, r io.Reader, filename, contentType string, size int64) (*model.Exercise, error)

	// ImportFromURL downloads media from a public URL and attaches it
	// like Attach does.
	ImportFromURL(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind, srcURL string) (*model.Exercise, error)

	// PresignedURL returns a short-lived download URL for an exercise's
	// media. References outside object storage pass through unchanged.
	PresignedURL(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind) (string, error)

	// Open streams an exercise's media from object storage. Media
	// referenced by URL rather than stored returns ErrMediaNotStored.
	Open(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind) (io.ReadCloser, storage.ObjectInfo, error)
}

type mediaService struct {
	store     storage.Storage
	exercises repository.ExerciseRepository
	client    *http.Client
}

// NewMediaService constructs a MediaService backed by the given store.
func NewMediaService(store storage.Storage, exercises repository.ExerciseRepository) MediaService {
	return &mediaService{
		store:     store,
		exercises: exercises,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

func (s *mediaService) Attach(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind, r io.Reader, filename, contentType string, size int64) (*model.Exercise, error) {
	if !kind.Valid() {
		return nil, ErrMediaKindInvalid
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	e, err := s.exercises.FindByID(ctx, exerciseID, creatorKey(userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if e.CreatedBy != creatorKey(userID) {
		return nil, ErrExerciseNotFound
	}

	key := fmt.Sprintf("%s%s/%s%s", objectPrefix, exerciseID, kind, strings.ToLower(path.Ext(filename)))
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	switch kind {
	case MediaImage:
		e.ImageURL = &info.Key
	case MediaVideo:
		e.VideoURL = &info.Key
	}

	updated, err := s.exercises.Update(ctx, e)
	if err != nil {
		// Best effort cleanup to keep DB and storage consistent.
		_ = s.store.Delete(ctx, info.Key)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return updated, nil
}

func (s *mediaService) ImportFromURL(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind, srcURL string) (*model.Exercise, error) {
	if !kind.Valid() {
		return nil, ErrMediaKindInvalid
	}

	src, err := url.Parse(srcURL)
	if err != nil || (src.Scheme != "http" && src.Scheme != "https") {
		return nil, ErrMediaURLInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch media: unexpected status %s", resp.Status)
	}
	if resp.ContentLength > maxImportBytes {
		return nil, ErrMediaTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	if !kindMatchesContentType(kind, contentType) {
		return nil, ErrMediaContentType
	}

	return s.Attach(ctx, exerciseID, userID, kind, resp.Body, path.Base(src.Path), contentType, resp.ContentLength)
}

func (s *mediaService) PresignedURL(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind) (string, error) {
	ref, err := s.mediaRef(ctx, exerciseID, userID, kind)
	if err != nil {
		return "", err
	}

	// Catalog rows and user-supplied URLs reference media outside the
	// object store.
	if !strings.HasPrefix(ref, objectPrefix) {
		return ref, nil
	}
	return s.store.PresignGet(ctx, ref, presignExpiry)
}

func (s *mediaService) Open(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind) (io.ReadCloser, storage.ObjectInfo, error) {
	ref, err := s.mediaRef(ctx, exerciseID, userID, kind)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if !strings.HasPrefix(ref, objectPrefix) {
		return nil, storage.ObjectInfo{}, ErrMediaNotStored
	}
	return s.store.Get(ctx, ref)
}

// mediaRef resolves the stored reference for one media kind of a visible
// exercise.
func (s *mediaService) mediaRef(ctx context.Context, exerciseID uuid.UUID, userID int64, kind MediaKind) (string, error) {
	if !kind.Valid() {
		return "", ErrMediaKindInvalid
	}

	e, err := s.exercises.FindByID(ctx, exerciseID, creatorKey(userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}

	var ref *string
	switch kind {
	case MediaImage:
		ref = e.ImageURL
	case MediaVideo:
		ref = e.VideoURL
	}
	if ref == nil {
		return "", ErrMediaNotFound
	}
	return *ref, nil
}

func kindMatchesContentType(kind MediaKind, contentType string) bool {
	switch kind {
	case MediaImage:
		return strings.HasPrefix(contentType, "image/")
	case MediaVideo:
		return strings.HasPrefix(contentType, "video/")
	}
	return false
}
