package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
)

var errUploadsDisabled = errors.New("no storage bucket configured")

// ObjectStore is where uploaded images end up. FirebaseService implements
// it on top of a Cloud Storage bucket.
type ObjectStore interface {
	PutObject(ctx context.Context, objectName, contentType string, r io.Reader) error
}

type UploadService struct {
	objects     ObjectStore
	baseURL     string
	prefix      string
	maxFileSize int64
	logger      *zap.Logger
}

// NewUploadService builds the upload pipeline. A nil objects store turns
// every upload into an external error.
func NewUploadService(objects ObjectStore, publicBaseURL, prefix string, maxFileSize int64, logger *zap.Logger) *UploadService {
	return &UploadService{
		objects:     objects,
		baseURL:     strings.TrimRight(publicBaseURL, "/"),
		prefix:      prefix,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload stores every file and returns their public links in the order
// the files were sent. Nothing is rolled back when a later file fails.
func (s *UploadService) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if s.objects == nil {
		return nil, apierrors.NewExternalError("storage", errUploadsDisabled)
	}
	if len(files) == 0 {
		return nil, apierrors.NewValidationError("at least one file is required")
	}

	links := make([]string, 0, len(files))
	for _, fh := range files {
		link, err := s.uploadOne(ctx, fh)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

func (s *UploadService) uploadOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if s.maxFileSize > 0 && fh.Size > s.maxFileSize {
		return "", apierrors.NewValidationError(fmt.Sprintf("%s exceeds the %d byte limit", fh.Filename, s.maxFileSize))
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("error opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", fh.Filename, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", apierrors.NewValidationError(fmt.Sprintf("%s is not an image (%s)", fh.Filename, mtype.String()))
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("error rewinding %s: %w", fh.Filename, err)
	}

	objectName := s.prefix + uuid.NewString() + mtype.Extension()
	if err := s.objects.PutObject(ctx, objectName, mtype.String(), f); err != nil {
		return "", apierrors.NewExternalError("storage", err)
	}

	s.logger.Info("image uploaded",
		zap.String("file", fh.Filename),
		zap.String("object", objectName),
		zap.Int64("size", fh.Size),
	)
	return s.baseURL + "/" + objectName, nil
}
