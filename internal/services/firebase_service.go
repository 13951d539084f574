package services

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/SirClappington/ecommerce-admin-backend/internal/config"
)

// FirebaseService owns the firebase app and the image bucket. Firestore and
// Auth clients are handed out from the same app.
type FirebaseService struct {
	app     *firebase.App
	storage *storage.Client
	bucket  *storage.BucketHandle
	logger  *zap.Logger
}

func NewFirebaseService(ctx context.Context, cfg config.FirebaseConfig, logger *zap.Logger) (*FirebaseService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.BucketName,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	fs := &FirebaseService{app: app, logger: logger}
	if cfg.BucketName == "" {
		return fs, nil
	}

	storageClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase storage client: %w", err)
	}
	fs.storage = storageClient
	fs.bucket = storageClient.Bucket(cfg.BucketName)
	return fs, nil
}

func (fs *FirebaseService) Firestore(ctx context.Context) (*firestore.Client, error) {
	client, err := fs.app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore client: %w", err)
	}
	return client, nil
}

func (fs *FirebaseService) Auth(ctx context.Context) (*auth.Client, error) {
	client, err := fs.app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth client: %w", err)
	}
	return client, nil
}

// HasBucket reports whether uploads can be served.
func (fs *FirebaseService) HasBucket() bool {
	return fs.bucket != nil
}

// PutObject streams r into the bucket under objectName.
func (fs *FirebaseService) PutObject(ctx context.Context, objectName, contentType string, r io.Reader) error {
	if fs.bucket == nil {
		return fmt.Errorf("no storage bucket configured")
	}

	wc := fs.bucket.Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return fmt.Errorf("error uploading file to firebase storage: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("error closing writer: %w", err)
	}

	fs.logger.Debug("object uploaded", zap.String("object", objectName), zap.String("content_type", contentType))
	return nil
}

func (fs *FirebaseService) Close() error {
	if fs.storage == nil {
		return nil
	}
	return fs.storage.Close()
}
