package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

// Errors returned by GetText
var (
	ErrObjectNotFound = repositories.ErrNoteNotFound
	ErrObjectTooLarge = repositories.ErrNoteTooLarge
)

// MinIOClient reads note documents from a MinIO/S3 bucket
type MinIOClient struct {
	client   *minio.Client
	bucket   string
	maxBytes int64
}

var _ repositories.NoteSource = (*MinIOClient)(nil)

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:   minioClient,
		bucket:   cfg.BucketName,
		maxBytes: cfg.MaxObjectBytes,
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket when missing. Objects stay private.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// GetText downloads a notes document. Invalid UTF-8 is kept as is; the
// normalizer drops it.
func (m *MinIOClient) GetText(ctx context.Context, objectName string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", translateError(err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return "", translateError(err)
	}
	if m.maxBytes > 0 && info.Size > m.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrObjectTooLarge, objectName, info.Size)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", translateError(err)
	}
	return string(data), nil
}

// PutText uploads a notes document as text/plain
func (m *MinIOClient) PutText(ctx context.Context, objectName, content string) error {
	contentType := "text/plain; charset=utf-8"
	if !utf8.ValidString(content) {
		contentType = "application/octet-stream"
	}
	_, err := m.client.PutObject(ctx, m.bucket, objectName, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload notes: %w", err)
	}
	return nil
}

func translateError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %v", ErrObjectNotFound, err)
	}
	return err
}
