package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"dental-tourism-server/internal/config"
)

// Storage is the single interface over both upload paths: the browser-direct
// presigned hand-off and the server-proxied upload.
type Storage interface {
	// PresignUpload returns a time-limited PUT URL for the browser plus the
	// durable URL the object will have once uploaded.
	PresignUpload(ctx context.Context, fileName, fileType, folder string) (uploadURL, fileURL string, err error)

	// Upload writes the file server-side and returns its durable URL.
	Upload(ctx context.Context, fileName, contentType, folder string, body io.Reader) (fileURL string, err error)
}

// S3Storage implements Storage against an S3 bucket.
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
	expiry  time.Duration
}

// NewS3Storage builds the S3 adapter. It fails fast when the bucket or
// credentials are missing rather than erroring on first use.
func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	if cfg.AWS.Bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is not configured")
	}
	if !cfg.AWS.HasCredentials() {
		return nil, fmt.Errorf("AWS credentials are not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.AWS.Bucket,
		region:  cfg.AWS.Region,
		expiry:  time.Duration(cfg.PresignExpiryMinutes) * time.Minute,
	}, nil
}

func (s *S3Storage) PresignUpload(ctx context.Context, fileName, fileType, folder string) (string, string, error) {
	key := s.objectKey(fileName, folder)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, s.objectURL(key), nil
}

func (s *S3Storage) Upload(ctx context.Context, fileName, contentType, folder string, body io.Reader) (string, error) {
	key := s.objectKey(fileName, folder)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.objectURL(key), nil
}

// objectKey builds a collision-free key, keeping the original extension.
func (s *S3Storage) objectKey(fileName, folder string) string {
	if folder == "" {
		folder = "uploads"
	}
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), filepath.Ext(fileName))
}

func (s *S3Storage) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
