package s3

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI is the subset of *s3.Client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// presignAPI is the subset of *s3.PresignClient the store uses.
type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4Request, error)
}

// Store keeps uploads in a single S3 bucket.
type Store struct {
	bucket    string
	client    objectAPI
	presigner presignAPI
}

var _ storage.BlobStore = (*Store)(nil)

// NewStore loads the default AWS credential chain for region.
func NewStore(ctx context.Context, region, bucket string) (*Store, error) {
	if bucket == "" {
		return nil, errors.New("s3 bucket name is empty")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return newStore(bucket, client, presignAdapter{s3.NewPresignClient(client)}), nil
}

func newStore(bucket string, client objectAPI, presigner presignAPI) *Store {
	return &Store{bucket: bucket, client: client, presigner: presigner}
}

func (s *Store) Put(ctx context.Context, obj storage.Object) (string, error) {
	if obj.Key == "" {
		return "", errors.New("object key is empty")
	}
	contentType := obj.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(obj.Key))
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(obj.Key),
		Body:   obj.Body,
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", obj.Key, err)
	}
	return obj.Key, nil
}

func (s *Store) URL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}

// Delete removes key. S3 reports success for missing keys.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
