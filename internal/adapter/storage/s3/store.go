// Package s3 stores recipe images and avatars in an S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/config"
)

// objectAPI is the subset of *s3.Client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Store saves base64 image payloads as objects and hands out their public URLs.
type Store struct {
	client   objectAPI
	bucket   string
	baseURL  string
	maxBytes int
}

// New builds an S3 client from cfg. Static credentials are used when both
// keys are configured, otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newStore(client, cfg), nil
}

func newStore(client objectAPI, cfg config.StorageConfig) *Store {
	return &Store{
		client:   client,
		bucket:   cfg.Bucket,
		baseURL:  publicBaseURL(cfg),
		maxBytes: cfg.MaxImageBytes,
	}
}

// Save decodes payload, uploads it under prefix and returns its public URL.
// Undecodable payloads fail with domain.ErrInvalidImage.
func (s *Store) Save(ctx context.Context, prefix, payload string) (string, error) {
	img, err := DecodeImage(payload, s.maxBytes)
	if err != nil {
		return "", err
	}

	key := strings.Trim(prefix, "/") + "/" + uuid.NewString() + "." + img.Ext
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.PublicURL(key), nil
}

// Delete removes the object behind a URL returned by Save. References that
// do not point into this store are ignored.
func (s *Store) Delete(ctx context.Context, ref string) error {
	key := s.KeyFromURL(ref)
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// Ping checks that the bucket exists and is reachable with the configured
// credentials.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("head bucket %s: %w", s.bucket, err)
	}
	return nil
}

// PublicURL returns the URL an object key is served from.
func (s *Store) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// KeyFromURL reverses PublicURL. It returns "" for foreign URLs.
func (s *Store) KeyFromURL(ref string) string {
	key, ok := strings.CutPrefix(ref, s.baseURL+"/")
	if !ok {
		return ""
	}
	return key
}

func publicBaseURL(cfg config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}
