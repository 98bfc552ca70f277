// Package minio provides a blobstore.Store implementation backed by any
// S3-compatible object store via the MinIO SDK.
package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"landlordheaven/pkg/blobstore"
	"landlordheaven/pkg/serrors"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options describes how to reach the object store and which bucket to use.
type Options struct {
	Endpoint  string `yaml:"endpoint" env:"ENDPOINT"`
	AccessKey string `yaml:"accessKey" env:"ACCESS_KEY"`
	SecretKey string `yaml:"secretKey" env:"SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"BUCKET"`
	UseSSL    bool   `yaml:"useSSL" env:"USE_SSL"`
	Region    string `yaml:"region" env:"REGION"`
}

// Store stores blobs in a single bucket of an S3-compatible object store.
// It is safe for concurrent use.
type Store struct {
	client *miniogo.Client
	bucket string
}

// Put uploads body under key, replacing any existing object.
func (s *Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(body), int64(len(body)),
		miniogo.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("could not put object %q: %w", key, err)
	}

	return nil
}

// Get downloads the object stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("could not get object %q: %w", key, err)
	}
	defer func() {
		_ = obj.Close()
	}()

	b, err := io.ReadAll(obj)
	if err != nil {
		// the SDK reports missing keys on first read, not on GetObject
		var resp miniogo.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, serrors.With(serrors.ErrNotFound, "object %q not found", key)
		}

		return nil, fmt.Errorf("could not read object %q: %w", key, err)
	}

	return b, nil
}

// PresignGet returns a presigned GET URL for the object. A non-empty filename
// sets the Content-Disposition of the download.
func (s *Store) PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error) {
	params := make(url.Values)
	if filename != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, params)
	if err != nil {
		return "", fmt.Errorf("could not presign object %q: %w", key, err)
	}

	return u.String(), nil
}

// Remove deletes the object stored under key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, miniogo.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("could not remove object %q: %w", key, err)
	}

	return nil
}

// Ensure Store conforms to the blobstore.Store interface at compile time.
var _ blobstore.Store = (*Store)(nil)

// New connects to the object store and ensures the configured bucket exists.
func New(ctx context.Context, options Options) (*Store, error) {
	client, err := miniogo.New(options.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(options.AccessKey, options.SecretKey, ""),
		Secure: options.UseSSL,
		Region: options.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, options.Bucket)
	if err != nil {
		return nil, fmt.Errorf("could not check bucket %q: %w", options.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, options.Bucket, miniogo.MakeBucketOptions{
			Region: options.Region,
		}); err != nil {
			return nil, fmt.Errorf("could not create bucket %q: %w", options.Bucket, err)
		}
	}

	return &Store{client: client, bucket: options.Bucket}, nil
}
