// internal/objectstore/minio.go
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/photostack/photostack/internal/config"
	"github.com/photostack/photostack/internal/domain"
	"github.com/rs/zerolog/log"
)

// bucketPrefix namespaces every physical bucket this system touches.
const bucketPrefix = "photos"

// signedURLExpiry bounds presigned retrieval links.
const signedURLExpiry = 15 * time.Minute

// MinioStore implements Store against MinIO or any S3-compatible provider.
type MinioStore struct {
	client *minio.Client
	core   *minio.Core
	region string
	stage  string
}

func NewMinioStore(cfg config.StoreConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return &MinioStore{
		client: client,
		core:   &minio.Core{Client: client},
		region: cfg.Region,
		stage:  cfg.Stage,
	}, nil
}

// physicalName derives the namespaced bucket name from a logical one.
func (s *MinioStore) physicalName(logical string) string {
	return physicalName(s.stage, logical)
}

func physicalName(stage, logical string) string {
	return fmt.Sprintf("%s-%s-%s", bucketPrefix, stage, logical)
}

func (s *MinioStore) AssertBucket(ctx context.Context, logical string) *domain.Error {
	bucket := s.physicalName(logical)

	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return normalize(err)
	}
	if exists {
		return nil
	}

	err = s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region})
	if err != nil {
		// A concurrent assert may have won; both codes mean the bucket is there.
		resp := minio.ToErrorResponse(err)
		if resp.Code == "BucketAlreadyOwnedByYou" || resp.Code == "BucketAlreadyExists" {
			return nil
		}
		return normalize(err)
	}

	log.Info().Str("bucket", bucket).Msg("created bucket")
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, logical, key string, body []byte, contentType string) (*domain.UploadResult, *domain.Error) {
	bucket := s.physicalName(logical)

	info, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, normalize(err)
	}

	location := info.Location
	if location == "" {
		location = fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), bucket, key)
	}

	return &domain.UploadResult{
		Bucket:   bucket,
		Key:      info.Key,
		Location: location,
	}, nil
}

func (s *MinioStore) Head(ctx context.Context, logical, key string) *domain.Error {
	_, err := s.client.StatObject(ctx, s.physicalName(logical), key, minio.StatObjectOptions{})
	if err != nil {
		return normalize(err)
	}
	return nil
}

func (s *MinioStore) SignedURL(ctx context.Context, logical, key string) (string, *domain.Error) {
	u, err := s.client.PresignedGetObject(ctx, s.physicalName(logical), key, signedURLExpiry, nil)
	if err != nil {
		return "", normalize(err)
	}
	return u.String(), nil
}

func (s *MinioStore) List(ctx context.Context, logical string, limit int, cursor string) (*domain.ListPage, *domain.Error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	// cursor goes through as the store's native start-after marker; ordering
	// and the truncation flag come back from the store untouched.
	res, err := s.core.ListObjectsV2(s.physicalName(logical), "", cursor, "", "", limit)
	if err != nil {
		return nil, normalize(err)
	}

	page := &domain.ListPage{
		Items:       make([]domain.ObjectEntry, 0, len(res.Contents)),
		IsTruncated: res.IsTruncated,
	}
	for _, obj := range res.Contents {
		page.Items = append(page.Items, domain.ObjectEntry{
			Key:          obj.Key,
			LastModified: obj.LastModified,
		})
	}
	if res.IsTruncated && len(page.Items) > 0 {
		page.NextCursor = page.Items[len(page.Items)-1].Key
	}

	return page, nil
}

func (s *MinioStore) Delete(ctx context.Context, logical, key string) *domain.Error {
	// RemoveObject on a missing key succeeds, which keeps deletes idempotent.
	if err := s.client.RemoveObject(ctx, s.physicalName(logical), key, minio.RemoveObjectOptions{}); err != nil {
		return normalize(err)
	}
	return nil
}

// normalize maps a provider failure into the uniform error shape: the
// {statusCode, code, message} triple verbatim when the provider reported one,
// a bare InternalServerError otherwise.
func normalize(err error) *domain.Error {
	resp := minio.ToErrorResponse(err)
	if resp.Code != "" {
		return domain.Provider(resp.StatusCode, resp.Code, resp.Message)
	}
	return domain.Internal(err.Error())
}
