package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mlmusic/config"
	"mlmusic/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaKind is the logical bucket (object prefix) for an upload.
type MediaKind string

const (
	MediaArtistLogo MediaKind = "artists"
	MediaTrackLogo  MediaKind = "tracks_logo"
	MediaTrackAudio MediaKind = "tracks"
	// Album covers historically share the playlist prefix.
	MediaAlbumLogo    MediaKind = "playlists"
	MediaPlaylistLogo MediaKind = "playlists"
	MediaUserPhoto    MediaKind = "users"
)

// MediaStore stores uploaded media in MinIO. Rows only ever hold the
// object path it returns, never file bytes.
type MediaStore struct {
	client *minio.Client
	bucket string
}

// NewMediaStore connects to MinIO and ensures the bucket exists.
func NewMediaStore(cfg *config.Config) (*MediaStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinioBucket, err)
		}
		logger.Info("created media bucket", logger.String("bucket", cfg.MinioBucket))
	}

	return &MediaStore{client: client, bucket: cfg.MinioBucket}, nil
}

// PutFile uploads a local file under the kind's prefix and returns the
// object path to persist. The object name is a fresh uuid so concurrent
// uploads of same-named files never collide.
func (s *MediaStore) PutFile(ctx context.Context, kind MediaKind, localPath, contentType string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	objectPath := fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), filepath.Ext(localPath))

	_, err = s.client.PutObject(ctx, s.bucket, objectPath, f, stat.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	logger.Debug("uploaded media object",
		logger.String("object", objectPath),
		logger.Int64("size", stat.Size()))
	return objectPath, nil
}

// Remove deletes an object. Used to roll back uploads when the owning
// row fails to commit.
func (s *MediaStore) Remove(ctx context.Context, objectPath string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", objectPath, err)
	}
	return nil
}

// Stat reports whether an object exists.
func (s *MediaStore) Stat(ctx context.Context, objectPath string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, objectPath, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns the object paths under a prefix, for the management CLI.
func (s *MediaStore) List(ctx context.Context, prefix string) ([]string, error) {
	var objects []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		objects = append(objects, object.Key)
	}
	return objects, nil
}
