package gcp

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

// Uploader writes image objects into a single bucket and hands back their
// public download URLs.
type Uploader struct {
	client *storage.Client
	bucket string
}

func NewUploader(ctx context.Context, bucket string) (*Uploader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &Uploader{
		client: client,
		bucket: bucket,
	}, nil
}

// UploadJPEG stores the reader's bytes at objectName with content type
// image/jpeg and returns the object's public URL. The caller is responsible
// for writing the URL onto the owning document; the two steps are not
// transactional.
func (u *Uploader) UploadJPEG(ctx context.Context, objectName string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*60)
	defer cancel()

	w := u.client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = "image/jpeg"

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("Object(%q).NewWriter: %w", objectName, err)
	}

	return PublicURL(u.bucket, objectName), nil
}

// DeleteObject removes an object. Missing objects are not an error.
func (u *Uploader) DeleteObject(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	err := u.client.Bucket(u.bucket).Object(objectName).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return nil
	}
	if err != nil {
		return fmt.Errorf("Object(%q).Delete: %w", objectName, err)
	}
	return nil
}

func (u *Uploader) Close() error {
	return u.client.Close()
}

func PublicURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName)
}
