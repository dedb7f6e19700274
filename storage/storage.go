package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Sunatl/mushkiloti-gomea/configs"
	"github.com/google/uuid"
)

// Storage keeps the blobs; the database only ever stores the returned
// reference string.
type Storage interface {
	Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, ref string) error
}

// New picks MinIO when an endpoint is configured, local disk otherwise.
func New(cfg *configs.Config) (Storage, error) {
	if cfg.MinioEndpoint != "" {
		return newMinIO(cfg)
	}
	return &localStorage{dir: cfg.UploadDir}, nil
}

type localStorage struct {
	dir string
}

func (l *localStorage) Upload(_ context.Context, folder, fileName string, file io.Reader, _ int64) (string, error) {
	dir := filepath.Join(l.dir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(fileName))
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return path, nil
}

func (l *localStorage) Delete(_ context.Context, ref string) error {
	return os.Remove(ref)
}
