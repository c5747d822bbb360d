// Package storage persists uploaded files on local disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/goitom/finance-api/internal/application/usecase"
	"github.com/goitom/finance-api/pkg/config"
)

var _ usecase.LogoStore = (*LocalStore)(nil)

// LocalStore writes uploads under a base directory and serves them from a
// public base URL. The directory is created on first write.
type LocalStore struct {
	baseDir       string
	publicBaseURL string
}

func NewLocalStore(cfg config.StorageConfig) *LocalStore {
	return &LocalStore{
		baseDir:       cfg.UploadDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// SaveLogo stores the file under a per-user directory with a random name
// that keeps the original extension, and returns the public URL.
func (s *LocalStore) SaveLogo(userID, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp":
	default:
		return "", fmt.Errorf("unsupported logo file type %q", ext)
	}

	dir := filepath.Join(s.baseDir, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := "logo-" + uuid.New().String() + ext
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create logo file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write logo file: %w", err)
	}

	return s.publicBaseURL + "/" + userID + "/" + name, nil
}
