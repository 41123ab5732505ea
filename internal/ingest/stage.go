package ingest

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StageUpload copies the source into uploadDir under a uuid-prefixed name so
// concurrent uploads of same-named files never collide. The original file is
// left untouched.
func StageUpload(uploadDir, srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	destPath := filepath.Join(uploadDir, uuid.NewString()+"_"+filepath.Base(srcPath))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = dest.Close() }()

	if _, err := io.Copy(dest, src); err != nil {
		_ = os.Remove(destPath)
		return "", err
	}
	return destPath, nil
}
