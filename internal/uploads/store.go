package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxFileSize caps a single screenshot upload at 5MB.
const MaxFileSize = 5 << 20

// ErrFileTooLarge is returned for uploads over MaxFileSize.
var ErrFileTooLarge = fmt.Errorf("file exceeds %d bytes", MaxFileSize)

// Store writes uploaded screenshots to disk under a server-managed
// directory. Stored files get random names; the original filename only
// contributes its extension.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory uploads are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save persists one uploaded file and returns its stored filename.
func (s *Store) Save(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := filepath.Ext(fh.Filename)
	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(fh, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("saving uploaded file failed: %w", err)
	}
	return name, nil
}

// SaveAll persists the files in order and returns their stored names.
// On any failure the already stored files are removed again.
func (s *Store) SaveAll(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := s.Save(c, fh)
		if err != nil {
			s.Remove(names...)
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Remove deletes stored files by name, ignoring missing ones.
func (s *Store) Remove(names ...string) {
	for _, name := range names {
		_ = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	}
}
