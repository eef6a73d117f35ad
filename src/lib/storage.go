package lib

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
)

// Uploads is the file storage collaborator, set at startup.
var Uploads *Storage

// MaxUploadSize caps image uploads.
const MaxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
}

// ErrRejectedFormat rejects files with disallowed extensions.
var ErrRejectedFormat = apperr.New(apperr.CodeInvalid, "File upload only supports image formats")

// ErrFileTooLarge rejects files over MaxUploadSize.
var ErrFileTooLarge = apperr.New(apperr.CodeInvalid, "File exceeds the maximum upload size")

// Storage saves uploaded images on local disk under a single directory and
// serves them back under /uploads.
type Storage struct {
	dir     string
	baseURL string
}

// NewStorage ensures dir exists and returns a Storage rooted there.
func NewStorage(cfg *config.Config) (*Storage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", cfg.UploadDir, err)
	}
	return &Storage{dir: cfg.UploadDir, baseURL: cfg.BaseURL}, nil
}

// Dir returns the directory uploads are stored in.
func (s *Storage) Dir() string { return s.dir }

// ValidateFile checks name and size against the upload constraints.
func ValidateFile(name string, size int64) error {
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return ErrRejectedFormat
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// Save stores the uploaded file under a random name and returns its public URL.
func (s *Storage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if err := ValidateFile(fileHeader.Filename, fileHeader.Size); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", apperr.Wrap(err, apperr.CodeInternal, "open upload failed")
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperr.Wrap(err, apperr.CodeInternal, "store upload failed")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Wrap(err, apperr.CodeInternal, "store upload failed")
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Remove deletes a previously stored file given its public URL. Unknown
// URLs are ignored.
func (s *Storage) Remove(fileURL string) error {
	idx := strings.LastIndex(fileURL, "/uploads/")
	if idx < 0 {
		return nil
	}
	name := filepath.Base(fileURL[idx+len("/uploads/"):])
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
