package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
)

func TestValidateFile(t *testing.T) {
	cases := []struct {
		name string
		size int64
		err  error
	}{
		{"avatar.png", 1024, nil},
		{"photo.JPG", 1024, nil},
		{"banner.webp", MaxUploadSize, nil},
		{"resume.pdf", 1024, ErrRejectedFormat},
		{"script.sh", 10, ErrRejectedFormat},
		{"noextension", 10, ErrRejectedFormat},
		{"huge.png", MaxUploadSize + 1, ErrFileTooLarge},
	}

	for _, tc := range cases {
		err := ValidateFile(tc.name, tc.size)
		if tc.err == nil {
			assert.NoError(t, err, tc.name)
		} else {
			assert.ErrorIs(t, err, tc.err, tc.name)
		}
	}
}

func TestNewStorageCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/uploads"
	s, err := NewStorage(&config.Config{UploadDir: dir, BaseURL: "http://localhost:5000"})
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())
	assert.DirExists(t, dir)
}

func TestRemoveIgnoresForeignURLs(t *testing.T) {
	s, err := NewStorage(&config.Config{UploadDir: t.TempDir(), BaseURL: "http://localhost:5000"})
	require.NoError(t, err)

	require.NoError(t, s.Remove("https://cdn.example.com/image.png"))
	require.NoError(t, s.Remove("http://localhost:5000/uploads/missing.png"))
}
