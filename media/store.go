// Package media stores uploaded post images behind a small Store
// interface: local disk for development, S3 in production, an in-memory
// fake for tests.
package media

import (
	"io"
	"path"

	"github.com/Luismorlan/blogmux/utils"
)

type Store interface {
	// Save persists the content under a fresh key derived from fileName
	// and returns that key.
	Save(fileName string, content io.Reader) (key string, err error)
	// GetUrlFromKey returns the public URL serving the stored file.
	GetUrlFromKey(key string) string
}

// keyFromFileName derives a collision-free storage key, keeping the
// original extension so content type stays guessable.
func keyFromFileName(fileName string) (string, error) {
	digest, err := utils.TextToMd5Hash(fileName + utils.RandomAlphabetString(8))
	if err != nil {
		return "", err
	}
	return digest + path.Ext(fileName), nil
}
