package media

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalStore keeps uploaded files on local disk, for development runs
// where no S3 bucket is around.
type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir string, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "fail to create media directory")
	}
	return &LocalStore{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *LocalStore) Save(fileName string, content io.Reader) (string, error) {
	key, err := keyFromFileName(fileName)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", errors.Wrap(err, "fail to create media file")
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", errors.Wrap(err, "fail to write media file")
	}
	return key, nil
}

func (s *LocalStore) GetUrlFromKey(key string) string {
	return s.urlPrefix + key
}
