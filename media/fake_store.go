package media

import (
	"io"
	"io/ioutil"
	"sync"
)

// FakeStore is an in-memory Store for tests.
type FakeStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewFakeStore() *FakeStore {
	return &FakeStore{files: make(map[string][]byte)}
}

func (s *FakeStore) Save(fileName string, content io.Reader) (string, error) {
	key, err := keyFromFileName(fileName)
	if err != nil {
		return "", err
	}
	data, err := ioutil.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return key, nil
}

func (s *FakeStore) GetUrlFromKey(key string) string {
	return "fake://" + key
}

// Content returns what was stored under key, for assertions.
func (s *FakeStore) Content(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[key]
	return data, ok
}
