package media

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeStoreRoundTrip(t *testing.T) {
	store := NewFakeStore()

	key, err := store.Save("cover.png", bytes.NewReader([]byte("image bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))

	content, ok := store.Content(key)
	require.True(t, ok)
	assert.Equal(t, []byte("image bytes"), content)

	assert.Equal(t, "fake://"+key, store.GetUrlFromKey(key))
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/media/")
	require.NoError(t, err)

	key, err := store.Save("photo.jpg", bytes.NewReader([]byte("jpeg bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	content, err := ioutil.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), content)

	assert.Equal(t, "/media/"+key, store.GetUrlFromKey(key))
}

func TestKeysDoNotCollide(t *testing.T) {
	store := NewFakeStore()

	first, err := store.Save("cover.png", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	second, err := store.Save("cover.png", bytes.NewReader([]byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
