package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartContext(t *testing.T, files map[string][]byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.CreateFormFile("screenshots", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := multipartContext(t, map[string][]byte{"shot.png": []byte("data")})
	form, err := c.MultipartForm()
	require.NoError(t, err)
	files := form.File["screenshots"]
	require.Len(t, files, 1)

	name, err := store.Save(c, files[0])
	require.NoError(t, err)

	// stored under a random name, original name only keeps its extension
	assert.NotEqual(t, "shot.png", name)
	assert.Equal(t, ".png", filepath.Ext(name))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestStore_SaveRejectsOversizeFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	c := multipartContext(t, map[string][]byte{
		"big.png": bytes.Repeat([]byte("x"), MaxFileSize+1),
	})
	form, err := c.MultipartForm()
	require.NoError(t, err)

	_, err = store.Save(c, form.File["screenshots"][0])
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestStore_SaveAllRollsBackOnFailure(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := multipartContext(t, map[string][]byte{
		"ok-1.png": []byte("one"),
		"ok-2.png": []byte("two"),
		"big.png":  bytes.Repeat([]byte("x"), MaxFileSize+1),
	})
	form, err := c.MultipartForm()
	require.NoError(t, err)

	_, err = store.SaveAll(c, form.File["screenshots"])
	require.Error(t, err)

	// no partial uploads are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewStoreRequiresDir(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
