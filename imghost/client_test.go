package imghost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "secret-key", r.URL.Query().Get("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "velo.jpg", header.Filename)

		w.Write([]byte(`{"success":true,"data":{"url":"https://img.example/velo.jpg"}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-key")

	url, err := c.Upload(context.Background(), "velo.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/velo.jpg", url)
}

func TestUploadRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(server.URL, "wrong")

	_, err := c.Upload(context.Background(), "velo.jpg", strings.NewReader("jpeg-bytes"))
	assert.Error(t, err)
}

func TestUploadNoURLInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-key")

	_, err := c.Upload(context.Background(), "velo.jpg", strings.NewReader("jpeg-bytes"))
	assert.Error(t, err)
}
