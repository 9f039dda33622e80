package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blackeagles/internal/handler"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func runUpload(uploader *handler.Uploader, req *http.Request) (string, error) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return uploader.Save(c, "photo_url_file")
}

func TestUploader_Save(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dir := t.TempDir()
		uploader := handler.NewUploader(dir, "/uploads")

		url, err := runUpload(uploader, multipartRequest(t, "photo_url_file", "../eagle one.PNG", []byte("png")))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, "_eagle_one.png"))
		data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
	})

	t.Run("Success - hangul name gets generated base", func(t *testing.T) {
		uploader := handler.NewUploader(t.TempDir(), "/uploads")

		url, err := runUpload(uploader, multipartRequest(t, "photo_url_file", "편대 사진.jpg", []byte("jpg")))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, ".jpg"))
		assert.NotContains(t, url, "편대")
	})

	t.Run("No file posted", func(t *testing.T) {
		uploader := handler.NewUploader(t.TempDir(), "/uploads")

		url, err := runUpload(uploader, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("")))
		require.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("Failed - not an image", func(t *testing.T) {
		dir := t.TempDir()
		uploader := handler.NewUploader(dir, "/uploads")

		_, err := runUpload(uploader, multipartRequest(t, "photo_url_file", "run.sh", []byte("#!/bin/sh")))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
