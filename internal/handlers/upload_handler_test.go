package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDecodeFilename(t *testing.T) {
	assert.Equal(t, "my report.pdf", decodeFilename("my%20report.pdf"))
	assert.Equal(t, "plain.pdf", decodeFilename("plain.pdf"))
	// Undecodable names pass through untouched.
	assert.Equal(t, "bad%zz.pdf", decodeFilename("bad%zz.pdf"))
}

func TestUploadFileReturnsPlaceholderLink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.POST("/upload", h.UploadFile)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "report.pdf")
	assert.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "link")
}

func TestUploadFileRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.POST("/upload", h.UploadFile)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
