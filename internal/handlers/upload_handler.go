package handlers

import (
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// decodeFilename undoes the percent-encoding browsers apply to uploaded
// filenames. A name that fails to decode is kept as-is.
func decodeFilename(name string) string {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}

// UploadFile accepts a single file buffered in memory. No object store is
// wired up; the response carries a placeholder link.
// TODO: store the buffer in S3 or similar and return the real URL.
func (h *Handler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("Error uploading file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error uploading file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error uploading file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	log.Printf("Received upload %q (%d bytes)", decodeFilename(fileHeader.Filename), len(buf))

	c.JSON(http.StatusOK, gin.H{"link": "your_actual_link_or_data"})
}
