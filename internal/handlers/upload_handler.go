package handlers

import (
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"xdimension/utils"
)

// Upload limits mirror the file router configuration of the web client:
// a single image of at most 4MB per request.
const (
	maxUploadSize  = 4 << 20
	maxUploadFiles = 1
)

// UploadHandler stores an uploaded image in object storage and returns its
// public URL. It never writes to the item store; the client includes the
// returned URL in a subsequent create or update call.
type UploadHandler struct {
	Storage *utils.Storage
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	if len(strings.TrimSpace(r.FormValue("name"))) < 2 {
		writeJSONError(w, http.StatusBadRequest, "Item name is required")
		return
	}
	if len(strings.TrimSpace(r.FormValue("category"))) < 2 {
		writeJSONError(w, http.StatusBadRequest, "Category is required")
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		writeJSONError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	if len(files) > maxUploadFiles {
		writeJSONError(w, http.StatusBadRequest, "Only one file may be uploaded")
		return
	}

	fileHeader := files[0]
	if fileHeader.Size > maxUploadSize {
		writeJSONError(w, http.StatusBadRequest, "File exceeds the 4MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeJSONError(w, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	objectName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	imageURL, err := h.Storage.UploadFile(data, objectName, "items", contentType)
	if err != nil {
		log.Printf("UploadImage storage error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"uploadedBy": principal,
		"imageUrl":   imageURL,
	})
}
