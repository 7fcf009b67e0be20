package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

func multipartUploadRequest(t *testing.T, fields map[string]string, fileField, fileName, contentType string, fileBody []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(fileBody)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImageRequiresPrincipal(t *testing.T) {
	h := &UploadHandler{}

	rec := httptest.NewRecorder()
	req := multipartUploadRequest(t, map[string]string{"name": "Fire Flower", "category": "Power Up"},
		"file", "flower.png", "image/png", []byte("png-bytes"))
	h.UploadImage(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestUploadImageValidation(t *testing.T) {
	h := &UploadHandler{}

	tests := []struct {
		name        string
		fields      map[string]string
		fileField   string
		contentType string
		wantMsg     string
	}{
		{"short name", map[string]string{"name": "F", "category": "Power Up"}, "file", "image/png", "Item name is required"},
		{"short category", map[string]string{"name": "Fire Flower", "category": "P"}, "file", "image/png", "Category is required"},
		{"missing file", map[string]string{"name": "Fire Flower", "category": "Power Up"}, "", "", "Image file is required"},
		{"not an image", map[string]string{"name": "Fire Flower", "category": "Power Up"}, "file", "text/plain", "Only image uploads are allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := multipartUploadRequest(t, tt.fields, tt.fileField, "flower.png", tt.contentType, []byte("bytes"))
			req = req.WithContext(context.WithValue(req.Context(), "user_id", "user_1"))
			h.UploadImage(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
			}
			if msg := decodeError(t, rec); msg != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}
