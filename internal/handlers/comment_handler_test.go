package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"xdimension/internal/services"
)

func TestListCommentsRequiresItemID(t *testing.T) {
	h := &CommentHandler{Service: &services.CommentService{}}

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments", nil)
		h.ListComments(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if msg := decodeError(t, rec); msg != "itemId is required" {
			t.Errorf("unexpected error message: %q", msg)
		}
	})

	t.Run("not a number", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/comments?itemId=abc", nil)
		h.ListComments(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestCreateCommentValidation(t *testing.T) {
	h := &CommentHandler{Service: &services.CommentService{}}

	tests := []struct {
		name string
		body string
	}{
		{"missing itemId", `{"content":"nice item"}`},
		{"missing content", `{"itemId":7}`},
		{"blank content", `{"itemId":7,"content":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := authenticatedRequest(http.MethodPost, "/comments", tt.body, "user_1")
			h.CreateComment(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
			}
			if msg := decodeError(t, rec); msg != "itemId and content are required" {
				t.Errorf("unexpected error message: %q", msg)
			}
		})
	}
}

func TestCreateCommentRequiresPrincipal(t *testing.T) {
	h := &CommentHandler{Service: &services.CommentService{}}

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPost, "/comments", `{"itemId":7,"content":"hi"}`, "")
	h.CreateComment(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestUpdateCommentValidation(t *testing.T) {
	h := &CommentHandler{Service: &services.CommentService{}}

	t.Run("invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authenticatedRequest(http.MethodPut, "/comments/abc?:id=abc", `{"content":"hi"}`, "user_1")
		h.UpdateComment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("blank content", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authenticatedRequest(http.MethodPut, "/comments/3?:id=3", `{"content":"  "}`, "user_1")
		h.UpdateComment(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}
		if msg := decodeError(t, rec); msg != "Content is required" {
			t.Errorf("unexpected error message: %q", msg)
		}
	})
}
