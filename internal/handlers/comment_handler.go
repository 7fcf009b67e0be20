package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"xdimension/internal/models"
	"xdimension/internal/services"
)

type CommentHandler struct {
	Service *services.CommentService
}

// ListComments returns the comments attached to an item, newest first.
// No authentication is required for reading.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	itemIDStr := getParam(r, "itemId")
	if itemIDStr == "" {
		writeJSONError(w, http.StatusBadRequest, "itemId is required")
		return
	}
	itemID, err := strconv.Atoi(itemIDStr)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	comments, err := h.Service.GetCommentsByItemID(r.Context(), itemID)
	if err != nil {
		log.Printf("ListComments error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		ItemID  int    `json:"itemId"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content := strings.TrimSpace(req.Content)
	if req.ItemID == 0 || content == "" {
		writeJSONError(w, http.StatusBadRequest, "itemId and content are required")
		return
	}

	comment, err := h.Service.CreateComment(r.Context(), models.Comment{
		ItemID:  req.ItemID,
		UserID:  principal,
		Content: content,
	})
	if err != nil {
		log.Printf("CreateComment error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		writeJSONError(w, http.StatusBadRequest, "Content is required")
		return
	}

	comment, err := h.Service.UpdateComment(r.Context(), commentID, principal, content)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			writeJSONError(w, http.StatusNotFound, "Comment not found or access denied")
			return
		}
		log.Printf("UpdateComment error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update comment")
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	comment, err := h.Service.DeleteComment(r.Context(), commentID, principal)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			writeJSONError(w, http.StatusNotFound, "Comment not found or access denied")
			return
		}
		log.Printf("DeleteComment error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Comment deleted successfully",
		"deletedComment": comment,
	})
}
