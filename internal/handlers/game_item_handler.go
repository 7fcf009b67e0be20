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

type GameItemHandler struct {
	Service *services.GameItemService
}

type gameItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Power       string `json:"power"`
	Effect      string `json:"effect"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	FileName    string `json:"fileName"`
}

// validate reports the first missing required field, empty when all present.
func (req gameItemRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "Item name is required"
	}
	if strings.TrimSpace(req.Category) == "" {
		return "Category is required"
	}
	if strings.TrimSpace(req.Rarity) == "" {
		return "Rarity is required"
	}
	return ""
}

// buildGameItem applies the server-side defaults and trims free-text fields
// before the row is handed to the store.
func buildGameItem(req gameItemRequest, principal string) models.GameItem {
	item := models.GameItem{
		Name:          strings.TrimSpace(req.Name),
		Category:      req.Category,
		Type:          req.Type,
		Power:         req.Power,
		Effect:        req.Effect,
		Rarity:        req.Rarity,
		Description:   strings.TrimSpace(req.Description),
		ImageURL:      strings.TrimSpace(req.ImageURL),
		UserID:        principal,
		IsUserCreated: true,
		UploaderID:    &principal,
		Source:        models.SourceUser,
	}
	if item.Type == "" {
		item.Type = "Generic"
	}
	if item.Power == "" {
		item.Power = "None"
	}
	if item.Effect == "" {
		item.Effect = "None"
	}
	if item.ImageURL == "" {
		item.ImageURL = models.PlaceholderImageURL
	}
	if name := strings.TrimSpace(req.FileName); name != "" {
		item.FileName = &name
	}
	return item
}

// ListUserItems returns every item created by the calling user.
func (h *GameItemHandler) ListUserItems(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.Service.GetItemsByUploader(r.Context(), principal)
	if err != nil {
		log.Printf("ListUserItems error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch user items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GameItemHandler) GetUserItemByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.Service.GetItemForUploader(r.Context(), itemID, principal)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeJSONError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("GetUserItemByID error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *GameItemHandler) CreateUserItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req gameItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := h.Service.CreateItem(r.Context(), buildGameItem(req, principal))
	if err != nil {
		if isDuplicateEntryError(err) {
			writeJSONError(w, http.StatusBadRequest, "An item with this name already exists")
			return
		}
		log.Printf("CreateUserItem error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *GameItemHandler) UpdateUserItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req gameItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSONError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), itemID, principal, buildGameItem(req, principal))
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeJSONError(w, http.StatusNotFound, "Item not found or access denied")
			return
		}
		if isDuplicateEntryError(err) {
			writeJSONError(w, http.StatusBadRequest, "An item with this name already exists")
			return
		}
		log.Printf("UpdateUserItem error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *GameItemHandler) DeleteUserItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.Service.DeleteItem(r.Context(), itemID, principal)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeJSONError(w, http.StatusNotFound, "Item not found or access denied")
			return
		}
		log.Printf("DeleteUserItem error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Item deleted successfully",
		"deletedItem": item,
	})
}
