package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"xdimension/internal/models"
	"xdimension/internal/services"
)

func authenticatedRequest(method, target, body, principal string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if principal != "" {
		req = req.WithContext(context.WithValue(req.Context(), "user_id", principal))
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	return body["error"]
}

func TestCreateUserItemValidation(t *testing.T) {
	h := &GameItemHandler{Service: &services.GameItemService{}}

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{"category":"Power Up","rarity":"Rare"}`, "Item name is required"},
		{"blank name", `{"name":"   ","category":"Power Up","rarity":"Rare"}`, "Item name is required"},
		{"missing category", `{"name":"Fire Flower","rarity":"Rare"}`, "Category is required"},
		{"missing rarity", `{"name":"Fire Flower","category":"Power Up"}`, "Rarity is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := authenticatedRequest(http.MethodPost, "/user-items", tt.body, "user_1")
			h.CreateUserItem(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
			}
			if msg := decodeError(t, rec); msg != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestCreateUserItemRequiresPrincipal(t *testing.T) {
	h := &GameItemHandler{Service: &services.GameItemService{}}

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPost, "/user-items", `{"name":"Fire Flower"}`, "")
	h.CreateUserItem(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestCreateUserItemRejectsBadJSON(t *testing.T) {
	h := &GameItemHandler{Service: &services.GameItemService{}}

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPost, "/user-items", `{not json`, "user_1")
	h.CreateUserItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGetUserItemByIDInvalidID(t *testing.T) {
	h := &GameItemHandler{Service: &services.GameItemService{}}

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodGet, "/user-items/abc?:id=abc", "", "user_1")
	h.GetUserItemByID(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestDeleteUserItemInvalidID(t *testing.T) {
	h := &GameItemHandler{Service: &services.GameItemService{}}

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodDelete, "/user-items/abc?:id=abc", "", "user_1")
	h.DeleteUserItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestBuildGameItemDefaults(t *testing.T) {
	item := buildGameItem(gameItemRequest{
		Name:     "  Fire Flower  ",
		Category: "Power Up",
		Rarity:   "Rare",
	}, "user_1")

	if item.Name != "Fire Flower" {
		t.Errorf("expected trimmed name, got %q", item.Name)
	}
	if item.Type != "Generic" {
		t.Errorf("expected default type Generic, got %q", item.Type)
	}
	if item.Power != "None" || item.Effect != "None" {
		t.Errorf("expected default power/effect None, got %q/%q", item.Power, item.Effect)
	}
	if item.Description != "" {
		t.Errorf("expected empty description, got %q", item.Description)
	}
	if item.ImageURL != models.PlaceholderImageURL {
		t.Errorf("expected placeholder image url, got %q", item.ImageURL)
	}
	if item.Source != models.SourceUser || !item.IsUserCreated {
		t.Errorf("expected user-sourced item, got source=%q isUserCreated=%v", item.Source, item.IsUserCreated)
	}
	if item.UploaderID == nil || *item.UploaderID != "user_1" {
		t.Errorf("expected uploader user_1, got %v", item.UploaderID)
	}
	if item.UserID != "user_1" {
		t.Errorf("expected creator user_1, got %q", item.UserID)
	}
	if item.FileName != nil {
		t.Errorf("expected no file name, got %v", *item.FileName)
	}
}

func TestBuildGameItemKeepsExplicitValues(t *testing.T) {
	item := buildGameItem(gameItemRequest{
		Name:        "Star",
		Category:    "Power Up",
		Type:        "Consumable",
		Power:       "Invincibility",
		Effect:      "Temporary",
		Rarity:      "Legendary",
		Description: " shiny ",
		ImageURL:    " https://cdn.example.com/star.png ",
		FileName:    "star.png",
	}, "user_1")

	if item.Type != "Consumable" || item.Power != "Invincibility" || item.Effect != "Temporary" {
		t.Errorf("explicit values overridden: %q/%q/%q", item.Type, item.Power, item.Effect)
	}
	if item.Description != "shiny" {
		t.Errorf("expected trimmed description, got %q", item.Description)
	}
	if item.ImageURL != "https://cdn.example.com/star.png" {
		t.Errorf("expected trimmed image url, got %q", item.ImageURL)
	}
	if item.FileName == nil || *item.FileName != "star.png" {
		t.Errorf("expected file name star.png, got %v", item.FileName)
	}
}
