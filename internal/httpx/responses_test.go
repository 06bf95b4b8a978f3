package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONSuccess_EmptySliceStaysArray(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, []int{})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}
	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", got)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))
	details := []ErrorDetail{
		{Field: "pairs", Message: "pairs is required"},
	}

	JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error != "Invalid input" {
		t.Errorf("Expected error message, got %q", response.Error)
	}
	if response.RequestID != "req-1" {
		t.Errorf("Expected request id req-1, got %q", response.RequestID)
	}
	if len(response.Details) != 1 {
		t.Errorf("Expected 1 error detail, got %d", len(response.Details))
	}
}
