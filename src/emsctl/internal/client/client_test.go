package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// =============================================================================
// APIError Tests
// =============================================================================

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 500, Message: "Internal server error."}
	s := err.Error()
	if !strings.Contains(s, "500") {
		t.Errorf("expected status code in error, got %q", s)
	}
	if !strings.Contains(s, "Internal server error.") {
		t.Errorf("expected message in error, got %q", s)
	}
}

func TestAPIError_Hint401(t *testing.T) {
	err := &APIError{StatusCode: 401, Message: "Authentication required."}
	if !strings.Contains(err.Error(), "emsctl login") {
		t.Error("expected login hint for 401")
	}
}

func TestAPIError_Hint404(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Employee not found."}
	if !strings.Contains(err.Error(), "Verify the ID") {
		t.Error("expected lookup hint for 404")
	}
}

func TestAPIError_Hint409(t *testing.T) {
	err := &APIError{StatusCode: 409, Message: "User already exists."}
	if !strings.Contains(err.Error(), "already exists") {
		t.Error("expected conflict hint for 409")
	}
}

func TestAPIError_NoHint500(t *testing.T) {
	err := &APIError{StatusCode: 500, Message: "Internal server error."}
	if strings.Contains(err.Error(), "Hint:") {
		t.Error("unexpected hint for 500")
	}
}

// =============================================================================
// Client Tests
// =============================================================================

func TestNew(t *testing.T) {
	c := New("http://localhost:8000")
	if c.BaseURL != "http://localhost:8000" {
		t.Errorf("expected base URL http://localhost:8000, got %s", c.BaseURL)
	}
	if c.HTTPClient == nil {
		t.Error("expected non-nil HTTP client")
	}
	if c.Token != "" {
		t.Error("expected empty token on new client")
	}
}

func TestClient_Get_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "All employee data fetched successfully.",
			"data":    []map[string]string{{"id": "emp-1", "name": "Worker"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	var result []map[string]string
	if err := c.Get(context.Background(), "/api/getAllEmployees", &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0]["id"] != "emp-1" {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestClient_EnvelopeFailure_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  0,
			"message": "Employee not found.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/api/getAllEmployees", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Employee not found." {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}

func TestClient_EnvelopeFailure_StatusZeroWith200(t *testing.T) {
	// A status 0 envelope is a failure even when the HTTP status is 200
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  0,
			"message": "Password does not match.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Post(context.Background(), "/api/login", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Password does not match." {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}

func TestClient_ErrorResponse_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("something went wrong"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/api/getAllUsers", nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("expected 500, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "something went wrong") {
		t.Errorf("expected plain text message, got %s", apiErr.Message)
	}
}

func TestClient_AuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer test-token" {
			t.Errorf("expected Authorization: Bearer test-token, got %s", auth)
		}
		w.Write([]byte(`{"status":1,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Token = "test-token"
	c.Get(context.Background(), "/api/getAllUsers", nil)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("expected no Authorization header, got %s", auth)
		}
		w.Write([]byte(`{"status":1,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Get(context.Background(), "/api/register", nil)
}

func TestClient_GetRaw_BypassesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": "2026-01-01T00:00:00Z",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	var health HealthResponse
	if err := c.GetRaw(context.Background(), "/health", &health); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected healthy, got %s", health.Status)
	}
}

// =============================================================================
// Typed Operation Tests
// =============================================================================

func TestLogin_ReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("expected path /api/login, got %s", r.URL.Path)
		}
		var req LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "alice@example.com" {
			t.Errorf("unexpected email: %s", req.Email)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "User Logged in Successfully.",
			"data": map[string]string{
				"id":          "user-1",
				"name":        "Alice",
				"email":       "alice@example.com",
				"role":        "user",
				"accessToken": "jwt-token",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Login(context.Background(), "alice@example.com", "Passw0rd@")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccessToken != "jwt-token" {
		t.Errorf("expected jwt-token, got %s", result.AccessToken)
	}
	if result.Role != "user" {
		t.Errorf("expected role user, got %s", result.Role)
	}
}

func TestRegister_ValidatesBeforeSending(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Register(context.Background(), "Alice", "bad-email", "Passw0rd@"); err == nil {
		t.Fatal("expected validation error")
	}
	if requested {
		t.Error("invalid input must not reach the server")
	}
}

func TestCreateEmployee_ValidatesBeforeSending(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	c := New(srv.URL)
	req := CreateEmployeeRequest{Name: "Worker", Email: "worker@example.com", Position: "Engineer", Salary: -5}
	if _, err := c.CreateEmployee(context.Background(), "owner-1", req); err == nil {
		t.Fatal("expected validation error for negative salary")
	}
	if requested {
		t.Error("invalid input must not reach the server")
	}
}

func TestUpdateEmployee_SkipsNilFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if _, found := body["name"]; found {
			t.Error("nil name must be omitted from the payload")
		}
		if body["salary"] != float64(80000) {
			t.Errorf("expected salary 80000, got %v", body["salary"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "Employee data updated successfully.",
			"data":    map[string]interface{}{"id": "emp-1", "salary": 80000},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	salary := int64(80000)
	emp, err := c.UpdateEmployee(context.Background(), "emp-1", UpdateEmployeeRequest{Salary: &salary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.Salary != 80000 {
		t.Errorf("expected salary 80000, got %d", emp.Salary)
	}
}
