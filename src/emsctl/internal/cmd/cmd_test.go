package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitswalk/ems/src/emsctl/internal/client"
)

// =============================================================================
// Test Helpers
// =============================================================================

// setupTestClient creates a mock HTTP server and injects a client pointing to it.
// Returns the server (for deferred Close).
func setupTestClient(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(mux)
	apiClient = client.New(srv.URL)
	return srv
}

// resetGlobals resets global state between tests
func resetGlobals() {
	apiClient = nil
	outputFormat = "table"
}

// =============================================================================
// Command Registration Tests
// =============================================================================

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"version", "health", "register", "login", "logout", "whoami",
		"employee", "admin", "user",
	}

	commands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		commands[cmd.Name()] = true
	}

	for _, name := range expected {
		if !commands[name] {
			t.Errorf("expected subcommand %q not found on root", name)
		}
	}
}

func TestEmployeeCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "create", "update", "delete"}
	commands := make(map[string]bool)
	for _, cmd := range employeeCmd.Commands() {
		commands[cmd.Name()] = true
	}
	for _, name := range expected {
		if !commands[name] {
			t.Errorf("expected employee subcommand %q not found", name)
		}
	}
}

func TestAdminCommand_HasSubcommands(t *testing.T) {
	expected := []string{"create", "list", "delete"}
	commands := make(map[string]bool)
	for _, cmd := range adminCmd.Commands() {
		commands[cmd.Name()] = true
	}
	for _, name := range expected {
		if !commands[name] {
			t.Errorf("expected admin subcommand %q not found", name)
		}
	}
}

func TestUserCommand_HasSubcommands(t *testing.T) {
	commands := make(map[string]bool)
	for _, cmd := range userCmd.Commands() {
		commands[cmd.Name()] = true
	}
	if !commands["get"] {
		t.Error("expected user subcommand 'get' not found")
	}
}

func TestEmployeeCommand_Alias(t *testing.T) {
	if len(employeeCmd.Aliases) == 0 || employeeCmd.Aliases[0] != "emp" {
		t.Error("expected employee alias 'emp'")
	}
}

// =============================================================================
// Arg Validation Tests
// =============================================================================

func TestEmployeeUpdateCmd_RequiresArg(t *testing.T) {
	err := employeeUpdateCmd.Args(employeeUpdateCmd, []string{})
	if err == nil {
		t.Error("expected error for missing arg on employee update")
	}
}

func TestEmployeeDeleteCmd_AcceptsOneArg(t *testing.T) {
	err := employeeDeleteCmd.Args(employeeDeleteCmd, []string{"emp-1"})
	if err != nil {
		t.Errorf("unexpected error for valid arg: %v", err)
	}
}

func TestEmployeeDeleteCmd_RejectsTwoArgs(t *testing.T) {
	err := employeeDeleteCmd.Args(employeeDeleteCmd, []string{"a", "b"})
	if err == nil {
		t.Error("expected error for two args on employee delete")
	}
}

func TestAdminDeleteCmd_RequiresArg(t *testing.T) {
	err := adminDeleteCmd.Args(adminDeleteCmd, []string{})
	if err == nil {
		t.Error("expected error for missing arg on admin delete")
	}
}

func TestUserGetCmd_RequiresArg(t *testing.T) {
	err := userGetCmd.Args(userGetCmd, []string{})
	if err == nil {
		t.Error("expected error for missing arg on user get")
	}
}

// =============================================================================
// Flag Tests
// =============================================================================

func TestEmployeeCreateCmd_HasFlags(t *testing.T) {
	flags := employeeCreateCmd.Flags()
	for _, name := range []string{"name", "email", "position", "salary", "owner"} {
		if flags.Lookup(name) == nil {
			t.Errorf("expected flag --%s on employee create", name)
		}
	}
}

func TestEmployeeUpdateCmd_HasFlags(t *testing.T) {
	flags := employeeUpdateCmd.Flags()
	for _, name := range []string{"name", "email", "position", "salary"} {
		if flags.Lookup(name) == nil {
			t.Errorf("expected flag --%s on employee update", name)
		}
	}
}

func TestAdminCreateCmd_RoleDefault(t *testing.T) {
	flag := adminCreateCmd.Flags().Lookup("role")
	if flag == nil {
		t.Fatal("expected --role flag on admin create")
	}
	if flag.DefValue != "admin" {
		t.Errorf("expected default role 'admin', got %q", flag.DefValue)
	}
}

func TestRootCmd_OutputFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("output")
	if flag == nil {
		t.Fatal("expected --output persistent flag on root")
	}
	if flag.DefValue != "table" {
		t.Errorf("expected default output format 'table', got %q", flag.DefValue)
	}
}

func TestRootCmd_ServerFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("server")
	if flag == nil {
		t.Fatal("expected --server persistent flag on root")
	}
	if flag.Shorthand != "s" {
		t.Errorf("expected shorthand 's' for --server, got %q", flag.Shorthand)
	}
}

// =============================================================================
// Command Execution Tests (with mock server)
// =============================================================================

func TestEmployeeList_MockServer(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/getAllEmployees", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "All employee data fetched successfully.",
			"data": []map[string]interface{}{
				{"id": "e1", "name": "Worker One", "email": "w1@example.com", "position": "Engineer", "salary": 65000},
				{"id": "e2", "name": "Worker Two", "email": "w2@example.com", "position": "Manager", "salary": 80000},
			},
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	outputFormat = "json"
	err := runEmployeeList(employeeListCmd, []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmployeeList_EmptyResult(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/getAllEmployees", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "All employee data fetched successfully.",
			"data":    []interface{}{},
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	outputFormat = "table"
	// Should print "No employee records found." without error
	err := runEmployeeList(employeeListCmd, []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmployeeDelete_MockServer(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/deleteEmployee/e1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "Employee data deleted successfully.",
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	outputFormat = "json"
	err := runEmployeeDelete(employeeDeleteCmd, []string{"e1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdminList_MockServer(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/getAllUsers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "All user data fetched successfully.",
			"data": []map[string]string{
				{"id": "u1", "name": "Alice", "email": "alice@example.com", "role": "user"},
			},
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	outputFormat = "json"
	err := runAdminList(adminListCmd, []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserGet_MockServer(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/getUser/u1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  1,
			"message": "user fetched successfully.",
			"data":    map[string]string{"id": "u1", "name": "Alice", "email": "alice@example.com", "role": "user"},
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	outputFormat = "json"
	err := runUserGet(userGetCmd, []string{"u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserGet_ServerError(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/getUser/bad-id", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  0,
			"message": "User not found.",
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	err := runUserGet(userGetCmd, []string{"bad-id"})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestHealthCommand_MockServer(t *testing.T) {
	defer resetGlobals()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": "2026-01-01T00:00:00Z",
		})
	})
	srv := setupTestClient(t, mux)
	defer srv.Close()

	outputFormat = "json"
	err := runHealth(healthCmd, []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// =============================================================================
// Output Format Tests
// =============================================================================

func TestGetOutputFormat(t *testing.T) {
	defer resetGlobals()

	outputFormat = "json"
	if f := getOutputFormat(); f != "json" {
		t.Errorf("expected json, got %s", f)
	}

	outputFormat = "table"
	if f := getOutputFormat(); f != "table" {
		t.Errorf("expected table, got %s", f)
	}
}

// =============================================================================
// Version Info Tests
// =============================================================================

func TestVersionInfo_Defaults(t *testing.T) {
	if Version != "dev" {
		t.Errorf("expected default Version 'dev', got %q", Version)
	}
	if BuildDate != "unknown" {
		t.Errorf("expected default BuildDate 'unknown', got %q", BuildDate)
	}
}
