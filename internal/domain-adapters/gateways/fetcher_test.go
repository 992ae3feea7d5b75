package gateways

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetcher_ContractURL(t *testing.T) {
	f := NewFetcher()

	tests := []struct {
		name  string
		owner string
		repo  string
		ref   string
		path  string
		want  string
	}{
		{
			name:  "main branch",
			owner: "HanzoRazer",
			repo:  "code-analysis-tool",
			ref:   "main",
			path:  "schemas/run_result.schema.json",
			want:  "https://raw.githubusercontent.com/HanzoRazer/code-analysis-tool/main/schemas/run_result.schema.json",
		},
		{
			name:  "pinned tag",
			owner: "HanzoRazer",
			repo:  "code-analysis-tool",
			ref:   "v1.0.0",
			path:  "schemas/rule_registry.json",
			want:  "https://raw.githubusercontent.com/HanzoRazer/code-analysis-tool/v1.0.0/schemas/rule_registry.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.ContractURL(tt.owner, tt.repo, tt.ref, tt.path)
			if got != tt.want {
				t.Errorf("ContractURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"schema_version":"run_result_v1"}`))
		case "/moved":
			http.Redirect(w, r, "/ok", http.StatusFound)
		case "/missing":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	f := NewFetcher()

	t.Run("success returns body", func(t *testing.T) {
		body, err := f.Fetch(context.Background(), server.URL+"/ok")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if string(body) != `{"schema_version":"run_result_v1"}` {
			t.Errorf("Fetch() body = %q", body)
		}
	})

	t.Run("redirects are followed", func(t *testing.T) {
		body, err := f.Fetch(context.Background(), server.URL+"/moved")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if !strings.Contains(string(body), "run_result_v1") {
			t.Errorf("Fetch() after redirect body = %q", body)
		}
	})

	t.Run("404 is an error", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), server.URL+"/missing")
		if err == nil {
			t.Fatal("Fetch() should fail on HTTP 404")
		}
		if !strings.Contains(err.Error(), "404") {
			t.Errorf("Fetch() error = %v, want HTTP 404 mentioned", err)
		}
	})

	t.Run("500 is an error", func(t *testing.T) {
		if _, err := f.Fetch(context.Background(), server.URL+"/boom"); err == nil {
			t.Fatal("Fetch() should fail on HTTP 500")
		}
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		if _, err := f.Fetch(context.Background(), "http://invalid-host-12345.example.local/file"); err == nil {
			t.Fatal("Fetch() should fail for unreachable host")
		}
	})
}
