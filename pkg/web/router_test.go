package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoxela/navigator/pkg/web"
)

func TestRouterHandleFunc(t *testing.T) {
	r := web.NewRouter()

	called := false
	r.HandleFunc("GET /test", func(w http.ResponseWriter, req *http.Request) {
		called = true
		w.Write([]byte("hello"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if !called {
		t.Error("handler was not called")
	}

	body, _ := io.ReadAll(w.Result().Body)
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", string(body), "hello")
	}
}

func TestRouterWithoutFallback(t *testing.T) {
	r := web.NewRouter()
	r.Handle("GET /exists", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exists"))
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouterSetFallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exists"))
	})

	fallbackCalled := false
	r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
		fallbackCalled = true
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("custom 404"))
	})

	tests := []struct {
		path     string
		fallback bool
		body     string
	}{
		{"/nonexistent", true, "custom 404"},
		{"/exists", false, "exists"},
	}

	for _, tt := range tests {
		fallbackCalled = false
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		if fallbackCalled != tt.fallback {
			t.Errorf("%s: fallback called = %v, want %v", tt.path, fallbackCalled, tt.fallback)
		}
		body, _ := io.ReadAll(w.Result().Body)
		if string(body) != tt.body {
			t.Errorf("%s: body = %q, want %q", tt.path, string(body), tt.body)
		}
	}
}

func TestRouterRegister(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	tests := []struct {
		name     string
		patterns []string
		wantErr  bool
	}{
		{"valid", []string{"GET /login", "GET /{vehicleId}"}, false},
		{"bad wildcard", []string{"GET /vehicle/{vehicle-id}"}, true},
		{"conflict", []string{"GET /{a}/list", "GET /works/{b}"}, true},
		{"duplicate", []string{"GET /login", "GET /login"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := web.NewRouter()
			var err error
			for _, p := range tt.patterns {
				if err = r.Register(p, ok); err != nil {
					break
				}
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
