package server_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/lifecycle"
	"github.com/autoxela/navigator/internal/server"
)

func TestStart_ServesAndShutsDown(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 1}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Port = 0

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("test response"))
	})

	sys := server.New(cfg, handler, slog.New(slog.DiscardHandler))
	lc := lifecycle.New()

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + sys.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "test response" {
		t.Errorf("body = %q, want %q", string(body), "test response")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := client.Get("http://" + sys.Addr() + "/"); err == nil {
		t.Error("server should refuse connections after shutdown")
	}
}
