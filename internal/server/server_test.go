package server_test

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/JaimeStill/offer-board/internal/config"
	"github.com/JaimeStill/offer-board/internal/server"
	"github.com/JaimeStill/offer-board/pkg/lifecycle"
)

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", ReadTimeout: "5s", WriteTimeout: "5s", IdleTimeout: "5s"}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.New(cfg, handler, time.Second, logger)
	lc := lifecycle.New()

	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "OK" {
		t.Errorf("body = %q, want OK", body)
	}

	if err := lc.Shutdown(2 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := http.Get("http://" + srv.Addr() + "/"); err == nil {
		t.Error("server should not accept requests after shutdown")
	}
}

func TestServer_StartBindFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := lifecycle.New()

	first := server.New(&config.ServerConfig{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler(), time.Second, logger)
	if err := first.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer lc.Shutdown(2 * time.Second)

	cfg := &config.ServerConfig{Host: "127.0.0.1"}
	_, port, _ := splitHostPort(first.Addr())
	cfg.Port = port

	second := server.New(cfg, http.NotFoundHandler(), time.Second, logger)
	if err := second.Start(lifecycle.New()); err == nil {
		t.Error("Start() on a bound port should fail")
	}
}

func splitHostPort(addr string) (string, int, error) {
	host, p, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(p)
	return host, port, err
}
