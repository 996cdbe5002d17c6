package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/offer-board/internal/config"
	"github.com/JaimeStill/offer-board/pkg/database"
)

func validDatabase() database.Config {
	return database.Config{Name: "offer_board", User: "offer_board"}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "30s", WriteTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090, WriteTimeout: "60s", MaxHeaderSize: "64KB"})

	if base.Host != "localhost" || base.ReadTimeout != "30s" {
		t.Errorf("Merge() changed unset fields: %+v", *base)
	}
	if base.Port != 9090 || base.WriteTimeout != "60s" || base.MaxHeaderSize != "64KB" {
		t.Errorf("Merge() did not apply overlay: %+v", *base)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := &config.ServerConfig{Host: "localhost", Port: 3000}
	if got := cfg.Addr(); got != "localhost:3000" {
		t.Errorf("Addr() = %q, want localhost:3000", got)
	}
}

func TestServerConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration() != 15*time.Second {
		t.Errorf("ReadTimeoutDuration() = %v, want 15s", cfg.ReadTimeoutDuration())
	}
	if cfg.WriteTimeoutDuration() != 30*time.Second {
		t.Errorf("WriteTimeoutDuration() = %v, want 30s", cfg.WriteTimeoutDuration())
	}
	if cfg.IdleTimeoutDuration() != 120*time.Second {
		t.Errorf("IdleTimeoutDuration() = %v, want 120s", cfg.IdleTimeoutDuration())
	}
	if cfg.MaxHeaderBytes() != 1<<20 {
		t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), 1<<20)
	}
}

func TestServerConfig_MaxHeaderSize(t *testing.T) {
	tests := []struct {
		size string
		want int
	}{
		{size: "64KB", want: 64 << 10},
		{size: "2mb", want: 2 << 20},
		{size: "4096", want: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			cfg := &config.ServerConfig{MaxHeaderSize: tt.size}
			if err := cfg.Finalize(); err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if cfg.MaxHeaderBytes() != tt.want {
				t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), tt.want)
			}
		})
	}
}

func TestServerConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{name: "port negative", cfg: config.ServerConfig{Port: -1}},
		{name: "port too high", cfg: config.ServerConfig{Port: 65536}},
		{name: "read timeout", cfg: config.ServerConfig{ReadTimeout: "soon"}},
		{name: "write timeout", cfg: config.ServerConfig{WriteTimeout: "later"}},
		{name: "idle timeout", cfg: config.ServerConfig{IdleTimeout: "idle"}},
		{name: "header size", cfg: config.ServerConfig{MaxHeaderSize: "big"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() should fail")
			}
		})
	}
}

func TestServerConfig_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerHost, "127.0.0.1")
	t.Setenv(config.EnvServerPort, "9000")
	t.Setenv(config.EnvServerMaxHeaderSize, "8KB")

	cfg := &config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", cfg.Addr())
	}
	if cfg.MaxHeaderBytes() != 8<<10 {
		t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), 8<<10)
	}
}
