package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        50051,
			MetricsPort: 9090,
		},
		Kafka: KafkaConfig{
			Brokers: "localhost:9092",
			GroupID: "federator",
		},
		Tarantool: TarantoolConfig{
			Address: "localhost:3301",
		},
		Transfer: TransferConfig{
			ChunkSize:    1024 * 1024,
			PollInterval: time.Second,
			IdleTimeout:  30 * time.Second,
		},
		Auth: AuthConfig{
			Enabled:   true,
			JWTSecret: "test-secret",
			JWTIssuer: "federator",
		},
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestConfig_Validate_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{
			name: "zero port",
			port: 0,
		},
		{
			name: "negative port",
			port: -1,
		},
		{
			name: "port too large",
			port: 65536,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error for invalid port")
			}
		})
	}
}

func TestConfig_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "missing kafka brokers",
			mutate: func(c *Config) { c.Kafka.Brokers = "" },
		},
		{
			name:   "missing tarantool address",
			mutate: func(c *Config) { c.Tarantool.Address = "" },
		},
		{
			name:   "zero chunk size",
			mutate: func(c *Config) { c.Transfer.ChunkSize = 0 },
		},
		{
			name:   "negative chunk size",
			mutate: func(c *Config) { c.Transfer.ChunkSize = -1 },
		},
		{
			name:   "zero poll interval",
			mutate: func(c *Config) { c.Transfer.PollInterval = 0 },
		},
		{
			name:   "zero idle timeout",
			mutate: func(c *Config) { c.Transfer.IdleTimeout = 0 },
		},
		{
			name: "vault enabled without address",
			mutate: func(c *Config) {
				c.Vault.Enabled = true
				c.Vault.Address = ""
			},
		},
		{
			name: "auth enabled without secret",
			mutate: func(c *Config) {
				c.Auth.JWTSecret = ""
				c.Auth.JWTVaultPath = ""
			},
		},
		{
			name: "empty client id",
			mutate: func(c *Config) {
				c.Clients = []ClientConfig{{ID: ""}}
			},
		},
		{
			name: "duplicate client id",
			mutate: func(c *Config) {
				c.Clients = []ClientConfig{{ID: "a"}, {ID: "a"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_Validate_AuthSecretFromVaultPath(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	cfg.Auth.JWTVaultPath = "federator/jwt"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected vault path to satisfy auth validation, got %v", err)
	}
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := `
server:
  port: 50052
kafka:
  brokers: broker:9092
tarantool:
  address: tnt:3301
transfer:
  chunk_size: 2048
  poll_interval: 2s
  idle_timeout: 10s
auth:
  enabled: true
  jwt_secret: file-secret
clients:
  - id: client-a
    grants:
      knowledge:
        nationality: [GBR, FRA]
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 50052 {
		t.Errorf("expected port 50052, got %d", cfg.Server.Port)
	}
	if cfg.Kafka.Brokers != "broker:9092" {
		t.Errorf("expected brokers broker:9092, got %s", cfg.Kafka.Brokers)
	}
	if cfg.Transfer.ChunkSize != 2048 {
		t.Errorf("expected chunk size 2048, got %d", cfg.Transfer.ChunkSize)
	}
	if cfg.Transfer.PollInterval != 2*time.Second {
		t.Errorf("expected poll interval 2s, got %v", cfg.Transfer.PollInterval)
	}

	attrs := cfg.GrantAttributes()
	grants, ok := attrs["client-a"]["knowledge"]
	if !ok {
		t.Fatal("expected grants for client-a on knowledge")
	}
	if len(grants["nationality"]) != 2 {
		t.Errorf("expected 2 nationality values, got %v", grants["nationality"])
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	content := `
server:
  port: 50052
auth:
  jwt_secret: file-secret
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", "60000")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 60000 {
		t.Errorf("expected env override to 60000, got %d", cfg.Server.Port)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	content := `
surprise: true
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected strict parsing to reject unknown fields")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestVaultConfig_GetVaultToken(t *testing.T) {
	cfg := &VaultConfig{Token: "direct-token"}
	token, err := cfg.GetVaultToken()
	if err != nil || token != "direct-token" {
		t.Errorf("expected direct token, got %q err=%v", token, err)
	}

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("file-token"), 0o600); err != nil {
		t.Fatalf("failed to write token file: %v", err)
	}
	cfg = &VaultConfig{TokenPath: path}
	token, err = cfg.GetVaultToken()
	if err != nil || token != "file-token" {
		t.Errorf("expected file token, got %q err=%v", token, err)
	}

	cfg = &VaultConfig{}
	if _, err := cfg.GetVaultToken(); err == nil {
		t.Error("expected error when no token configured")
	}
}
