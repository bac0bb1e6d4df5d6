package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Tarantool    TarantoolConfig    `yaml:"tarantool"`
	ObjectStoreA ObjectStoreAConfig `yaml:"object_store_a"`
	ObjectStoreB ObjectStoreBConfig `yaml:"object_store_b"`
	Local        LocalStoreConfig   `yaml:"local"`
	Vault        VaultConfig        `yaml:"vault"`
	Logger       LoggerConfig       `yaml:"logger"`
	Auth         AuthConfig         `yaml:"auth"`
	Transfer     TransferConfig     `yaml:"transfer"`
	Clients      []ClientConfig     `yaml:"clients"`
}

// ServerConfig represents gRPC server configuration
type ServerConfig struct {
	Port        int `yaml:"port" envconfig:"SERVER_PORT"`
	MetricsPort int `yaml:"metrics_port" envconfig:"SERVER_METRICS_PORT"`
}

// KafkaConfig represents the record source configuration
type KafkaConfig struct {
	Brokers string `yaml:"brokers" envconfig:"KAFKA_BROKERS"`
	GroupID string `yaml:"group_id" envconfig:"KAFKA_GROUP_ID"`
}

// TarantoolConfig represents the offset store connection configuration
type TarantoolConfig struct {
	Address  string        `yaml:"address" envconfig:"TARANTOOL_ADDRESS"`
	User     string        `yaml:"user" envconfig:"TARANTOOL_USER"`
	Password string        `yaml:"password" envconfig:"TARANTOOL_PASSWORD"`
	Timeout  time.Duration `yaml:"timeout" envconfig:"TARANTOOL_TIMEOUT"`

	// Vault path for credentials (optional)
	VaultPath string `yaml:"vault_path" envconfig:"TARANTOOL_VAULT_PATH"`
}

// ObjectStoreAConfig represents the MinIO-backed object store
type ObjectStoreAConfig struct {
	Enabled         bool   `yaml:"enabled" envconfig:"OBJECT_STORE_A_ENABLED"`
	Endpoint        string `yaml:"endpoint" envconfig:"OBJECT_STORE_A_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" envconfig:"OBJECT_STORE_A_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"OBJECT_STORE_A_SECRET_ACCESS_KEY"`
	UseSSL          bool   `yaml:"use_ssl" envconfig:"OBJECT_STORE_A_USE_SSL"`

	// Vault path for credentials (optional)
	VaultPath string `yaml:"vault_path" envconfig:"OBJECT_STORE_A_VAULT_PATH"`
}

// ObjectStoreBConfig represents the S3-backed object store
type ObjectStoreBConfig struct {
	Enabled         bool   `yaml:"enabled" envconfig:"OBJECT_STORE_B_ENABLED"`
	Region          string `yaml:"region" envconfig:"OBJECT_STORE_B_REGION"`
	AccessKeyID     string `yaml:"access_key_id" envconfig:"OBJECT_STORE_B_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"OBJECT_STORE_B_SECRET_ACCESS_KEY"`
	Endpoint        string `yaml:"endpoint" envconfig:"OBJECT_STORE_B_ENDPOINT"`
	UsePathStyle    bool   `yaml:"use_path_style" envconfig:"OBJECT_STORE_B_USE_PATH_STYLE"`

	// Vault path for credentials (optional)
	VaultPath string `yaml:"vault_path" envconfig:"OBJECT_STORE_B_VAULT_PATH"`
}

// LocalStoreConfig represents the local filesystem store
type LocalStoreConfig struct {
	BaseDir string `yaml:"base_dir" envconfig:"LOCAL_BASE_DIR"`
}

// VaultConfig represents HashiCorp Vault configuration
type VaultConfig struct {
	Enabled   bool   `yaml:"enabled" envconfig:"VAULT_ENABLED"`
	Address   string `yaml:"address" envconfig:"VAULT_ADDR"`
	Token     string `yaml:"token" envconfig:"VAULT_TOKEN"`
	TokenPath string `yaml:"token_path" envconfig:"VAULT_TOKEN_PATH"`
	Namespace string `yaml:"namespace" envconfig:"VAULT_NAMESPACE"`
}

// LoggerConfig represents logger configuration
type LoggerConfig struct {
	Level      string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format     string `yaml:"format" envconfig:"LOG_FORMAT"` // json or console
	OutputPath string `yaml:"output_path" envconfig:"LOG_OUTPUT_PATH"`
}

// AuthConfig represents JWT authentication configuration
type AuthConfig struct {
	Enabled   bool   `yaml:"enabled" envconfig:"AUTH_ENABLED"`
	JWTSecret string `yaml:"jwt_secret" envconfig:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" envconfig:"AUTH_JWT_ISSUER"`

	// Vault path for the shared secret (optional)
	JWTVaultPath string `yaml:"jwt_vault_path" envconfig:"AUTH_JWT_VAULT_PATH"`
}

// TransferConfig represents the streaming tunables
type TransferConfig struct {
	ChunkSize    int           `yaml:"chunk_size" envconfig:"TRANSFER_CHUNK_SIZE"`
	PollInterval time.Duration `yaml:"poll_interval" envconfig:"TRANSFER_POLL_INTERVAL"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" envconfig:"TRANSFER_IDLE_TIMEOUT"`
}

// ClientConfig represents one federation client and its attribute
// grants per topic
type ClientConfig struct {
	ID     string                         `yaml:"id"`
	Grants map[string]map[string][]string `yaml:"grants"`
}

// Default returns the configuration defaults. Defaults live here rather
// than in envconfig tags so a value set in the file is never overwritten
// by a tag default when the environment variable is absent.
func Default() *Config {
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
			Address:  "localhost:3301",
			User:     "federator",
			Password: "changeme",
			Timeout:  5 * time.Second,
		},
		ObjectStoreA: ObjectStoreAConfig{
			Endpoint:        "localhost:9000",
			AccessKeyID:     "minioadmin",
			SecretAccessKey: "minioadmin",
		},
		ObjectStoreB: ObjectStoreBConfig{
			Region: "eu-west-2",
		},
		Vault: VaultConfig{
			Address: "http://localhost:8200",
		},
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
		Auth: AuthConfig{
			Enabled:   true,
			JWTIssuer: "federator",
		},
		Transfer: TransferConfig{
			ChunkSize:    1 << 20,
			PollInterval: time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// Load loads configuration from defaults, file and environment
// variables, in increasing order of precedence
func Load(configPath string) (*Config, error) {
	cfg := Default()

	// Load from file if exists
	if configPath != "" {
		if err := loadFromFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true) // Strict parsing

	if err := decoder.Decode(cfg); err != nil {
		return err
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Kafka.Brokers == "" {
		return fmt.Errorf("kafka brokers are required")
	}

	if c.Tarantool.Address == "" {
		return fmt.Errorf("tarantool address is required")
	}

	if c.Transfer.ChunkSize <= 0 {
		return fmt.Errorf("invalid transfer chunk size: %d", c.Transfer.ChunkSize)
	}

	if c.Transfer.PollInterval <= 0 || c.Transfer.IdleTimeout <= 0 {
		return fmt.Errorf("transfer poll interval and idle timeout must be positive")
	}

	if c.Vault.Enabled && c.Vault.Address == "" {
		return fmt.Errorf("vault address is required when vault is enabled")
	}

	if c.Auth.Enabled && c.Auth.JWTSecret == "" && c.Auth.JWTVaultPath == "" {
		return fmt.Errorf("auth requires a jwt secret or a vault path for one")
	}

	seen := make(map[string]bool, len(c.Clients))
	for _, client := range c.Clients {
		if client.ID == "" {
			return fmt.Errorf("client id cannot be empty")
		}
		if seen[client.ID] {
			return fmt.Errorf("duplicate client id: %s", client.ID)
		}
		seen[client.ID] = true
	}

	return nil
}

// GrantAttributes flattens the client list into the shape the access
// filter registry consumes
func (c *Config) GrantAttributes() map[string]map[string]map[string][]string {
	out := make(map[string]map[string]map[string][]string, len(c.Clients))
	for _, client := range c.Clients {
		topics := make(map[string]map[string][]string, len(client.Grants))
		for topic, attrs := range client.Grants {
			topics[topic] = attrs
		}
		out[client.ID] = topics
	}
	return out
}

// GetVaultToken returns the Vault token from config or file
func (c *VaultConfig) GetVaultToken() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}

	if c.TokenPath != "" {
		token, err := os.ReadFile(c.TokenPath)
		if err != nil {
			return "", fmt.Errorf("failed to read vault token from file: %w", err)
		}
		return string(token), nil
	}

	return "", fmt.Errorf("vault token not configured")
}
