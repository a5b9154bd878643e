// Package config loads the service configuration from an optional YAML file
// and the environment. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Blob backends
const (
	BlobDiscard = "discard"
	BlobGCS     = "gcs"
	BlobS3      = "s3"
)

// Config represents the application configuration
type Config struct {
	Env string `yaml:"env"`

	Server struct {
		Port          int           `yaml:"port"`
		ReadTimeout   time.Duration `yaml:"read_timeout"`
		WriteTimeout  time.Duration `yaml:"write_timeout"`
		IdleTimeout   time.Duration `yaml:"idle_timeout"`
		AllowOrigins  []string      `yaml:"allow_origins"`
		RateLimit     int           `yaml:"rate_limit"`
		MaxUploadSize int64         `yaml:"max_upload_size"`
	} `yaml:"server"`

	Storage struct {
		Backend string `yaml:"backend"`
	} `yaml:"storage"`

	Database Database `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Mock struct {
		Seed   int64  `yaml:"seed"`
		Delays Delays `yaml:"delays"`
	} `yaml:"mock"`

	Blob struct {
		Backend string `yaml:"backend"`
		Bucket  string `yaml:"bucket"`
		Prefix  string `yaml:"prefix"`
		Region  string `yaml:"region"`
		// Endpoint targets an S3 compatible service such as MinIO
		Endpoint string `yaml:"endpoint"`
	} `yaml:"blob"`

	Sentry struct {
		DSN     string `yaml:"dsn"`
		Enabled bool   `yaml:"enabled"`
	} `yaml:"sentry"`

	AMQP struct {
		URL      string `yaml:"url"`
		Exchange string `yaml:"exchange"`
	} `yaml:"amqp"`

	Logging struct {
		AuthLog bool   `yaml:"auth_log"`
		AuthDir string `yaml:"auth_dir"`
	} `yaml:"logging"`
}

// Database holds the postgres connection settings
type Database struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	ConnStr    string `yaml:"conn_str"`
	UseConnStr bool   `yaml:"use_conn_str"`
}

// Delays are the simulated latencies of the mock data source
type Delays struct {
	Disabled       bool          `yaml:"disabled"`
	Base           time.Duration `yaml:"base"`
	Login          time.Duration `yaml:"login"`
	Apply          time.Duration `yaml:"apply"`
	Upload         time.Duration `yaml:"upload"`
	Parse          time.Duration `yaml:"parse"`
	Report         time.Duration `yaml:"report"`
	CreateEmployee time.Duration `yaml:"create_employee"`
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configPath (when non-empty and present) and then applies the environment
func Load(configPath string) (*Config, error) {
	c := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), c); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	c.loadFromEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	c := &Config{Env: "development"}

	c.Server.Port = 8080
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = time.Minute
	c.Server.AllowOrigins = []string{"http://localhost:3000"}
	c.Server.RateLimit = 20
	c.Server.MaxUploadSize = 10 << 20

	c.Storage.Backend = StorageMemory
	c.Redis.Addr = "localhost:6379"

	c.Mock.Delays = Delays{
		Base:           500 * time.Millisecond,
		Login:          800 * time.Millisecond,
		Apply:          1000 * time.Millisecond,
		Upload:         2000 * time.Millisecond,
		Parse:          3000 * time.Millisecond,
		Report:         2000 * time.Millisecond,
		CreateEmployee: 1000 * time.Millisecond,
	}

	c.Blob.Backend = BlobDiscard
	c.Blob.Prefix = "aps"
	c.Blob.Region = "ap-south-1"

	c.AMQP.Exchange = "aps.activity"
	c.Logging.AuthDir = "log"

	return c
}

// Validate rejects unknown backends
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	switch c.Blob.Backend {
	case BlobDiscard:
	case BlobGCS, BlobS3:
		if c.Blob.Bucket == "" {
			return fmt.Errorf("blob backend %s needs a bucket", c.Blob.Backend)
		}
	default:
		return fmt.Errorf("unknown blob backend: %s", c.Blob.Backend)
	}

	if c.Server.RateLimit < 1 {
		return fmt.Errorf("rate limit must be positive, got %d", c.Server.RateLimit)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if env := os.Getenv("APP_ENV"); env != "" {
		c.Env = env
	}

	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
		c.Server.Port = port
	}
	if origins := os.Getenv("ALLOW_ORIGIN"); origins != "" {
		c.Server.AllowOrigins = strings.Split(origins, ",")
	}
	if rate, err := strconv.Atoi(os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND")); err == nil {
		c.Server.RateLimit = rate
	}
	if size, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64); err == nil && size > 0 {
		c.Server.MaxUploadSize = size
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}

	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USERNAME")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_DATABASE")
	setString(&c.Database.ConnStr, "DB_CONNECTION_STR")
	setBool(&c.Database.UseConnStr, "USE_CONNECTION_STR")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	if db, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		c.Redis.DB = db
	}

	if seed, err := strconv.ParseInt(os.Getenv("MOCK_SEED"), 10, 64); err == nil {
		c.Mock.Seed = seed
	}
	setBool(&c.Mock.Delays.Disabled, "MOCK_DELAYS_DISABLED")

	if backend := os.Getenv("BLOB_BACKEND"); backend != "" {
		c.Blob.Backend = strings.ToLower(backend)
	}
	setString(&c.Blob.Bucket, "BLOB_BUCKET")
	setString(&c.Blob.Prefix, "BLOB_PREFIX")
	setString(&c.Blob.Region, "AWS_REGION")
	setString(&c.Blob.Endpoint, "S3_ENDPOINT")

	setString(&c.Sentry.DSN, "SENTRY_DSN")
	setBool(&c.Sentry.Enabled, "ENABLE_SENTRY")

	setString(&c.AMQP.URL, "AMQP_URL")
	setString(&c.AMQP.Exchange, "AMQP_EXCHANGE")

	setBool(&c.Logging.AuthLog, "LOGGING")
	setString(&c.Logging.AuthDir, "LOG_DIR")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key))); err == nil {
		*dst = v
	}
}
