package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the static configuration surface of the scanner. Everything
// here is loaded once at process start; nothing is mutated at runtime.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	Scan       Scan       `yaml:"scan"`
	Walker     Walker     `yaml:"walker"`
	Classify   Classify   `yaml:"classify"`
	Rules      Rules      `yaml:"rules"`
	Validators Validators `yaml:"validators"`
	Publish    Publish    `yaml:"publish"`
	Artifacts  Artifacts  `yaml:"artifacts"`
	HttpClient HttpClient `yaml:"http_client"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type Scan struct {
	// Workers bounds the analysis pool; 0 means one worker per CPU.
	Workers int `yaml:"workers"`
	// MaxFileSize skips files larger than this many bytes when positive.
	MaxFileSize int64 `yaml:"max_file_size"`
}

type Walker struct {
	// IgnoreDirs extends the built-in ignore set.
	IgnoreDirs []string `yaml:"ignore_dirs"`
}

type Classify struct {
	BinaryExtensions []string          `yaml:"binary_extensions"`
	Languages        map[string]string `yaml:"languages"`
}

type Rules struct {
	Enable  []string `yaml:"enable"`
	Disable []string `yaml:"disable"`
}

type Validators struct {
	Disabled       bool                `yaml:"disabled"`
	TimeoutSeconds int                 `yaml:"timeout_seconds"`
	Commands       map[string][]string `yaml:"commands"`
}

type Publish struct {
	// Repository overrides the origin-remote derivation, as
	// "namespace/name".
	Repository string `yaml:"repository"`
	TokenEnv   string `yaml:"token_env"`
	WebhookURL string `yaml:"webhook_url"`
}

type Artifacts struct {
	Dir      string `yaml:"dir"`
	S3Bucket string `yaml:"s3_bucket"`
	S3Region string `yaml:"s3_region"`
}

type HttpClient struct {
	Debug            bool            `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TlsClientConfig  TlsClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TlsClientConfig struct {
	Verify bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// ValidatorTimeout returns the configured validator timeout as a duration.
func (c *Config) ValidatorTimeout() time.Duration {
	return time.Duration(c.Validators.TimeoutSeconds) * time.Second
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error: the scanner must run bare in CI, so defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
