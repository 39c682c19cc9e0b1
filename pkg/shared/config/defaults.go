package config

import "time"

// DefaultConfigFile is looked up in the working directory when no
// --config flag is given.
const DefaultConfigFile = "polyscan.yml"

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Validators: Validators{
			TimeoutSeconds: 30,
		},
		Artifacts: Artifacts{
			Dir: ".polyscan",
		},
		HttpClient: HttpClient{
			RetryCount:       5,
			RetryWaitTime:    1 * time.Second,
			RetryMaxWaitTime: 2 * time.Second,
			Timeout:          10 * time.Second,
			TlsClientConfig:  TlsClientConfig{Verify: true},
		},
	}
}
