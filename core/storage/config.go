package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the default bucket used when a caller leaves the bucket blank.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// HostName is the public host of the bucket, used to build access URLs.
	HostName string `mapstructure:"host_name" default:"http://localhost:9000/assets"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// TokenTTLSeconds is the lifetime of an upload token.
	TokenTTLSeconds int `mapstructure:"token_ttl_seconds" default:"3600"`
	// MaxFetchBytes caps the size of a remote source pulled by a fetch.
	MaxFetchBytes int64 `mapstructure:"max_fetch_bytes" default:"67108864"`
}

// DefaultMaxFetchBytes is the fetch cap used when none is configured. It
// matches the HTTP server's upload body limit.
const DefaultMaxFetchBytes int64 = 64 << 20

// Timeout returns the transport timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TokenTTL returns the upload token lifetime, falling back to one hour.
func (c Config) TokenTTL() time.Duration {
	if c.TokenTTLSeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// MaxFetch returns the fetch size cap, falling back to DefaultMaxFetchBytes.
func (c Config) MaxFetch() int64 {
	if c.MaxFetchBytes <= 0 {
		return DefaultMaxFetchBytes
	}
	return c.MaxFetchBytes
}
