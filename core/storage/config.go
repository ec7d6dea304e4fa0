package storage

// Config holds configuration for the upload storage backend.
type Config struct {
	// Backend selects where uploaded presentations are stored (local, s3).
	Backend string `mapstructure:"backend" default:"local"`
	// LocalDir is the root directory for the local backend.
	LocalDir string `mapstructure:"local_dir" default:"/data/uploads"`
	// Endpoint is the URL of the S3-compatible storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store uploads in.
	Bucket string `mapstructure:"bucket" default:"uploads"`
	// Prefix is prepended to every object key.
	Prefix string `mapstructure:"prefix" default:"uploads/"`
	// Region is the location of the bucket (e.g., eu-west-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendLocal, BackendS3:
		return true
	default:
		return false
	}
}
