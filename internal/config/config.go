// internal/config/config.go
package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Registry RegistryConfig
	Services ServicesConfig
}

type ServerConfig struct {
	WebPort     string
	StoragePort string
	FilterPort  string
	Mode        string
	// UploadLimitMB caps inbound photo bodies; requests above it get 413 EntityTooLarge.
	UploadLimitMB int64
}

type StoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	// Stage namespaces physical bucket names ("photos-<stage>-<name>").
	Stage string
}

type RegistryConfig struct {
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type ServicesConfig struct {
	FilterHost  string
	FilterPort  string
	StorageHost string
	StoragePort string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("WEB_PORT", "3000")
		viper.SetDefault("STORAGE_PORT", "3001")
		viper.SetDefault("FILTER_PORT", "3002")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("UPLOAD_LIMIT_MB", 10)
		viper.SetDefault("S3_ENDPOINT", "localhost:9000")
		viper.SetDefault("S3_ACCESS_KEY", "minioadmin")
		viper.SetDefault("S3_SECRET_KEY", "minioadmin")
		viper.SetDefault("S3_REGION", "us-east-1")
		viper.SetDefault("S3_USE_SSL", false)
		viper.SetDefault("STAGE", "dev")
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("FILTER_HOST", "localhost")
		viper.SetDefault("STORAGE_HOST", "localhost")

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				WebPort:       viper.GetString("WEB_PORT"),
				StoragePort:   viper.GetString("STORAGE_PORT"),
				FilterPort:    viper.GetString("FILTER_PORT"),
				Mode:          viper.GetString("SERVER_MODE"),
				UploadLimitMB: viper.GetInt64("UPLOAD_LIMIT_MB"),
			},
			Store: StoreConfig{
				Endpoint:  viper.GetString("S3_ENDPOINT"),
				AccessKey: viper.GetString("S3_ACCESS_KEY"),
				SecretKey: viper.GetString("S3_SECRET_KEY"),
				Region:    viper.GetString("S3_REGION"),
				UseSSL:    viper.GetBool("S3_USE_SSL"),
				Stage:     viper.GetString("STAGE"),
			},
			Registry: RegistryConfig{
				RedisURL:      viper.GetString("REDIS_URL"),
				RedisHost:     viper.GetString("REDIS_HOST"),
				RedisPort:     viper.GetString("REDIS_PORT"),
				RedisPassword: viper.GetString("REDIS_PASSWORD"),
				RedisDB:       viper.GetInt("REDIS_DB"),
			},
			Services: ServicesConfig{
				FilterHost:  viper.GetString("FILTER_HOST"),
				FilterPort:  viper.GetString("FILTER_PORT"),
				StorageHost: viper.GetString("STORAGE_HOST"),
				StoragePort: viper.GetString("STORAGE_PORT"),
			},
		}
	})

	return instance
}

// FilterURL returns the base URL of the photo-filter service.
func (c *Config) FilterURL() string {
	return serviceURL(c.Services.FilterHost, c.Services.FilterPort)
}

// StorageURL returns the base URL of the photo-storage service.
func (c *Config) StorageURL() string {
	return serviceURL(c.Services.StorageHost, c.Services.StoragePort)
}

// UploadLimitBytes returns the upload cap in bytes.
func (c *Config) UploadLimitBytes() int64 {
	return c.Server.UploadLimitMB << 20
}

func serviceURL(host, port string) string {
	if port == "" || port == "0" {
		return fmt.Sprintf("http://%s", host)
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}
