package config

import (
	"os"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Razorpay RazorpayConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string // empty means the production API
}

// StorageConfig selects where uploaded documents land: "disk" (default) or "cloudinary".
type StorageConfig struct {
	Driver     string
	UploadDir  string
	Cloudinary CloudinaryConfig
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "5000"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			// No default: a missing DSN must fail at startup, not per request.
			DSN:             os.Getenv("DATABASE_DSN"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Razorpay: RazorpayConfig{
			KeyID:     getenv("RAZORPAY_KEY_ID", "rzp_test_unOC8OTfw4EaD3"),
			KeySecret: os.Getenv("RAZORPAY_SECRET_KEY"),
			BaseURL:   os.Getenv("RAZORPAY_BASE_URL"),
		},
		Storage: StorageConfig{
			Driver:    getenv("STORAGE_DRIVER", "disk"),
			UploadDir: getenv("UPLOAD_DIR", "uploads"),
			Cloudinary: CloudinaryConfig{
				CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
				APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
				APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
				Folder:    getenv("CLOUDINARY_FOLDER", "printflow/documents"),
			},
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
