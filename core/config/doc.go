// Package config provides configuration management for the bucket manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP gateway settings (port, API key)
//   - Storage: S3/MinIO endpoint, credentials, bucket and region
//   - Log: Logging level and format
//
// Defaults come from 'default' struct tags; environment variables map to
// nested keys with underscores (STORAGE_BUCKET -> storage.bucket).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
