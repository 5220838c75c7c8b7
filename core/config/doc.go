// Package config provides configuration management for the batch loader.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config.yaml and a .env file. Defaults come from the `default`
// struct tags of each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Batch: path pattern, identifier rules, access notes, slot conventions
//   - Storage: S3/MinIO credentials and the bucket holding digitized files
//   - Database: catalog database connection details
//   - Filenames: naming convention and autonumber prefix
//   - Index: search index used for batch verification
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	policy := cfg.Batch.Policy()
package config
