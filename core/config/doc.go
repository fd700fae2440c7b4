// Package config provides configuration management for the CMS backend.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live in `default:"…"` struct tags next to each field.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, CORS origin, API prefix, body limit
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials, bucket, upload prefix and size ceiling
//   - Auth: JWT secret, token lifetime and issuer
//   - Log: Logging level and format
//
// Environment variables map onto nested keys by replacing dots with underscores
// (SERVER_PORT -> server.port, AUTH_JWT_SECRET -> auth.jwt_secret).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
