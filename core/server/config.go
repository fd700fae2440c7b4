package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// CorsOrigin is the front-end origin allowed to call the API with credentials.
	CorsOrigin string `mapstructure:"cors_origin" default:"http://localhost:3000"`
	// APIPrefix is the path prefix under which every route is mounted.
	APIPrefix string `mapstructure:"api_prefix" default:"/api"`
	// BodyLimitBytes caps request bodies, uploads included.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"12582912"`
}

// Prefix returns the normalized API prefix ("/api", never a trailing slash).
func (c Config) Prefix() string {
	p := strings.TrimRight(strings.TrimSpace(c.APIPrefix), "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
