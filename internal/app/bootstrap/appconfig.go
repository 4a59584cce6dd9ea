// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS bind address, ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig is where WeShare keeps the MongoDB connection settings and the
// values advertised in the OpenAPI document.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string        // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string        // Database name within MongoDB
	MongoMaxPoolSize    uint64        // Upper bound on pooled connections
	MongoMinPoolSize    uint64        // Connections kept warm
	MongoConnectTimeout time.Duration // Bound on the initial connect + ping

	// Health check
	HealthPingTimeout time.Duration // Bound on the /health database ping

	// API documentation
	BaseURL    string // Public base URL advertised in the OpenAPI servers list
	APITitle   string // OpenAPI info.title
	APIVersion string // OpenAPI info.version
}
