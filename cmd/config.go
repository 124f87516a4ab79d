package cmd

import "time"

// Config holds every runtime setting of the service, bound from environment
// variables. godotenv loads a local .env first so development boxes do not
// need the variables exported.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// AuthTokenKey signs the bearer tokens issued at login.
	AuthTokenKey string `envconfig:"AUTH_TOKEN_KEY" required:"true"`
	// AuthTokenTTL bounds how long an issued token stays valid.
	AuthTokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"12h"`

	// DispatchVisibilityOwnOnly hides lines dispatched by other dispatch
	// users from dispatch-role listings. Pending lines stay visible.
	DispatchVisibilityOwnOnly bool `envconfig:"DISPATCH_VISIBILITY_OWN_ONLY" default:"false"`

	// AdminUsername and AdminPassword seed the first admin account when the
	// users table is empty. Without them a fresh deployment has no way to
	// log in and create accounts.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminFullName string `envconfig:"ADMIN_FULL_NAME" default:"Administrator"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:""`
}
