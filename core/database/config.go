package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (postgres, mysql, sqlite).
	Driver string `mapstructure:"driver" default:"postgres"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"postgres"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"food_logs"`
	// SSLMode is passed through to postgres.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// QueryTimeoutSeconds bounds every individual remote store call.
	QueryTimeoutSeconds int `mapstructure:"query_timeout_seconds" default:"15"`
	// AutoMigrate creates or updates the foods and food_logs tables on start.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
}

// Enabled reports whether a remote store is configured at all.
func (c Config) Enabled() bool {
	return c.Driver != "" && c.Driver != "none"
}
