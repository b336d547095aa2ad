package cmd

// Config holds the auctioneer service settings, read from the environment.
// An empty DBHost runs the trade journal in memory.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// HasDatabase reports whether a postgres trade journal is configured.
func (c Config) HasDatabase() bool {
	return c.DBHost != ""
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}
