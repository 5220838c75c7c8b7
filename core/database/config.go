package database

// Config holds the connection settings for the catalog database, the SQL
// source of catalog records.
type Config struct {
	// Driver selects the dialect: mysql or sqlite.
	Driver string `mapstructure:"driver" default:"mysql"`
	Host   string `mapstructure:"host" default:"localhost"`
	Port   int    `mapstructure:"port" default:"3306"`
	User   string `mapstructure:"user" default:"root"`
	// Password may contain any character; it is URL encoded in the DSN.
	Password string `mapstructure:"password" default:""`
	// Name is the schema name, or the database file path for sqlite.
	Name string `mapstructure:"name" default:"catalog"`
	// TimeoutSeconds bounds connection setup and each read or write.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
