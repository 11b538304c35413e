package movierental

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Supported driver names, matching the database/sql registrations used by
// the pg and sqlite binaries.
const (
	DriverPostgres = "pg"
	DriverSqlite3  = "sqlite3"
)

// Config holds connection settings.
type Config struct {
	// Driver is the database driver, "pg" or "sqlite3".
	Driver string `json:"driver,omitempty"`

	// Conn is a full connection URL (pg) or file path (sqlite3). When set
	// it wins over the discrete fields below.
	Conn string `json:"conn,omitempty"`

	// Connection parameters used by PostgreSQL when Conn is empty.
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	Database string `json:"database,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"sslmode,omitempty"`
}

// DefaultConfig provides default values for configuration. It carries no
// password.
var DefaultConfig = Config{
	Host:     "localhost",
	Port:     5432,
	Database: "postgres",
	User:     "postgres",
	SSLMode:  "disable",
}

// DefaultSqlitePath is used when no SQLite file is configured.
const DefaultSqlitePath = "movierental.db"

// LoadConfig decodes a JSON configuration file into cfg. Fields absent from
// the file keep their current values.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(cfg)
}

// WithDefaults fills any empty field from DefaultConfig.
func (c Config) WithDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultConfig.Host
	}
	if c.Port == 0 {
		c.Port = DefaultConfig.Port
	}
	if c.Database == "" {
		c.Database = DefaultConfig.Database
	}
	if c.User == "" {
		c.User = DefaultConfig.User
	}
	if c.SSLMode == "" {
		c.SSLMode = DefaultConfig.SSLMode
	}
	return c
}

// DataSourceName returns the string handed to sql.Open for the configured
// driver.
func (c Config) DataSourceName() (string, error) {
	switch strings.ToLower(c.Driver) {
	case DriverPostgres:
		if c.Conn != "" {
			return c.Conn, nil
		}
		return c.postgresURL(), nil
	case DriverSqlite3:
		path := c.Conn
		if path == "" {
			path = DefaultSqlitePath
		}
		return sqliteDSN(path), nil
	default:
		return "", fmt.Errorf("db driver '%s' not supported. Must be one of: %s or %s", c.Driver, DriverSqlite3, DriverPostgres)
	}
}

// RedactedDataSourceName is DataSourceName with any password masked, for
// logging.
func (c Config) RedactedDataSourceName() string {
	dsn, err := c.DataSourceName()
	if err != nil {
		return ""
	}
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}

func (c Config) postgresURL() string {
	c = c.WithDefaults()
	var userInfo *url.Userinfo
	if c.Password != "" {
		userInfo = url.UserPassword(c.User, c.Password)
	} else {
		userInfo = url.User(c.User)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// sqliteDSN switches on foreign key enforcement, which SQLite leaves off by
// default, unless the caller already set it.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
