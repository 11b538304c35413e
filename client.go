package movierental

import (
	"fmt"
	"strings"
)

// NewClient returns the dialect Client for the configured driver.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres:
		return NewPostgresClient(cfg), nil
	case DriverSqlite3:
		return NewSqlite3Client(cfg), nil
	default:
		return nil, fmt.Errorf("db driver '%s' not supported. Must be one of: %s or %s", cfg.Driver, DriverSqlite3, DriverPostgres)
	}
}

// Client supplies the SQL that differs between database drivers.
type Client interface {
	// Driver returns the driver name the client was built for.
	Driver() string

	// SchemaSql returns the DDL statements that create the Movies,
	// Customers and Rentals tables, in dependency order.
	SchemaSql() []string

	// ColumnsSql returns a query with one bind parameter (the table name)
	// that yields the table's column names in declaration order.
	ColumnsSql() string

	// Rebind rewrites ? placeholders into the driver's bind syntax.
	Rebind(query string) string

	// TableName normalizes a table name the way the database stores it.
	TableName(name string) string
}

// BaseClient provides the common implementation.
type BaseClient struct {
	Config Config
}

// Driver returns the configured driver name.
func (c *BaseClient) Driver() string {
	return strings.ToLower(c.Config.Driver)
}

// Rebind returns the query unchanged; ? is the native placeholder.
func (c *BaseClient) Rebind(query string) string {
	return query
}

// TableName returns the name as given.
func (c *BaseClient) TableName(name string) string {
	return name
}

// schemaSql renders the three CREATE TABLE statements using idType as the
// auto-assigned primary key column type.
func schemaSql(idType string) []string {
	return []string{
		fmt.Sprintf(`
          CREATE TABLE IF NOT EXISTS Movies (
            movie_id %s,
            title VARCHAR(255) NOT NULL,
            release_year INT NOT NULL,
            genre VARCHAR(100),
            director VARCHAR(100)
          );`, idType),
		fmt.Sprintf(`
          CREATE TABLE IF NOT EXISTS Customers (
            customer_id %s,
            first_name VARCHAR(100),
            last_name VARCHAR(100),
            email VARCHAR(100) UNIQUE,
            phone VARCHAR(15)
          );`, idType),
		fmt.Sprintf(`
          CREATE TABLE IF NOT EXISTS Rentals (
            rental_id %s,
            customer_id INT REFERENCES Customers(customer_id),
            movie_id INT REFERENCES Movies(movie_id),
            rental_date DATE NOT NULL,
            return_date DATE
          );`, idType),
	}
}
