package movierental

import (
	"strconv"
	"strings"
)

// PostgresClient implements Client for PostgreSQL and embeds BaseClient.
type PostgresClient struct {
	BaseClient
}

// NewPostgresClient creates a new PostgresClient.
func NewPostgresClient(cfg Config) *PostgresClient {
	return &PostgresClient{
		BaseClient: BaseClient{
			Config: cfg,
		},
	}
}

// SchemaSql returns the DDL using SERIAL identifiers.
func (c *PostgresClient) SchemaSql() []string {
	return schemaSql("SERIAL PRIMARY KEY")
}

// ColumnsSql lists columns of a table in the current schema.
func (c *PostgresClient) ColumnsSql() string {
	return `SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name::text = $1 ORDER BY ordinal_position;`
}

// Rebind rewrites each ? into a numbered $n placeholder.
func (c *PostgresClient) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TableName lowercases the name, since PostgreSQL folds unquoted identifiers.
func (c *PostgresClient) TableName(name string) string {
	return strings.ToLower(name)
}
