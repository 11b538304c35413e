package movierental

// Sqlite3Client implements Client for SQLite and embeds BaseClient.
type Sqlite3Client struct {
	BaseClient
}

// NewSqlite3Client creates a new Sqlite3Client.
func NewSqlite3Client(cfg Config) *Sqlite3Client {
	return &Sqlite3Client{
		BaseClient: BaseClient{
			Config: cfg,
		},
	}
}

// SchemaSql returns the DDL using AUTOINCREMENT rowid aliases, so
// identifiers are never reused after a delete.
func (c *Sqlite3Client) SchemaSql() []string {
	return schemaSql("INTEGER PRIMARY KEY AUTOINCREMENT")
}

// ColumnsSql returns SQL to get column information using SQLite's PRAGMA.
func (c *Sqlite3Client) ColumnsSql() string {
	return `SELECT name FROM pragma_table_info(?) ORDER BY cid;`
}
