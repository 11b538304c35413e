package movierental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Store is the data-access handle for the movie rental schema. It wraps a
// database connection opened by the caller; the caller owns closing it.
type Store struct {
	db     *sql.DB
	client Client
}

// NewStore creates a Store for cfg.Driver over db.
func NewStore(cfg Config, db *sql.DB) (*Store, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, client: client}, nil
}

// Driver returns the driver name of the underlying dialect.
func (s *Store) Driver() string {
	return s.client.Driver()
}

// EnsureSchema creates the Movies, Customers and Rentals tables if they do
// not exist. It is safe to call on every start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, q := range s.client.SchemaSql() {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Columns returns the column names of table in declaration order. A table
// that does not exist yields no columns.
func (s *Store) Columns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.client.ColumnsSql(), s.client.TableName(table))
	if err != nil {
		return nil, fmt.Errorf("list columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// InsertMovie validates m, inserts it, and returns the stored row with its
// assigned identifier.
func (s *Store) InsertMovie(ctx context.Context, m NewMovie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	query := s.client.Rebind(`
      INSERT INTO Movies (title, release_year, genre, director)
      VALUES (?, ?, ?, ?)
      RETURNING movie_id;`)

	var id int64
	err := s.db.QueryRowContext(ctx, query, m.Title, m.ReleaseYear, nullString(m.Genre), nullString(m.Director)).Scan(&id)
	if err != nil {
		return Movie{}, wrapStoreError("insert movie", err)
	}
	return Movie{
		ID:          id,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Genre:       m.Genre,
		Director:    m.Director,
	}, nil
}

// ListMovies returns every movie in the order the database yields them.
func (s *Store) ListMovies(ctx context.Context) ([]Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT movie_id, title, release_year, genre, director FROM Movies;`)
	if err != nil {
		return nil, wrapStoreError("list movies", err)
	}
	defer rows.Close()

	movies := []Movie{}
	for rows.Next() {
		var (
			m        Movie
			genre    sql.NullString
			director sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseYear, &genre, &director); err != nil {
			return nil, wrapStoreError("list movies", err)
		}
		m.Genre = nullStringToPtr(genre)
		m.Director = nullStringToPtr(director)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError("list movies", err)
	}
	return movies, nil
}

// UpdateCustomerEmail sets the email of customer id and returns the number
// of rows changed. Zero rows is not an error. An email already held by
// another customer fails with ErrDuplicateEmail.
func (s *Store) UpdateCustomerEmail(ctx context.Context, id int64, email string) (int64, error) {
	query := s.client.Rebind(`UPDATE Customers SET email = ? WHERE customer_id = ?;`)
	res, err := s.db.ExecContext(ctx, query, email, id)
	if err != nil {
		return 0, wrapStoreError("update customer email", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapStoreError("update customer email", err)
	}
	return n, nil
}

// RemoveCustomer deletes the rentals of customer id and then the customer
// itself in one transaction. On error nothing is deleted.
func (s *Store) RemoveCustomer(ctx context.Context, id int64) (Removal, error) {
	removal := Removal{CustomerID: id}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return removal, wrapStoreError("remove customer", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rentals, err := execAffected(ctx, tx, s.client.Rebind(`DELETE FROM Rentals WHERE customer_id = ?;`), id)
	if err != nil {
		return removal, wrapStoreError("remove customer rentals", err)
	}
	customers, err := execAffected(ctx, tx, s.client.Rebind(`DELETE FROM Customers WHERE customer_id = ?;`), id)
	if err != nil {
		return removal, wrapStoreError("remove customer", err)
	}
	if err := tx.Commit(); err != nil {
		return removal, wrapStoreError("remove customer", err)
	}

	removal.RentalsDeleted = rentals
	removal.CustomersDeleted = customers
	return removal, nil
}

// GetCustomer returns customer id, or ErrNotFound.
func (s *Store) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	query := s.client.Rebind(`
      SELECT customer_id, first_name, last_name, email, phone
      FROM Customers
      WHERE customer_id = ?;`)

	var (
		c                                 Customer
		firstName, lastName, email, phone sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &firstName, &lastName, &email, &phone)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Customer{}, wrapStoreError("get customer", err)
	}
	c.FirstName = nullStringToPtr(firstName)
	c.LastName = nullStringToPtr(lastName)
	c.Email = nullStringToPtr(email)
	c.Phone = nullStringToPtr(phone)
	return c, nil
}

// ListRentals returns the rentals of customer id.
func (s *Store) ListRentals(ctx context.Context, customerID int64) ([]Rental, error) {
	query := s.client.Rebind(`
      SELECT rental_id, customer_id, movie_id, rental_date, return_date
      FROM Rentals
      WHERE customer_id = ?;`)

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, wrapStoreError("list rentals", err)
	}
	defer rows.Close()

	rentals := []Rental{}
	for rows.Next() {
		var (
			r        Rental
			returned sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.CustomerID, &r.MovieID, &r.RentalDate, &returned); err != nil {
			return nil, wrapStoreError("list rentals", err)
		}
		r.ReturnDate = nullTimeToPtr(returned)
		rentals = append(rentals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError("list rentals", err)
	}
	return rentals, nil
}

func execAffected(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// nullString maps a nil pointer to SQL NULL.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullStringToPtr(n sql.NullString) *string {
	if n.Valid {
		return &n.String
	}
	return nil
}

func nullTimeToPtr(n sql.NullTime) *time.Time {
	if n.Valid {
		return &n.Time
	}
	return nil
}
