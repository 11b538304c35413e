package movierental

import (
	"fmt"
	"strings"
	"time"
)

// Movie is a row of the Movies table.
type Movie struct {
	ID          int64
	Title       string
	ReleaseYear int
	// Genre and Director are nil when the column is NULL.
	Genre    *string
	Director *string
}

// String renders the movie as a single line for console output.
func (m Movie) String() string {
	return fmt.Sprintf("Movie %d: %s (%d) genre=%s director=%s",
		m.ID, m.Title, m.ReleaseYear, orNull(m.Genre), orNull(m.Director))
}

// NewMovie holds the caller-supplied fields of a movie to insert.
type NewMovie struct {
	Title       string
	ReleaseYear int
	Genre       *string
	Director    *string
}

// Validate reports whether the movie can be inserted.
func (n NewMovie) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidMovie)
	}
	return nil
}

// Customer is a row of the Customers table. Customers are created outside
// this tool.
type Customer struct {
	ID        int64
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// Rental is a row of the Rentals table.
type Rental struct {
	ID         int64
	CustomerID int64
	MovieID    int64
	RentalDate time.Time
	ReturnDate *time.Time
}

// Removal reports what RemoveCustomer deleted.
type Removal struct {
	CustomerID       int64
	RentalsDeleted   int64
	CustomersDeleted int64
}

// String renders the removal as a single line for console output.
func (r Removal) String() string {
	return fmt.Sprintf("Customer %d removed: %d customer row(s), %d rental(s)",
		r.CustomerID, r.CustomersDeleted, r.RentalsDeleted)
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orNull(s *string) string {
	if s == nil {
		return "NULL"
	}
	return *s
}
