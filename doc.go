// SPDX-License-Identifier: MIT

// Package movierental is a small data-access layer for a movie rental
// schema (Movies, Customers, Rentals) over database/sql.  It creates the
// tables when they are missing, inserts and lists movies, updates customer
// emails, and removes customers together with their rentals.
//
// A thin dialect layer (currently PostgreSQL and SQLite) supplies SQL
// differences.  Companion CLI tools live under sub-packages *pg* and
// *sqlite*; the core logic is here.
//
// # Quick start
//
//	import (
//	    "context"
//	    "database/sql"
//
//	    _ "github.com/jackc/pgx/v5/stdlib" // or github.com/mattn/go-sqlite3
//	    "github.com/bcomnes/movierental"
//	)
//
//	func main() {
//	    db, _ := sql.Open("pgx", os.Getenv("DATABASE_URL"))
//	    defer db.Close()
//
//	    store, _ := movierental.NewStore(movierental.Config{Driver: "pg"}, db)
//	    ctx := context.Background()
//	    store.EnsureSchema(ctx)
//	    store.InsertMovie(ctx, movierental.NewMovie{Title: "Inception", ReleaseYear: 2010})
//	}
//
// # Programmatic API
//
//	NewStore(cfg, db)                          → *Store
//	(*Store).EnsureSchema(ctx)                 → error
//	(*Store).InsertMovie(ctx, NewMovie)        → Movie, error
//	(*Store).ListMovies(ctx)                   → []Movie, error
//	(*Store).UpdateCustomerEmail(ctx, id, e)   → rows affected, error
//	(*Store).RemoveCustomer(ctx, id)           → Removal, error
//	(*Store).GetCustomer(ctx, id)              → Customer, error
//	(*Store).ListRentals(ctx, customerID)      → []Rental, error
//	ParseCommand(args) / (*Store).Execute      → CLI verb dispatch
//
// RemoveCustomer deletes the customer's rentals before the customer row,
// inside one transaction, so a failure leaves both tables untouched.
//
// # Errors
//
// Store errors wrap the driver error.  Constraint violations are
// classified so callers can test with errors.Is: ErrDuplicateEmail for a
// unique violation, ErrForeignKey for a broken reference.  ErrInvalidMovie
// and ErrNotFound cover validation and single-row lookups.
//
// # Versioning
//
// A semantic version string is exposed as:
//
//	var Version = "vX.Y.Z"
package movierental
