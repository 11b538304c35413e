package movierental

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// Command verbs accepted by ParseCommand.
const (
	VerbInsert = "insert"
	VerbShow   = "show"
	VerbUpdate = "update"
	VerbRemove = "remove"
)

// CommandsHelp describes the command surface; the CLIs print it ahead of
// their flag defaults.
const CommandsHelp = `Commands:
  insert <title> <year> <genre> <director>   Insert a movie.
  show                                       Show all movies.
  update <customer_id> <new_email>           Update a customer's email.
  remove <customer_id>                       Remove a customer and their rentals.`

// UsageError reports a malformed invocation. It is returned before any
// database access.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// Command is a validated CLI invocation.
type Command struct {
	Verb string

	// Movie is set for insert.
	Movie NewMovie

	// CustomerID is set for update and remove.
	CustomerID int64

	// Email is set for update.
	Email string
}

// ParseCommand validates the positional arguments (verb first) and returns
// the command to run. Any problem yields a *UsageError.
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &UsageError{Reason: "no command provided"}
	}
	verb, rest := args[0], args[1:]

	switch verb {
	case VerbInsert:
		if len(rest) != 4 {
			return Command{}, arityError(verb, 4, len(rest))
		}
		year, err := strconv.Atoi(rest[1])
		if err != nil {
			return Command{}, &UsageError{Reason: fmt.Sprintf("invalid year: %s", rest[1])}
		}
		movie := NewMovie{
			Title:       rest[0],
			ReleaseYear: year,
			Genre:       StringPtr(rest[2]),
			Director:    StringPtr(rest[3]),
		}
		if err := movie.Validate(); err != nil {
			return Command{}, &UsageError{Reason: err.Error()}
		}
		return Command{Verb: verb, Movie: movie}, nil
	case VerbShow:
		// Extra arguments are ignored.
		return Command{Verb: verb}, nil
	case VerbUpdate:
		if len(rest) != 2 {
			return Command{}, arityError(verb, 2, len(rest))
		}
		id, err := parseCustomerID(rest[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: verb, CustomerID: id, Email: rest[1]}, nil
	case VerbRemove:
		if len(rest) != 1 {
			return Command{}, arityError(verb, 1, len(rest))
		}
		id, err := parseCustomerID(rest[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: verb, CustomerID: id}, nil
	default:
		return Command{}, &UsageError{Reason: fmt.Sprintf("unknown command: %s", verb)}
	}
}

func arityError(verb string, want, got int) *UsageError {
	return &UsageError{Reason: fmt.Sprintf("%s takes exactly %d argument(s), got %d", verb, want, got)}
}

func parseCustomerID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &UsageError{Reason: fmt.Sprintf("invalid customer_id: %s", s)}
	}
	return id, nil
}

// Execute runs cmd against the store and writes the result to w.
func (s *Store) Execute(ctx context.Context, cmd Command, w io.Writer) error {
	switch cmd.Verb {
	case VerbInsert:
		movie, err := s.InsertMovie(ctx, cmd.Movie)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Movie inserted: %s\n", movie)
	case VerbShow:
		movies, err := s.ListMovies(ctx)
		if err != nil {
			return err
		}
		if len(movies) == 0 {
			fmt.Fprintln(w, "No movies found.")
		}
		for _, m := range movies {
			fmt.Fprintln(w, m)
		}
	case VerbUpdate:
		n, err := s.UpdateCustomerEmail(ctx, cmd.CustomerID, cmd.Email)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Customer %d email updated: %d row(s) affected\n", cmd.CustomerID, n)
	case VerbRemove:
		removal, err := s.RemoveCustomer(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, removal)
	default:
		return &UsageError{Reason: fmt.Sprintf("unknown command: %s", cmd.Verb)}
	}
	return nil
}
