package main_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	cliBinary string
	testConn  string
	testDB    *sql.DB
)

// TestMain starts a PostgreSQL container and builds the CLI binary before
// running tests, then cleans up afterward. Without a usable container
// runtime the suite is skipped.
func TestMain(m *testing.M) {
	ctx := context.Background()

	// === Start Test Database ===
	ctr, err := startPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skipping PostgreSQL integration tests: %v\n", err)
		if ctr != nil {
			_ = testcontainers.TerminateContainer(ctr)
		}
		os.Exit(0)
	}

	testConn, err = ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get connection string: %v\n", err)
		_ = testcontainers.TerminateContainer(ctr)
		os.Exit(1)
	}
	testDB, err = sql.Open("pgx", testConn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
		_ = testcontainers.TerminateContainer(ctr)
		os.Exit(1)
	}

	// === Build CLI Binary ===
	binaryPath := filepath.Join(os.TempDir(), "movierental-pg-integration")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, "../")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build CLI binary: %v\n", err)
		_ = testcontainers.TerminateContainer(ctr)
		os.Exit(1)
	}
	cliBinary = binaryPath

	// === Run Tests ===
	code := m.Run()

	// === Tear Down ===
	testDB.Close()
	if err := testcontainers.TerminateContainer(ctr); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not terminate container: %v\n", err)
	}
	os.Remove(cliBinary)
	os.Exit(code)
}

// startPostgres runs the test database container. testcontainers panics
// while resolving the Docker host when no runtime is installed, so the
// panic is turned into an error here.
func startPostgres(ctx context.Context) (ctr *postgres.PostgresContainer, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctr, err = nil, fmt.Errorf("container runtime unavailable: %v", r)
		}
	}()
	return postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("movierental_cli_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
}

// helperRun runs the built CLI binary with the provided arguments and extra environment variables.
func helperRun(args []string, extraEnv ...string) (string, error) {
	cmd := exec.Command(cliBinary, args...)
	cmd.Env = append(os.Environ(), "DATABASE_URL=")
	cmd.Env = append(cmd.Env, extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// resetTables drops the tables so each test starts from an empty schema.
func resetTables(t *testing.T) {
	t.Helper()
	if _, err := testDB.Exec(`DROP TABLE IF EXISTS Rentals, Customers, Movies`); err != nil {
		t.Fatalf("failed to drop tables: %v", err)
	}
}

func mustExec(t *testing.T, query string, args ...any) {
	t.Helper()
	if _, err := testDB.Exec(query, args...); err != nil {
		t.Fatalf("exec %q failed: %v", query, err)
	}
}

// TestCLIInsertAndShow runs the Inception example end to end.
func TestCLIInsertAndShow(t *testing.T) {
	resetTables(t)

	out, err := helperRun([]string{"-conn", testConn, "insert", "Inception", "2010", "Sci-Fi", "Christopher Nolan"})
	if err != nil {
		t.Fatalf("insert failed: %v; output: %s", err, out)
	}
	out, err = helperRun([]string{"-conn", testConn, "show"})
	if err != nil {
		t.Fatalf("show failed: %v; output: %s", err, out)
	}
	if !strings.Contains(out, "Movie 1: Inception (2010) genre=Sci-Fi director=Christopher Nolan") {
		t.Errorf("unexpected show output:\n%s", out)
	}
}

// TestCLIDiscreteSettings connects with -host/-port/... instead of a URL.
func TestCLIDiscreteSettings(t *testing.T) {
	resetTables(t)

	u, err := url.Parse(testConn)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	password, _ := u.User.Password()
	args := []string{
		"-host", u.Hostname(),
		"-port", u.Port(),
		"-dbname", strings.TrimPrefix(u.Path, "/"),
		"-user", u.User.Username(),
		"show",
	}
	// An env URL must not override explicitly given connection flags.
	out, err := helperRun(args, "DB_PASSWORD="+password, "DATABASE_URL=postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	if err != nil {
		t.Fatalf("show failed: %v; output: %s", err, out)
	}
	if !strings.Contains(out, "No movies found.") {
		t.Errorf("unexpected show output:\n%s", out)
	}
}

// TestCLIUpdateAndRemove covers the customer commands.
func TestCLIUpdateAndRemove(t *testing.T) {
	resetTables(t)
	if out, err := helperRun([]string{"-conn", testConn, "show"}); err != nil {
		t.Fatalf("initial show failed: %v; output: %s", err, out)
	}
	mustExec(t, `INSERT INTO Movies (title, release_year) VALUES ('Heat', 1995)`)
	mustExec(t, `INSERT INTO Customers (first_name, email) VALUES ('Alice', 'alice@x.com'), ('Bob', 'bob@x.com')`)
	mustExec(t, `INSERT INTO Rentals (customer_id, movie_id, rental_date) VALUES (1, 1, CURRENT_DATE), (2, 1, CURRENT_DATE)`)

	t.Run("Update Missing Customer", func(t *testing.T) {
		out, err := helperRun([]string{"-conn", testConn, "update", "5", "new@x.com"})
		if err != nil {
			t.Fatalf("update failed: %v; output: %s", err, out)
		}
		if !strings.Contains(out, "0 row(s) affected") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("Update Duplicate", func(t *testing.T) {
		out, err := helperRun([]string{"-conn", testConn, "update", "2", "alice@x.com"})
		if err == nil {
			t.Fatalf("expected failure; output: %s", out)
		}
		if !strings.Contains(out, "email already in use") {
			t.Errorf("expected duplicate email error, got:\n%s", out)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		out, err := helperRun([]string{"-conn", testConn, "remove", "1"})
		if err != nil {
			t.Fatalf("remove failed: %v; output: %s", err, out)
		}
		var rentals, customers int
		if err := testDB.QueryRow(`SELECT COUNT(*) FROM Rentals WHERE customer_id = 1`).Scan(&rentals); err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if err := testDB.QueryRow(`SELECT COUNT(*) FROM Customers WHERE customer_id = 1`).Scan(&customers); err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if rentals != 0 || customers != 0 {
			t.Errorf("expected customer 1 and rentals gone, got %d customers, %d rentals", customers, rentals)
		}
		var other int
		if err := testDB.QueryRow(`SELECT COUNT(*) FROM Rentals WHERE customer_id = 2`).Scan(&other); err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if other != 1 {
			t.Errorf("expected customer 2's rental untouched, got %d", other)
		}
	})
}

// TestSkipsWithoutContainerRuntime re-runs this test binary with DOCKER_HOST
// pointing at a closed port and expects TestMain to skip with status 0.
func TestSkipsWithoutContainerRuntime(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(),
		"DOCKER_HOST=tcp://127.0.0.1:1",
		"DOCKER_CONTEXT=",
		"TESTCONTAINERS_RYUK_DISABLED=true",
		"HOME="+t.TempDir(),
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("expected exit status 0, got %v; output: %s", err, out)
	}
	if !strings.Contains(string(out), "skipping PostgreSQL integration tests") {
		t.Errorf("expected skip message, got:\n%s", out)
	}
}
