// SPDX-License-Identifier: MIT

// Package main provides movierental-pg, a PostgreSQL-specific command-line
// interface for the movierental data-access library.
//
// # Install
//
//	go install github.com/bcomnes/movierental/pg@latest
//
// # Synopsis
//
//	movierental-pg [options] <command> [arguments]
//
// # Commands
//
//	insert <title> <year> <genre> <director>   Insert a movie and print the stored row.
//	show                                       Print every movie.
//	update <customer_id> <new_email>           Set a customer's email.
//	remove <customer_id>                       Delete a customer and their rentals.
//
// Every run first creates the Movies, Customers and Rentals tables if they
// are missing. Arguments are validated before the database is contacted;
// an empty genre or director ("") is stored as NULL.
//
// # Global flags
//
//	-conn string       PostgreSQL connection URL. Overrides $DATABASE_URL, the
//	                   discrete connection flags and the "conn" field in -config.
//	-config string     Optional JSON file that mirrors movierental.Config.
//	-env-file string   .env file loaded into the environment if present (default ".env").
//	-host string       Database host (default "localhost").
//	-port int          Database port (default 5432).
//	-dbname string     Database name (default "postgres").
//	-user string       Database user (default "postgres").
//	-password string   Database password.
//	-sslmode string    SSL mode (default "disable").
//	-timeout duration  Time limit for the whole run (default 30s).
//	-log-level string  error, warn, info, debug or trace (default "info").
//	-help              Show built-in help.
//	-version           Print movierental-pg version.
//
// *Precedence:* flag ➜ environment ➜ -config file ➜ built-in default
//
// Setting any of -host, -port, -dbname, -user, -password or -sslmode without
// -conn ignores a URL from $DATABASE_URL or -config; the URL is then built
// from the discrete settings.
//
// # Environment
//
//	DATABASE_URL  Full connection URL used when -conn and the discrete
//	              connection flags are omitted.
//	DB_HOST, DB_PORT, DB_DATABASE, DB_USERNAME, DB_PASSWORD, DB_SSLMODE
//	              Discrete connection settings used when no URL is given.
//
// # Configuration file
//
//	{
//	  "host":     "db.internal",
//	  "port":     5432,
//	  "database": "rentals",
//	  "user":     "rentals",
//	  "sslmode":  "require"
//	}
//
// # Exit status
//
// 0 on success, 1 when connecting, schema verification or the command fails,
// 2 for a malformed invocation.
package main
