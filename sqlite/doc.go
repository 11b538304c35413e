// SPDX-License-Identifier: MIT

// Package main provides movierental-sqlite, a SQLite-specific command-line
// interface for the movierental data-access library.
//
// # Install
//
//	go install github.com/bcomnes/movierental/sqlite@latest
//
// # Synopsis
//
//	movierental-sqlite [options] <command> [arguments]
//
// # Commands
//
//	insert <title> <year> <genre> <director>   Insert a movie and print the stored row.
//	show                                       Print every movie.
//	update <customer_id> <new_email>           Set a customer's email.
//	remove <customer_id>                       Delete a customer and their rentals.
//
// # Global flags
//
//	-conn string       Path to the SQLite database file (default "movierental.db").
//	-config string     Optional JSON file that mirrors movierental.Config.
//	-env-file string   .env file loaded into the environment if present (default ".env").
//	-timeout duration  Time limit for the whole run (default 30s).
//	-log-level string  error, warn, info, debug or trace (default "info").
//	-help              Show built-in help.
//	-version           Print movierental-sqlite version.
//
// *Precedence:* -conn flag ➜ $SQLITE_URL ➜ "conn" in -config ➜ movierental.db
//
// Foreign key enforcement is switched on for every connection unless the
// path already sets _foreign_keys.
//
// # Exit status
//
// 0 on success, 1 when opening the database, schema verification or the
// command fails, 2 for a malformed invocation.
package main
