// Package app runs one search: it loads the configured file, matches it
// against the query and hands the result to a printer.
//
// The file is read fully into memory before matching starts. Read failures
// are returned to the caller unchanged and nothing is printed.
package app
