// Package application runs a single search: it loads the target file, picks
// the search mode from the configuration and prints the matching lines. It
// keeps the main package focused on CLI parsing and error presentation.
package application
