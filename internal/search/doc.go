// Package search implements literal line search over in-memory text.
// Returned lines are substrings of the searched contents and share its
// backing storage.
package search
