// Package config resolves what a single search invocation needs. Config holds
// the query, the target file and the case mode taken from the argument list
// and the CASE_INSENSITIVE environment variable. Settings holds ambient
// options (logging, highlighting) loaded from several sources with precedence:
// CLI flags > config file > Environment variables > Defaults.
package config
