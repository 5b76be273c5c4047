package config

import "os"

// CaseInsensitiveEnv switches searches to case-insensitive mode when present,
// whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// Config describes one search run. It is not modified after New returns.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Option configures New.
type Option func(*options)

type options struct {
	lookupEnv LookupEnvFunc
}

// WithLookupEnv overrides the environment source, primarily for tests.
func WithLookupEnv(lookup LookupEnvFunc) Option {
	return func(o *options) {
		o.lookupEnv = lookup
	}
}

// New builds a Config from a process argument list where args[0] is the
// program name, args[1] the query and args[2] the filename. Extra arguments
// are ignored. The query and filename are not validated here.
func New(args []string, opts ...Option) (Config, error) {
	o := options{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	if len(args) < 3 {
		return Config{}, ErrNotEnoughArguments
	}

	_, insensitive := o.lookupEnv(CaseInsensitiveEnv)

	return Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !insensitive,
	}, nil
}
