package lpcr

import (
	"fmt"
	"os"
	"strings"

	"lpcr-submit/internal/common/errors"
)

// TokenSource yields a bearer token candidate. Sources are tried in
// precedence order; the first non-empty value wins.
type TokenSource interface {
	Name() string
	Token() string
}

type staticToken struct {
	value string
}

func (s staticToken) Name() string  { return "explicit value" }
func (s staticToken) Token() string { return s.value }

// StaticToken is an explicitly supplied token value.
func StaticToken(value string) TokenSource {
	return staticToken{value: value}
}

type envToken struct {
	variable string
}

func (e envToken) Name() string  { return fmt.Sprintf("env var %s", e.variable) }
func (e envToken) Token() string { return os.Getenv(e.variable) }

// EnvToken reads the token from a named process environment variable.
func EnvToken(variable string) TokenSource {
	return envToken{variable: variable}
}

// ResolveToken returns the first non-empty token from the given sources.
// Failing closed here short-circuits the run before any request is built.
func ResolveToken(sources ...TokenSource) (string, error) {
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		if token := src.Token(); token != "" {
			return token, nil
		}
		names = append(names, src.Name())
	}
	return "", errors.NewTokenMissingError(
		fmt.Sprintf("no token from any source: %s", strings.Join(names, ", ")))
}
