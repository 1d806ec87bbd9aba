// Package sysutil holds process-level helpers used by main and config:
// global log level switching and environment string interpretation.
package sysutil

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// SetLogLevel sets the global zerolog level from a config string.
// Input is trimmed and matched case-insensitively; "warning" is an
// accepted alias for "warn". Unknown or empty values fall back to info.
func SetLogLevel(lvl string) {
	s := strings.ToLower(strings.TrimSpace(lvl))
	if s == "warning" {
		s = "warn"
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil || l == zerolog.NoLevel {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)
}

// IsTruthy reports whether an environment value should count as true.
// Beyond strconv.ParseBool it accepts "yes", "y" and "on".
func IsTruthy(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s == "yes" || s == "y" || s == "on"
}

// FirstNonEmpty returns the first value that is not blank, preserving
// its original spacing. Blank means empty or whitespace-only.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) == "" {
			continue
		}
		return v
	}
	return ""
}
