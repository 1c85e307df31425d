// Package debug provides env-gated tracing for development.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("CHATMARK_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
