package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Token bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("GEDCOM_DEBUG_TOKEN")
	d.Parse = boolEnv("GEDCOM_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
