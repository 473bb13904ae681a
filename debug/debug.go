package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert  bool
	Fallback bool
	Kernel   bool
	Warn     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("SYMX_DEBUG_CONVERT")
	d.Fallback = boolEnv("SYMX_DEBUG_FALLBACK")
	d.Kernel = boolEnv("SYMX_DEBUG_KERNEL")
	d.Warn = boolEnv("SYMX_DEBUG_WARN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Fallback() bool {
	return d.Fallback
}
func Kernel() bool {
	return d.Kernel
}
func Warn() bool {
	return d.Warn
}
