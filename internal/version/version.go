// Package version pins the string reported by --version.
package version

// Version is overridden at release time via -ldflags.
var Version = "dev"
