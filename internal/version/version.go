// Package version holds the build version, set with -ldflags at release time.
package version

// Version is the archivx release.
var Version = "0.1.0-dev"
