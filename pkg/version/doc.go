// Package version holds the build information reported by "genebar version".
package version
