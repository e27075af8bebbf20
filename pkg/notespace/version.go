// Package notespace carries module-level metadata.
package notespace

// Version is the notespace release version, overridable at build time via
// -ldflags "-X github.com/plainfield/notespace/pkg/notespace.Version=...".
var Version = "0.1.0"
