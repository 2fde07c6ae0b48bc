package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// startupFileName is the name of a program run at the start of every
// session, if present in the configuration directory.
const startupFileName = "startup.slogo"

// StartupFile returns the path of the startup program, or an empty string
// if there is none.
func StartupFile(paths AppPaths) string {
	if paths == nil || paths.ConfigDir() == "" {
		return ""
	}
	p := filepath.Join(paths.ConfigDir(), startupFileName)
	if fi, err := os.Stat(p); err != nil || fi.IsDir() {
		return ""
	}
	return p
}
