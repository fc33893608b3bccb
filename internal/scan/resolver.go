package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver expands host-specific path shorthand into an absolute
// filesystem path. The scanner depends on this contract rather than on any
// particular shell's notation; callers may plug in their own.
type PathResolver interface {
	Resolve(path string) (string, error)
}

// ResolverFunc adapts a plain function to the PathResolver interface.
type ResolverFunc func(path string) (string, error)

func (f ResolverFunc) Resolve(path string) (string, error) {
	return f(path)
}

// DefaultResolver expands a leading "~" against the current user's home
// directory and absolutizes the result.
var DefaultResolver PathResolver = ResolverFunc(resolveOSPath)

func resolveOSPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolutize %q: %w", path, err)
	}
	return abs, nil
}
