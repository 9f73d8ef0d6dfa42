package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DirProvider supplies the per-user application config directory. The host
// environment decides where that is.
type DirProvider interface {
	ConfigDir() (string, error)
}

// StaticDir is a DirProvider returning a fixed path.
type StaticDir string

func (d StaticDir) ConfigDir() (string, error) {
	if d == "" {
		return "", errors.New("config directory is empty")
	}
	return string(d), nil
}

// UserConfigDir resolves to <os.UserConfigDir()>/<app id>.
type UserConfigDir string

func (appID UserConfigDir) ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine user config directory")
	}
	return filepath.Join(base, string(appID)), nil
}

// Resolver maps logical file names to paths inside the config directory.
type Resolver struct {
	provider DirProvider
}

func NewResolver(provider DirProvider) Resolver {
	return Resolver{provider: provider}
}

// Directory returns the config directory, creating it and any missing
// parents.
func (r Resolver) Directory() (string, error) {
	dir, err := r.provider.ConfigDir()
	if err != nil {
		return "", newError(IOError, "resolve", "", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", newError(IOError, "mkdir", dir, err)
	}
	return dir, nil
}

// Resolve joins fileName onto Directory. fileName is not sanitized.
func (r Resolver) Resolve(fileName string) (string, error) {
	dir, err := r.Directory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}
