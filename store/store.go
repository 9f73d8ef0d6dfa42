package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const filePerm = 0o644

// Record is a persisted document type. SetDefaults puts the value into its
// first-run state; decoding starts from that state so absent fields keep
// their defaults.
type Record[T any] interface {
	*T
	SetDefaults()
}

// FileStore reads and writes JSON documents in the config directory. It
// keeps no state between calls: every load reads the file and every save
// replaces it.
type FileStore struct {
	resolver Resolver
}

func NewFileStore(provider DirProvider) *FileStore {
	return &FileStore{resolver: NewResolver(provider)}
}

func (fs *FileStore) Resolver() Resolver {
	return fs.resolver
}

// Path returns the absolute path of fileName, creating the config directory.
func (fs *FileStore) Path(fileName string) (string, error) {
	return fs.resolver.Resolve(fileName)
}

// Load reads fileName into a T. A missing file is not an error: the
// defaults of T are returned instead.
func Load[T any, P Record[T]](fs *FileStore, fileName string) (T, error) {
	var value T
	P(&value).SetDefaults()

	path, err := fs.resolver.Resolve(fileName)
	if err != nil {
		return value, err
	}
	log := logrus.WithFields(logrus.Fields{"file": fileName, "path": path})

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			log.Debug("config file not found, using defaults")
			return value, nil
		}
		return value, newError(IOError, "stat", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return value, newError(IOError, "read", path, err)
	}
	if err := json.Unmarshal(data, P(&value)); err != nil {
		var defaults T
		P(&defaults).SetDefaults()
		return defaults, newError(ParseError, "decode", path, err)
	}
	log.Debug("config loaded")
	return value, nil
}

// Save writes value to fileName as indented JSON, replacing any previous
// content. The new file is renamed into place so readers never observe a
// partial write.
func Save[T any](fs *FileStore, fileName string, value T) error {
	path, err := fs.resolver.Resolve(fileName)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return newError(EncodeError, "encode", path, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newError(IOError, "mkdir", filepath.Dir(path), err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return newError(IOError, "write", path, err)
	}
	logrus.WithFields(logrus.Fields{"file": fileName, "path": path, "bytes": len(data)}).Debug("config saved")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(err, "write temp file %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(err, "close temp file %s", tmpName)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		cleanup()
		return errors.Wrapf(err, "chmod temp file %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Wrapf(err, "rename %s -> %s", tmpName, path)
	}
	return nil
}

// Document binds a FileStore to one file name and record type.
type Document[T any, P Record[T]] struct {
	store *FileStore
	name  string
}

func NewDocument[T any, P Record[T]](fs *FileStore, fileName string) Document[T, P] {
	return Document[T, P]{store: fs, name: fileName}
}

func (d Document[T, P]) Name() string { return d.name }

func (d Document[T, P]) Path() (string, error) {
	return d.store.Path(d.name)
}

func (d Document[T, P]) Load() (T, error) {
	return Load[T, P](d.store, d.name)
}

func (d Document[T, P]) Save(value T) error {
	return Save(d.store, d.name, value)
}
