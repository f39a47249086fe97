package spindle

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/config/fetcher/file"
	"github.com/0xalexb/spindle/config/parser/jsonc"
	"github.com/0xalexb/spindle/config/parser/toml"
	"github.com/0xalexb/spindle/config/parser/yaml"
)

const (
	lockFileName = ".spindle.lock"
	folderMode   = 0o755
	fileMode     = 0o644
)

var (
	// ErrConfigNotFound is returned when Load is asked for a file that does not exist in the folder.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrUnsupportedFormat is returned for file extensions no parser handles.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrEmptyFolder is returned by Setup when no folder is given.
	ErrEmptyFolder = errors.New("config folder must not be empty")
)

// Loader reads configuration files from a single folder.
type Loader struct {
	folder  string
	options Options
}

// Setup prepares folder for use: it creates the folder when missing and copies every name that
// does not exist on disk yet from the resources bundle. A name absent from the bundle, or one
// that cannot be written, is logged and skipped. Concurrent Setup calls on the same folder are serialized with a lock file.
func Setup(folder string, names []string, opts ...Option) (*Loader, error) {
	if folder == "" {
		return nil, ErrEmptyFolder
	}

	options := newOptions(opts)
	folder = filepath.Clean(folder)

	err := os.MkdirAll(folder, folderMode)
	if err != nil {
		return nil, fmt.Errorf("creating config folder %q: %w", folder, err)
	}

	loader := &Loader{folder: folder, options: options}

	if len(names) == 0 {
		return loader, nil
	}

	lock := flock.New(filepath.Join(folder, lockFileName))

	err = lock.Lock()
	if err != nil {
		return nil, fmt.Errorf("locking config folder %q: %w", folder, err)
	}

	defer func() {
		unlockErr := lock.Unlock()
		if unlockErr != nil {
			options.Logger.Warn("failed to release config folder lock",
				slog.String("folder", folder),
				slog.Any("error", unlockErr),
			)
		}
	}()

	for _, name := range names {
		loader.bootstrap(name)
	}

	return loader, nil
}

// Folder returns the configuration folder.
func (l *Loader) Folder() string {
	return l.folder
}

// Path returns the on-disk path of the named file.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.folder, filepath.FromSlash(name))
}

// Load reads the named file from the folder. The parser is chosen from the file extension.
func (l *Loader) Load(name string) (*config.Accessor, error) {
	return l.LoadSection(name, "")
}

// LoadSection is like Load but only exposes the mapping at section.
func (l *Loader) LoadSection(name, section string) (*config.Accessor, error) {
	path := l.Path(name)

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
	}

	return load(path, section, l.options)
}

// LoadFile reads a configuration file outside of any Loader. A missing file yields an empty
// configuration.
func LoadFile(path string, opts ...Option) (*config.Accessor, error) {
	return load(path, "", newOptions(opts), file.AllowMissing())
}

// ParserFor returns the parser registered for the extension of path.
//
//nolint:ireturn // callers only need the config.Parser contract.
func ParserFor(path string) (config.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.NewParser(), nil
	case ".toml":
		return toml.NewParser(), nil
	case ".json", ".jsonc":
		return jsonc.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func load(path, section string, options Options, fetchOpts ...file.Option) (*config.Accessor, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	fetcher, err := file.NewFetcher(path, fetchOpts...)()
	if err != nil {
		return nil, err
	}

	configOpts := []config.Option{config.WithLogger(options.Logger)}
	if options.Codec != nil {
		configOpts = append(configOpts, config.WithCodec(options.Codec))
	}

	accessor, err := config.Load(parser, fetcher, section, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	return accessor, nil
}

func (l *Loader) bootstrap(name string) {
	target := l.Path(name)

	_, err := os.Stat(target)
	if err == nil {
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		l.options.Logger.Warn("failed to create config file",
			slog.String("path", target),
			slog.Any("error", err),
		)

		return
	}

	if l.options.Resources == nil {
		l.options.Logger.Warn("no bundled resource for config file", slog.String("name", name))

		return
	}

	data, err := fs.ReadFile(l.options.Resources, name)
	if err != nil {
		l.options.Logger.Warn("no bundled resource for config file",
			slog.String("name", name),
			slog.Any("error", err),
		)

		return
	}

	err = writeAtomic(target, data)
	if err != nil {
		l.options.Logger.Warn("failed to create config file",
			slog.String("path", target),
			slog.Any("error", err),
		)

		return
	}

	l.options.Logger.Info("config file created", slog.String("path", target))
}

// writeAtomic writes data to a temporary file next to target and renames it into place.
func writeAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)

	err := os.MkdirAll(dir, folderMode)
	if err != nil {
		return fmt.Errorf("creating folder %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(fileMode)
	}

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(tmpName, target)
	}

	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("writing %q: %w", target, err)
	}

	return nil
}
