package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wagiedev/bc-go/internal/errors"
)

const (
	// BCName is the calculator executable name.
	BCName = "bc"

	// TimeoutName is the coreutils supervisor executable name.
	TimeoutName = "timeout"
)

// aliases lists alternative names an executable is installed under.
// Homebrew installs GNU coreutils with a "g" prefix.
var aliases = map[string][]string{
	TimeoutName: {"gtimeout"},
}

// commonDirs are checked after PATH.
var commonDirs = []string{
	"/usr/local/bin",
	"/usr/bin",
	"/bin",
	"/opt/homebrew/bin",
}

// Config holds configuration for executable discovery.
type Config struct {
	// Path is an explicit executable path. If it contains a path separator it
	// must exist as given; a bare name is looked up like Name.
	Path string

	// Name is the executable name searched when Path is empty.
	Name string

	// Dir is the working directory the executable will be started in. A
	// relative Path is checked against it, matching how exec resolves it.
	Dir string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates an executable.
type Discoverer interface {
	// Discover returns the path to launch or a SpawnError listing the
	// locations searched.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the executable.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := d.cfg.Name
	explicit := d.cfg.Path

	if explicit != "" && strings.ContainsRune(explicit, filepath.Separator) {
		d.log.Debug("Using explicit path", "path", explicit)

		checked := explicit
		if d.cfg.Dir != "" && !filepath.IsAbs(explicit) {
			checked = filepath.Join(d.cfg.Dir, explicit)
		}

		if _, err := os.Stat(checked); err != nil {
			d.log.Debug("Explicit path not found", "path", explicit, "error", err)

			return "", &errors.SpawnError{Path: explicit, Err: err}
		}

		return explicit, nil
	}

	if explicit != "" {
		name = explicit
	}

	if name == "" {
		name = BCName
	}

	return d.search(name)
}

// search looks name and its aliases up in PATH, then in the common directories.
func (d *discoverer) search(name string) (string, error) {
	candidates := append([]string{name}, aliases[name]...)
	searchedPaths := make([]string, 0, 1+len(candidates)*len(commonDirs))

	for _, candidate := range candidates {
		d.log.Debug("Searching PATH", "name", candidate)

		if path, err := exec.LookPath(candidate); err == nil {
			d.log.Debug("Found executable in PATH", "path", path)

			return path, nil
		}
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, dir := range commonDirs {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			searchedPaths = append(searchedPaths, path)

			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				d.log.Debug("Found executable at common path", "path", path)

				return path, nil
			}
		}
	}

	d.log.Warn("Executable not found in any searched paths", "name", name, "searched_paths", searchedPaths)

	return "", &errors.SpawnError{
		Path:          name,
		SearchedPaths: searchedPaths,
		Err:           exec.ErrNotFound,
	}
}
