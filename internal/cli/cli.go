// Package cli implements the readmerator command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/readmerator/pkg/buildinfo"
	"github.com/matzehuels/readmerator/pkg/cache"
	"github.com/matzehuels/readmerator/pkg/manifest"
	"github.com/matzehuels/readmerator/pkg/readme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "readmerator"

	// defaultOutputDir is where fetched READMEs land unless overridden.
	defaultOutputDir = ".ai-docs"

	// redisEnv selects a shared Redis response cache when set to a redis:// URL.
	redisEnv = "READMERATOR_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ecosystems fixes the display order of per-ecosystem output.
var ecosystems = []manifest.Ecosystem{manifest.Python, manifest.NPM}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// verbose reports whether per-package tracing is visible.
func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "readmerator",
		Short:        "Readmerator fetches READMEs for all project dependencies",
		Long:         `Readmerator scans a project for dependency manifests, resolves every package to the best documentation its registry offers, and saves one markdown file per package so the docs are readable offline, by humans and AI assistants alike.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.urlCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Resolver Factory
// =============================================================================

// newResolver creates a README resolver backed by the configured cache.
func (c *CLI) newResolver(noCache, refresh bool) (*readme.Resolver, error) {
	backend, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return readme.NewResolver(readme.Options{Cache: backend, Refresh: refresh}), nil
}

// newCache selects the HTTP response cache backend: --no-cache disables
// caching outright, READMERATOR_REDIS_URL selects a shared Redis instance,
// and the default is an on-disk cache in the XDG cache directory. A broken
// Redis URL is an error rather than a silent downgrade; a missing home
// directory only costs caching.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(redisEnv); url != "" {
		return cache.NewRedisCache(url)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/readmerator/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
