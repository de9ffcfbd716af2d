package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for site builds.
var (
	ErrResetOutput = errors.New("failed to reset output directory")
	ErrCopyStatic  = errors.New("failed to copy static files")
	ErrTooManyArgs = errors.New("too many arguments")
)

// PageFailuresError reports a build in which some pages failed.
// It unwraps to the first failure so exit codes follow its cause.
type PageFailuresError struct {
	Failed int
	Total  int
	First  error
}

func (e *PageFailuresError) Error() string {
	return fmt.Sprintf("%d of %d page(s) failed", e.Failed, e.Total)
}

func (e *PageFailuresError) Unwrap() error { return e.First }

// runBuild builds the site: it resolves configuration from the config file,
// the environment and flags, resets the output directory, copies static
// files and converts every Markdown page.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, cfg, err := resolveBuildConfig(args, env)
	if err != nil || cfg == nil {
		return err
	}

	start := env.Now()
	verbose := flags.common.verbose && !flags.common.quiet

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return err
	}

	// Built before the output is reset, so asset errors leave it untouched.
	conv, err := mdsite.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return err
	}

	if err := fileutil.ResetDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("%w: %v", ErrResetOutput, err)
	}
	if cfg.Static.Dir != "" && fileutil.DirExists(cfg.Static.Dir) {
		n, err := fileutil.CopyDir(cfg.Static.Dir, cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCopyStatic, err)
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "Copied %d static file(s) from %s\n", n, cfg.Static.Dir)
		}
	}

	if len(pages) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "No markdown files found in %s\n", cfg.Content.Dir)
		}
		return nil
	}

	workers := mdsite.ResolveWorkers(cfg.Build.Workers)
	if verbose {
		fmt.Fprintf(env.Stdout, "Building %d page(s) with %d worker(s)\n", len(pages), workers)
	}

	results := buildBatch(ctx, conv, pages, workers)
	failed := printResultsWithWriter(results, flags.common.quiet, verbose, env)

	if verbose {
		fmt.Fprintf(env.Stdout, "Built %s in %v\n", cfg.Output.Dir, env.Now().Sub(start).Round(time.Millisecond))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return &PageFailuresError{Failed: failed, Total: len(results), First: firstError(results)}
	}
	return nil
}

// resolveBuildConfig parses args and layers defaults, the config file, the
// environment and flags into a validated config. Both results are nil when
// --help was requested.
func resolveBuildConfig(args []string, env *Environment) (*buildFlags, *config.Config, error) {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if len(positional) > 1 {
		return nil, nil, fmt.Errorf("%w: expected at most one content directory, got %d", ErrTooManyArgs, len(positional))
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadBuildConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return flags, cfg, nil
}

// runConfig prints the configuration a build with the same arguments
// would use.
func runConfig(args []string, env *Environment) error {
	_, cfg, err := resolveBuildConfig(args, env)
	if err != nil || cfg == nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}

// loadBuildConfig loads the config named by the --config flag or
// MDSITE_CONFIG, in that order. Without either, defaults are used.
func loadBuildConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies explicitly set CLI flags and the positional content
// directory over cfg.
func mergeFlags(flags *buildFlags, positional []string, cfg *config.Config) {
	if len(positional) > 0 {
		cfg.Content.Dir = positional[0]
	}
	if flags.site.output != "" {
		cfg.Output.Dir = flags.site.output
	}
	if flags.site.static != "" {
		cfg.Static.Dir = flags.site.static
	}
	if flags.site.basePath != "" {
		cfg.Site.BasePath = flags.site.basePath
	}
	if flags.site.engine != "" {
		cfg.Markdown.Engine = flags.site.engine
	}
	if flags.site.workersSet {
		cfg.Build.Workers = flags.site.workers
	}

	if flags.assets.template != "" {
		cfg.Template.Name = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Style.Name = ""
	}
}

// converterOptions translates cfg into converter options.
// An empty template or engine keeps the converter default.
func converterOptions(cfg *config.Config) []mdsite.Option {
	opts := []mdsite.Option{
		mdsite.WithStyle(cfg.Style.Name),
		mdsite.WithBasePath(cfg.Site.BasePath),
	}
	if cfg.Markdown.Engine != "" {
		opts = append(opts, mdsite.WithEngine(mdsite.Engine(cfg.Markdown.Engine)))
	}
	if cfg.Template.Name != "" {
		opts = append(opts, mdsite.WithTemplate(cfg.Template.Name))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdsite.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}
