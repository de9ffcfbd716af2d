package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the directory and build flags.
type siteFlags struct {
	output     string
	static     string
	basePath   string
	engine     string
	workers    int
	workersSet bool // --workers given; 0 is a valid explicit value
}

// assetFlags holds the template and style flags.
type assetFlags struct {
	style     string
	template  string
	assetPath string
	noStyle   bool
}

// buildFlags holds all flags of the build command.
type buildFlags struct {
	common commonFlags
	site   siteFlags
	assets assetFlags
}

// addCommonFlags adds flags shared by every command.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds the output, static and build flags.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (emptied before each build)")
	fs.StringVar(&f.static, "static", "", "static directory copied into the output")
	fs.StringVar(&f.basePath, "base-path", "", "prefix for site-absolute links, e.g. /blog/")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: native, goldmark")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// addAssetFlags adds the template and style flags.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name, CSS file, or inline CSS")
	fs.StringVar(&f.template, "template", "", "template name, HTML file, or inline HTML")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/ and templates/ overrides")
	fs.BoolVar(&f.noStyle, "no-style", false, "do not inject any CSS")
}

// parseBuildFlags parses build flags and returns the positional arguments.
// Usage is printed to stderr on parse errors and on --help, in which case
// the returned error is flag.ErrHelp.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printBuildUsage(stderr) }

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addAssetFlags(fs, &f.assets)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	f.site.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}
