package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site (default)")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md file under content-dir into an HTML page.")
	fmt.Fprintln(w, "The output directory is emptied first, then the static directory is copied into it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown source tree (default: content)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: docs)")
	fmt.Fprintln(w, "      --static <dir>        Static directory (default: static)")
	fmt.Fprintln(w, "      --base-path <s>       Prefix for site-absolute links, e.g. /blog/")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: native, goldmark")
	fmt.Fprintln(w, "      --template <s>        Template name, HTML file, or inline HTML")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file, or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w, "      --no-style            Do not inject any CSS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_OUTPUT_DIR, MDSITE_STATIC_DIR,")
	fmt.Fprintln(w, "  MDSITE_TEMPLATE, MDSITE_STYLE, MDSITE_BASE_PATH, MDSITE_ENGINE, MDSITE_WORKERS")
	fmt.Fprintln(w, "  Flags take precedence over environment, environment over the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: mdsite config [content-dir] [flags]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration 'mdsite build' would use with the same")
		fmt.Fprintln(env.Stdout, "arguments, after the config file, environment and flags are applied.")
		fmt.Fprintln(env.Stdout, "Accepts the build flags.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
