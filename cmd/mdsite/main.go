package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlag    = errors.New("invalid flag")
)

// commands lists the subcommands accepted as first argument.
var commands = []string{"build", "config", "version", "help"}

func main() {
	verbose := slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI, reports a top-level error with its hint and
// returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// run dispatches to a command. Without a command, build runs, so
// "mdsite", "mdsite site/" and "mdsite -o public" all build.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) < 2 {
		return runBuild(ctx, nil, env)
	}

	switch cmd := args[1]; cmd {
	case "build":
		return runBuild(ctx, args[2:], env)
	case "config":
		return runConfig(args[2:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(args[2:], env)
	default:
		if !looksLikeBuildArg(cmd) {
			printUsage(env.Stderr)
			return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		}
		return runBuild(ctx, args[1:], env)
	}
}

// looksLikeBuildArg reports whether arg starts an implicit build:
// a flag or an existing content directory.
func looksLikeBuildArg(arg string) bool {
	if slices.Contains(commands, arg) {
		return false
	}
	return strings.HasPrefix(arg, "-") || fileutil.DirExists(arg)
}
