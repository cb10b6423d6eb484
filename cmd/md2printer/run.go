package main

import (
	"context"
	"fmt"

	md2printer "github.com/alnah/go-md2printer"
	"github.com/alnah/go-md2printer/internal/logging"
)

// Commands recognized by the dispatcher.
const (
	cmdListPrinters = "list-printers"
	cmdPreview      = "preview"
	cmdPrint        = "print"
	cmdVersion      = "version"
)

// runMain runs one invocation and returns the process exit code. It is the
// only place that turns errors into exit codes.
func runMain(ctx context.Context, args []string, env *Environment) int {
	return report(run(ctx, args, env), env.Stdout, env.Stderr)
}

// run parses args (including the program name) and dispatches to a command.
// Unknown or missing commands return ErrUsage before any file or printer is
// touched.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		if !hasCommand(args) {
			return md2printer.ErrUsage
		}
		return err
	}
	if len(positional) == 0 {
		return md2printer.ErrUsage
	}
	command, rest := positional[0], positional[1:]

	switch command {
	case cmdListPrinters, cmdPreview, cmdPrint:
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2printer %s\n", Version)
		return nil
	default:
		return md2printer.ErrUsage
	}

	s, cleanup, err := setup(flags, env)
	if err != nil {
		return err
	}
	defer cleanup()

	logging.Debug("dispatching", "command", command, "args", len(rest))

	switch command {
	case cmdListPrinters:
		return runListPrinters(ctx, s, env)
	case cmdPreview:
		return runPreview(ctx, rest, s, env)
	default:
		return runPrint(ctx, rest, s, env)
	}
}

// setup resolves settings and installs the logger. The returned cleanup
// flushes the log file.
func setup(flags *cliFlags, env *Environment) (*settings, func(), error) {
	envCfg := loadEnvConfig(env.Getenv)

	s, err := resolveSettings(flags, envCfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	if env.InitLogging != nil {
		opts := s.log
		opts.Console = env.Stderr
		closer, err := env.InitLogging(opts)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = closer.Close() }
	}
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logging.Debugf)
	}
	envCfg.warn()
	if env.Environ != nil {
		warnUnknownEnvVars(env.Environ())
	}
	return s, cleanup, nil
}

// hasCommand reports whether any argument names a known command. Flag errors
// without one are treated as an unknown invocation.
func hasCommand(args []string) bool {
	for _, a := range args {
		switch a {
		case cmdListPrinters, cmdPreview, cmdPrint, cmdVersion:
			return true
		}
	}
	return false
}

// arg returns args[i], or "" when absent.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
