package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/itsatony/go-dochelper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the I/O streams and global flags shared by all commands
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	registries []string
	verbose    bool
	logger     *zap.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           CLIName + " [command]",
		Short:         CLIDescription,
		Long:          HelpRootLong,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(ErrMsgUnknownCommand, args[0])
			}
			return cmd.Help()
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: ExitCodeUsageError, msg: cmd.CommandPath(), err: err}
	})

	flags := root.PersistentFlags()
	flags.StringArrayVarP(&a.registries, FlagRegistry, FlagRegistryShort, nil,
		"registry file (.yaml, .yml, .json or .hcl); repeat to merge several")
	flags.BoolVarP(&a.verbose, FlagVerbose, FlagVerboseShort, false, "debug logging to stderr")

	root.AddCommand(
		a.getCommand(),
		a.composeCommand(),
		a.annotateCommand(),
		a.listCommand(),
		a.versionCommand(),
	)
	return root
}

// setupLogger replaces the no-op logger with a development logger on stderr
func (a *app) setupLogger() {
	if !a.verbose {
		return
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(a.stderr), zapcore.DebugLevel)
	a.logger = zap.New(core)
}

// loadRegistry merges every --registry file into one registry
func (a *app) loadRegistry() (*dochelper.Registry, error) {
	if len(a.registries) == 0 {
		return nil, usageError(ErrMsgMissingRegistry, FlagRegistry)
	}

	reg := dochelper.NewRegistry(dochelper.WithLogger(a.logger))
	for _, path := range a.registries {
		if err := reg.LoadFile(path); err != nil {
			return nil, inputError(ErrMsgLoadRegistry, err)
		}
	}

	a.logger.Debug(LogMsgRegistryReady,
		zap.Int(LogFieldEntries, reg.Len()),
		zap.Strings(LogFieldFiles, a.registries),
	)
	return reg, nil
}

// readInput reads a file, or stdin for "-"
func (a *app) readInput(path string) (string, error) {
	if path == InputSourceStdin {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", inputError(ErrMsgReadStdinFailed, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", inputError(ErrMsgReadFileFailed, err)
	}
	return string(data), nil
}

// renderFlags are the rendering flags shared by get, compose and annotate
type renderFlags struct {
	indent      int
	indentAtTop bool
	separator   string
	scoped      bool
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.indent, FlagIndent, dochelper.DefaultIndent, "indent width for continuation lines")
	cmd.Flags().BoolVar(&f.indentAtTop, FlagIndentAtTop, dochelper.DefaultIndentAtTop, "indent the first line as well")
	cmd.Flags().StringVar(&f.separator, FlagSeparator, FlagDefaultSeparator, "line separator, escape sequences allowed")
	cmd.Flags().BoolVar(&f.scoped, FlagScoped, false, "integer tokens only apply to their own placeholder")
}

func (f *renderFlags) options() []dochelper.RenderOption {
	opts := []dochelper.RenderOption{
		dochelper.WithIndent(f.indent),
		dochelper.WithIndentAtTop(f.indentAtTop),
		dochelper.WithSeparator(unescape(f.separator)),
	}
	if f.scoped {
		opts = append(opts, dochelper.WithScopedIndent())
	}
	return opts
}

// unescape interprets Go escape sequences such as \n and \t; input that
// does not unquote is returned as is
func unescape(s string) string {
	if v, err := strconv.Unquote(fmt.Sprintf(FmtQuoted, s)); err == nil {
		return v
	}
	return s
}

// exitError carries the exit code for a failed command
type exitError struct {
	code   int
	msg    string
	detail string
	err    error
}

func (e *exitError) Error() string {
	switch {
	case e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.detail != "":
		return e.msg + ": " + e.detail
	}
	return e.msg
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(msg, detail string) error {
	return &exitError{code: ExitCodeUsageError, msg: msg, detail: detail}
}

func inputError(msg string, err error) error {
	return &exitError{code: ExitCodeInputError, msg: msg, err: err}
}

func runError(msg string, err error) error {
	return &exitError{code: ExitCodeError, msg: msg, err: err}
}

// report prints err to stderr and returns its exit code
func (a *app) report(err error) int {
	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(a.stderr, err)
		return ExitCodeError
	}

	switch {
	case exitErr.err != nil:
		fmt.Fprintf(a.stderr, FmtErrorWithCause, exitErr.msg, exitErr.err)
	case exitErr.detail != "":
		fmt.Fprintf(a.stderr, FmtErrorWithDetail, exitErr.msg, exitErr.detail)
	default:
		fmt.Fprint(a.stderr, exitErr.msg+FmtNewline)
	}
	return exitErr.code
}
