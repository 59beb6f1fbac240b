package main

import (
	"fmt"
	"os"

	"github.com/itsatony/go-dochelper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) annotateCommand() *cobra.Command {
	var render renderFlags
	var write bool

	cmd := &cobra.Command{
		Use:   CmdNameAnnotate + " FILE.go...",
		Short: "Fill placeholders in Go doc comments",
		Long: "Fill placeholders in the doc comments of Go functions. Empty placeholders\n" +
			"take the function's parameters. Without --write the result is printed.",
		Example: HelpAnnotateExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(ErrMsgMissingFiles, CmdNameAnnotate)
			}

			reg, err := a.loadRegistry()
			if err != nil {
				return err
			}

			for _, path := range args {
				if err := a.annotateFile(reg, path, write, render.options()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	render.bind(cmd)
	cmd.Flags().BoolVarP(&write, FlagWrite, FlagWriteShort, false, "write results back to the files")
	return cmd
}

func (a *app) annotateFile(reg *dochelper.Registry, path string, write bool, opts []dochelper.RenderOption) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return inputError(ErrMsgReadFileFailed, err)
	}

	out, annotations, err := dochelper.AnnotateSource(path, src, reg, opts...)
	if err != nil {
		return runError(ErrMsgAnnotateFailed, err)
	}
	a.logger.Debug(LogMsgFileAnnotated,
		zap.String(LogFieldPath, path),
		zap.Int(LogFieldAnnotations, len(annotations)),
	)

	if !write {
		if _, err := a.stdout.Write(out); err != nil {
			return runError(ErrMsgWriteOutputFailed, err)
		}
		return nil
	}

	if len(annotations) > 0 {
		if err := os.WriteFile(path, out, FilePermissions); err != nil {
			return runError(ErrMsgWriteOutputFailed, err)
		}
		a.logger.Debug(LogMsgFileWritten, zap.String(LogFieldPath, path))
	}

	fmt.Fprintf(a.stdout, AnnotateReportFormat, path, len(annotations))
	for _, an := range annotations {
		fmt.Fprintf(a.stdout, AnnotateLineFormat, an.Func, an.Line)
	}
	return nil
}
