package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameList,
		Short: "Print the merged registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatYAML && format != OutputFormatText {
				return usageError(ErrMsgInvalidFormat, format)
			}

			reg, err := a.loadRegistry()
			if err != nil {
				return err
			}

			if format == OutputFormatText {
				for _, entry := range reg.Entries() {
					fmt.Fprintln(a.stdout, entry.String())
				}
				return nil
			}

			if err := reg.WriteYAML(a.stdout); err != nil {
				return runError(ErrMsgWriteOutputFailed, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormatList, "output format: yaml, text")
	return cmd
}
