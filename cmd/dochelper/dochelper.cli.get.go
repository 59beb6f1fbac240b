package main

import (
	"fmt"
	"strings"

	"github.com/itsatony/go-dochelper/internal"
	"github.com/spf13/cobra"
)

func (a *app) getCommand() *cobra.Command {
	var render renderFlags

	cmd := &cobra.Command{
		Use:     CmdNameGet + " NAME...",
		Short:   "Render registry entries for a list of names",
		Long:    "Render registry entries for a list of names. Names may also be given\nas one comma separated argument; an integer sets the indent.",
		Example: HelpGetExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := internal.Tokenize(strings.Join(args, internal.StringSpace))
			if len(names) == 0 {
				return usageError(ErrMsgMissingNames, CmdNameGet)
			}

			reg, err := a.loadRegistry()
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, reg.Get(names, render.options()...))
			return nil
		},
	}
	render.bind(cmd)
	return cmd
}
