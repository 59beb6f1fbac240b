package main

import (
	"fmt"
	"os"

	"github.com/itsatony/go-dochelper"
	"github.com/spf13/cobra"
)

// composeConfig holds parsed compose command configuration
type composeConfig struct {
	render   renderFlags
	template string
	params   []string
	source   string
	funcName string
}

func (a *app) composeCommand() *cobra.Command {
	cfg := &composeConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameCompose,
		Short: "Compose a documentation template",
		Long: "Compose a documentation template. Empty placeholders are filled from\n" +
			"--params, or from the parameters of --func as declared in --source.",
		Example: HelpComposeExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (cfg.source == "") != (cfg.funcName == "") {
				return usageError(ErrMsgFuncNeedsSource, CmdNameCompose)
			}
			if cfg.funcName != "" && cmd.Flags().Changed(FlagParams) {
				return usageError(ErrMsgParamsAndFunc, CmdNameCompose)
			}

			reg, err := a.loadRegistry()
			if err != nil {
				return err
			}
			template, err := a.readInput(cfg.template)
			if err != nil {
				return err
			}

			c := reg.Compose(template, cfg.render.options()...)
			out := c.Text()
			switch {
			case cfg.funcName != "":
				src, err := os.ReadFile(cfg.source)
				if err != nil {
					return inputError(ErrMsgReadFileFailed, err)
				}
				sig, err := dochelper.SignatureFromSource(src, cfg.funcName)
				if err != nil {
					return runError(ErrMsgSignatureFailed, err)
				}
				out = c.For(sig)
			case cmd.Flags().Changed(FlagParams):
				out = c.Resolve(cfg.params)
			}

			fmt.Fprintln(a.stdout, out)
			return nil
		},
	}

	cfg.render.bind(cmd)
	cmd.Flags().StringVarP(&cfg.template, FlagTemplate, FlagTemplateShort, FlagDefaultTemplate, `template file ("-" for stdin)`)
	cmd.Flags().StringSliceVar(&cfg.params, FlagParams, nil, "parameter names for empty placeholders")
	cmd.Flags().StringVar(&cfg.source, FlagSource, "", "Go source file declaring --func")
	cmd.Flags().StringVar(&cfg.funcName, FlagFunc, "", `function whose parameters fill empty placeholders ("Type.Method" for methods)`)
	return cmd
}
