package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arekkusul/Rustypipe/internal/cmdutil"
	"github.com/Arekkusul/Rustypipe/internal/pipeline"
	"github.com/Arekkusul/Rustypipe/internal/validate"
)

func newValidateCmd(helper *cmdutil.Helper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <pipeline.yaml>",
		Short: "parse and validate a pipeline document without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(c.Flags())
			if err != nil {
				return err
			}
			p, err := pipeline.Parse(args[0])
			if err != nil {
				base.LogError(err)
				return err
			}
			if err := validate.Validate(p); err != nil {
				base.LogError(err)
				return err
			}
			base.UI.Output(fmt.Sprintf("pipeline %q is valid (%d tasks)", p.Name, len(p.Tasks)))
			return nil
		},
	}
}
