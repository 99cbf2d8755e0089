package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arekkusul/Rustypipe/internal/cmdutil"
)

func newVersionCmd(helper *cmdutil.Helper) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the rustypipe build version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(c.Flags())
			if err != nil {
				return err
			}
			base.UI.Output(base.Version)
			return nil
		},
	}
}
