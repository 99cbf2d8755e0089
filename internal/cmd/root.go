// Package cmd holds the root cobra command for rustypipe and its
// subcommands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Arekkusul/Rustypipe/internal/cmdutil"
	"github.com/Arekkusul/Rustypipe/internal/signals"
)

// RunWithArgs runs rustypipe with the given arguments (not including the
// binary name itself) and returns a process exit code.
func RunWithArgs(args []string, version string) int {
	watcher := signals.NewWatcher()
	helper := cmdutil.NewHelper(version)
	root := getCmd(helper, watcher)
	root.SetArgs(args)

	doneCh := make(chan struct{})
	var exitCode int
	go func() {
		defer close(doneCh)
		if err := root.Execute(); err != nil {
			exitCode = exitCodeFor(err)
		}
	}()

	select {
	case <-doneCh:
		watcher.Close()
		return exitCode
	case <-watcher.Done():
		return 1
	}
}

func getCmd(helper *cmdutil.Helper, watcher *signals.Watcher) *cobra.Command {
	root := &cobra.Command{
		Use:           "rustypipe",
		Short:         "rustypipe runs a declarative task pipeline as a DAG",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	helper.AddFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(helper, watcher))
	root.AddCommand(newValidateCmd(helper))
	root.AddCommand(newVersionCmd(helper))

	return root
}
