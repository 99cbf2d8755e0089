package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Arekkusul/Rustypipe/internal/cmdutil"
	"github.com/Arekkusul/Rustypipe/internal/core"
	"github.com/Arekkusul/Rustypipe/internal/pipeline"
	"github.com/Arekkusul/Rustypipe/internal/signals"
	"github.com/Arekkusul/Rustypipe/internal/util"
	"github.com/Arekkusul/Rustypipe/internal/validate"
)

type runOpts struct {
	concurrency  int
	backend      string
	stopOnFail   bool
	noStopOnFail bool
	vars         []string
}

func (o *runOpts) addFlags(flags *pflag.FlagSet) {
	flags.Var(&util.ConcurrencyValue{Value: &o.concurrency}, "concurrency", "override the pipeline's concurrency (number or percentage of CPUs, e.g. 50%)")
	flags.StringVar(&o.backend, "backend", "", "override every task's backend selector")
	flags.BoolVar(&o.stopOnFail, "stop-on-fail", false, "abort the pipeline on the first task failure")
	flags.BoolVar(&o.noStopOnFail, "no-stop-on-fail", false, "continue the pipeline past task failures")
	flags.StringArrayVar(&o.vars, "var", nil, "set an external variable as NAME=VALUE, usable as {{vars.NAME}} (repeatable)")
}

func newRunCmd(helper *cmdutil.Helper, watcher *signals.Watcher) *cobra.Command {
	opts := &runOpts{}
	runCmd := &cobra.Command{
		Use:   "run <pipeline.yaml>",
		Short: "parse, validate, and execute a pipeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(c.Flags())
			if err != nil {
				return err
			}
			return runPipeline(c.Context(), base, watcher, args[0], opts)
		},
	}
	opts.addFlags(runCmd.Flags())
	return runCmd
}

func runPipeline(ctx context.Context, base *cmdutil.CmdBase, watcher *signals.Watcher, path string, opts *runOpts) error {
	p, err := pipeline.Parse(path)
	if err != nil {
		base.LogError(err)
		return err
	}

	if opts.concurrency > 0 {
		p.Concurrency = opts.concurrency
	}
	if opts.backend != "" {
		for i := range p.Tasks {
			p.Tasks[i].Backend = opts.backend
		}
	}
	if opts.stopOnFail {
		p.StopOnFail = true
	}
	if opts.noStopOnFail {
		p.StopOnFail = false
	}

	if err := validate.Validate(p); err != nil {
		base.LogError(err)
		return err
	}

	vars, err := parseVars(opts.vars)
	if err != nil {
		base.LogError(err)
		return err
	}

	docDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		base.LogError(err)
		return err
	}

	exec := &core.Executor{
		Pipeline: p,
		DocDir:   docDir,
		RunBase:  "./.rustypipe",
		Vars:     vars,
		Logger:   base.Logger,
		Watcher:  watcher,
	}

	base.LogInfo(fmt.Sprintf("starting pipeline %q", p.Name))
	runDir, _, err := exec.Run(ctx)
	if err != nil {
		base.LogError(err)
		return err
	}
	base.LogInfo(fmt.Sprintf("artifacts written to %s", runDir))
	return nil
}

func parseVars(raw []string) (map[string]string, error) {
	vars := make(map[string]string, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q: expected NAME=VALUE", entry)
		}
		vars[name] = value
	}
	return vars, nil
}
