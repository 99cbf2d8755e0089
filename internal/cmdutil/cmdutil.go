// Package cmdutil holds the functionality shared by every rustypipe
// subcommand: flag parsing and construction of the logger and colored UI.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/pflag"

	"github.com/Arekkusul/Rustypipe/internal/ui"
)

const envLogLevel = "RUSTYPIPE_LOG_LEVEL"

// Helper holds configuration values bound to the root command's flags. It
// drives construction of a CmdBase, which subcommands actually use.
type Helper struct {
	Version string

	forceColor bool
	noColor    bool
	verbosity  int
}

// NewHelper returns a new Helper for the given program version string.
func NewHelper(version string) *Helper {
	return &Helper{Version: version}
}

// AddFlags registers the flags common to every subcommand.
func (h *Helper) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&h.forceColor, "color", false, "force color output")
	flags.BoolVar(&h.noColor, "no-color", false, "suppress color output")
	flags.CountVarP(&h.verbosity, "verbosity", "v", "increase logging verbosity (-v, -vv, -vvv)")
}

func (h *Helper) getUI(flags *pflag.FlagSet) cli.Ui {
	colorMode := ui.GetColorModeFromEnv()
	if flags.Changed("no-color") && h.noColor {
		colorMode = ui.ColorModeSuppressed
	}
	if flags.Changed("color") && h.forceColor {
		colorMode = ui.ColorModeForced
	}
	return ui.BuildColoredUi(colorMode)
}

func (h *Helper) getLogger() (hclog.Logger, error) {
	var level hclog.Level
	switch h.verbosity {
	case 0:
		if v := os.Getenv(envLogLevel); v != "" {
			level = hclog.LevelFromString(v)
			if level == hclog.NoLevel {
				return nil, fmt.Errorf("%s value %q is not a valid log level", envLogLevel, v)
			}
		} else {
			level = hclog.NoLevel
		}
	case 1:
		level = hclog.Info
	case 2:
		level = hclog.Debug
	default:
		level = hclog.Trace
	}

	output := io.Discard
	color := hclog.ColorOff
	if level != hclog.NoLevel {
		output = os.Stderr
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "rustypipe",
		Level:  level,
		Color:  color,
		Output: output,
	}), nil
}

// GetCmdBase resolves a CmdBase from this helper's bound flags.
func (h *Helper) GetCmdBase(flags *pflag.FlagSet) (*CmdBase, error) {
	logger, err := h.getLogger()
	if err != nil {
		return nil, err
	}
	return &CmdBase{
		UI:      h.getUI(flags),
		Logger:  logger,
		Version: h.Version,
	}, nil
}

// CmdBase encompasses the components common to every subcommand.
type CmdBase struct {
	UI      cli.Ui
	Logger  hclog.Logger
	Version string
}

// LogError prints an error to the UI and the logger.
func (b *CmdBase) LogError(err error) {
	b.Logger.Error("error", "err", err)
	b.UI.Error(fmt.Sprintf("%s %v", ui.ERROR_PREFIX, err))
}

// LogWarning prints a warning to the UI and the logger.
func (b *CmdBase) LogWarning(msg string, err error) {
	b.Logger.Warn(msg, "err", err)
	b.UI.Warn(fmt.Sprintf("%s %s: %v", ui.WARNING_PREFIX, msg, err))
}

// LogInfo prints an informational message to the UI and the logger.
func (b *CmdBase) LogInfo(msg string) {
	b.Logger.Info(msg)
	b.UI.Info(fmt.Sprintf("%s %s", ui.InfoPrefix, msg))
}
