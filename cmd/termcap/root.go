package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdrv/capability"
	"github.com/lixenwraith/termdrv/config"
	"github.com/lixenwraith/termdrv/logging"
)

// options are shared by every subcommand
type options struct {
	configPath string
	logLevel   string
	logFile    string
	term       string
	without    []string

	cfg       *config.Config
	logCloser io.Closer
	errOut    io.Writer
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "termcap",
		Short:         "Inspect and exercise terminal capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.errOut = cmd.ErrOrStderr()
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logCloser != nil {
				opts.logCloser.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (.toml, .yaml); defaults to $"+config.EnvConfig)
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&opts.logFile, "log-file", "", "append logs to this file; logs are discarded when empty")
	pf.StringVar(&opts.term, "term", "", "terminal name; defaults to the config file, then $TERM")
	pf.StringSliceVar(&opts.without, "without", nil, "drop these capabilities before validating")

	root.AddCommand(
		newCheckCmd(opts),
		newDumpCmd(opts),
		newDemoCmd(opts),
	)
	return root
}

// setup loads configuration and installs logging. An explicit --config must
// parse; a broken $TERMDRV_CONFIG is reported and skipped, as in Acquire.
func (o *options) setup() error {
	var (
		cfg    *config.Config
		cfgErr error
	)
	if o.configPath != "" {
		c, err := config.LoadWithEnv(o.configPath)
		if err != nil {
			return err
		}
		cfg = c
	} else {
		cfg, cfgErr = config.FromEnv()
	}
	o.cfg = cfg

	levelName := cfg.Log.Level
	if o.logLevel != "" {
		levelName = o.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	logFile := cfg.Log.File
	if o.logFile != "" {
		logFile = o.logFile
	}
	o.logCloser, err = logging.Setup(level, logFile)
	if err != nil {
		return err
	}

	if cfgErr != nil {
		slog.Warn("config ignored", "env", config.EnvConfig, "error", cfgErr)
		fmt.Fprintf(o.errOut, "termcap: warning: %v\n", cfgErr)
	}
	return nil
}

// customized reports whether flags change the environment's description
func (o *options) customized() bool {
	return o.configPath != "" || o.term != "" || len(o.without) > 0
}

// database resolves the description to inspect. Without flags this is the
// process-wide database; otherwise it is loaded privately. A terminal with no
// description yields an empty database, mirroring Acquire.
func (o *options) database() *capability.Database {
	if !o.customized() {
		return capability.Acquire()
	}

	loadOpts := capability.FromConfig(o.cfg)
	if o.term != "" {
		loadOpts.Term = o.term
	}
	loadOpts.Disable = append(append([]string{}, loadOpts.Disable...), o.without...)

	db, err := capability.Load(loadOpts)
	if err != nil {
		slog.Warn("capability database unavailable, using empty description", "error", err)
		return capability.Empty()
	}
	return db
}
