package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dgallion1/planview/internal/artifact"
	"github.com/dgallion1/planview/internal/config"
	"github.com/dgallion1/planview/internal/readmodel"
)

type commandContext struct {
	rootFlag   *string
	configFlag *string
	jsonFlag   *bool

	model *readmodel.Model
}

func newCommandContext(rootFlag, configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{rootFlag: rootFlag, configFlag: configFlag, jsonFlag: jsonFlag}
}

// ensureModel loads configuration and indexes the project tree once.
func (c *commandContext) ensureModel() (*readmodel.Model, error) {
	if c.model != nil {
		return c.model, nil
	}

	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	if *c.rootFlag != "" {
		cfg.Root = *c.rootFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	idx, err := artifact.Load(os.DirFS(cfg.Root), artifact.Patterns, log)
	if err != nil {
		return nil, err
	}
	c.model = readmodel.New(idx, cfg.AssetPrefix, log)
	return c.model, nil
}

// wantJSON is true when --json is set or stdout is not a terminal.
func (c *commandContext) wantJSON(cmd *cobra.Command) bool {
	if *c.jsonFlag {
		return true
	}
	return !isTerminal(cmd.OutOrStdout())
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
