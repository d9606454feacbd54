package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/faizmokh/mdorg/internal/clocktable"
	"github.com/faizmokh/mdorg/internal/config"
	"github.com/faizmokh/mdorg/internal/files"
	"github.com/faizmokh/mdorg/internal/logging"
	"github.com/faizmokh/mdorg/internal/outline"
	"github.com/faizmokh/mdorg/internal/timestamp"
)

// app holds the collaborators shared by every command. It is filled in by
// the root command's pre-run once flags are parsed.
type app struct {
	store     *config.Store
	cfg       config.Config
	logger    *zap.Logger
	manager   *files.Manager
	editor    *timestamp.Editor
	extractor clocktable.Extractor
	writer    *outline.Writer
}

func (a *app) init(verbose bool) error {
	cfg, err := a.store.Config()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	return a.wire(cfg, logger)
}

func (a *app) wire(cfg config.Config, logger *zap.Logger) error {
	manager, err := files.NewManager(cfg.WorkspaceDir, logger)
	if err != nil {
		return err
	}

	weekdays, ok := timestamp.LookupWeekdays(cfg.Locale)
	if !ok {
		weekdays = timestamp.Russian
	}

	a.cfg = cfg
	a.logger = logger
	a.manager = manager
	a.editor = timestamp.NewEditor(weekdays)
	a.extractor = &clocktable.CommandExtractor{Path: cfg.ExtractorPath, Logger: logger.Named("extractor")}
	a.writer = outline.NewWriter(manager, logger)
	return nil
}
