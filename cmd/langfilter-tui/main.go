package main

import (
	"os"

	"langfilter/models"
	"langfilter/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

func main() {
	// Keep the terminal clean: only errors reach the log
	logger.SetLogLevel("error")

	if err := run(); err != nil {
		logger.LogErr(err, "language filter terminal exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := models.LoadConfig()
	if err != nil {
		return err
	}

	catalog, err := models.LoadCatalog(cfg.LanguagesFile)
	if err != nil {
		return serr.Wrap(err, "failed to load language catalog")
	}

	if _, err := tea.NewProgram(tui.New(catalog), tea.WithAltScreen()).Run(); err != nil {
		return serr.Wrap(err, "terminal program failed")
	}
	return nil
}
