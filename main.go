package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"newsdigest/internal/app"
	"newsdigest/internal/config"
	"newsdigest/internal/logging"
	"newsdigest/sdk/news"
)

func main() {
	cliApp := &cli.App{
		Name:  "newsdigest",
		Usage: "Terminal client for the news summary service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "Backend base URL (overrides " + config.EnvBackendURL + ")",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file to load before reading the environment",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Log file path (overrides " + config.EnvLogFile + ")",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}
	if v := c.String("backend"); v != "" {
		cfg.BackendURL = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.LogFile = v
	}
	if cfg.SessionCookie == "" {
		return fmt.Errorf("%s is required: log in through the web app and copy the session cookie", config.EnvSessionCookie)
	}

	logger := logging.New(cfg.LogFile)
	defer logger.Sync()
	logger.Info("starting", zap.String("backend", cfg.BackendURL))

	prefs, err := config.LoadPreferences()
	if err != nil {
		logger.Warn("preferences unreadable, using defaults", zap.Error(err))
		prefs = config.DefaultPreferences()
	}

	client := news.NewClient(cfg.BackendURL, news.WithSessionCookie(cfg.SessionCookie))

	p := tea.NewProgram(app.New(client, logger, prefs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
