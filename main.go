package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mveldt/chime/internal/auth"
	"github.com/mveldt/chime/internal/config"
	"github.com/mveldt/chime/internal/errmsg"
	"github.com/mveldt/chime/internal/meta"
	"github.com/mveldt/chime/internal/notify"
	"github.com/mveldt/chime/internal/player"
	"github.com/mveldt/chime/internal/session"
	"github.com/mveldt/chime/internal/store"
	"github.com/mveldt/chime/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = store.DefaultPath()
		if err != nil {
			return err
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	engine := player.New()
	notifier := notify.New()
	sess := session.New(engine, meta.NewResolver(), notifier)

	app := ui.NewApp(engine, sess, st.Favorites(), notifier, auth.New(st.Users()))
	app.InitialVolume = cfg.Volume

	// A path argument (or the configured default folder) is opened after login.
	switch {
	case len(os.Args) > 1:
		app.StartPath = os.Args[1]
		if info, err := os.Stat(app.StartPath); err == nil && info.IsDir() {
			app.StartIsFolder = true
		}
	case cfg.DefaultFolder != "":
		app.StartPath = cfg.DefaultFolder
		app.StartIsFolder = true
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
