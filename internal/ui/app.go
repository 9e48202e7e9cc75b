// internal/ui/app.go
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mveldt/chime/internal/auth"
	"github.com/mveldt/chime/internal/notify"
	"github.com/mveldt/chime/internal/player"
	"github.com/mveldt/chime/internal/session"
	"github.com/mveldt/chime/internal/store"
)

type screen int

const (
	screenLogin screen = iota
	screenPlayer
)

// App is the top-level model: login form first, then the player.
type App struct {
	engine    player.Interface
	sess      *session.Session
	favorites *store.FavoritesStore
	notifier  *notify.Notifier

	screen screen
	login  LoginModel
	player PlayerModel

	// StartPath is opened right after login (file or folder), if set.
	StartPath     string
	StartIsFolder bool
	InitialVolume int
	startOpened   bool
}

// NewApp wires the top-level model.
func NewApp(engine player.Interface, sess *session.Session, favorites *store.FavoritesStore, notifier *notify.Notifier, authSvc *auth.Service) App {
	return App{
		engine:        engine,
		sess:          sess,
		favorites:     favorites,
		notifier:      notifier,
		screen:        screenLogin,
		login:         NewLogin(authSvc),
		InitialVolume: 100,
	}
}

func (a App) Init() tea.Cmd {
	return a.login.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.engine.Stop()
			return a, tea.Quit
		case "q":
			if a.screen == screenPlayer && a.player.overlay == overlayNone {
				a.engine.Stop()
				return a, tea.Quit
			}
		}

	case LoggedInMsg:
		a.screen = screenPlayer
		a.player = NewPlayer(a.sess, a.favorites, a.notifier, msg.User.ID)
		a.sess.SetVolume(a.InitialVolume)

		cmds := []tea.Cmd{TickCmd(), WaitFinishedCmd(a.engine)}
		if a.StartPath != "" && !a.startOpened {
			a.startOpened = true
			if a.StartIsFolder {
				_ = a.sess.OpenFolder(a.StartPath)
			} else {
				_ = a.sess.OpenFile(a.StartPath)
			}
		}
		return a, tea.Batch(cmds...)

	case FinishedMsg:
		a.sess.HandleFinished()
		return a, WaitFinishedCmd(a.engine)
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenLogin:
		a.login, cmd = a.login.Update(msg)
	case screenPlayer:
		a.player, cmd = a.player.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.screen == screenLogin {
		return a.login.View()
	}
	return a.player.View()
}
