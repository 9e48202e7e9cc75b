// internal/ui/playerview.go
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mveldt/chime/internal/notify"
	"github.com/mveldt/chime/internal/player"
	"github.com/mveldt/chime/internal/session"
	"github.com/mveldt/chime/internal/store"
)

// overlay selects which panel covers the player screen.
type overlay int

const (
	overlayNone overlay = iota
	overlayFavorites
	overlayProperties
	overlayOpenFile
	overlayOpenFolder
)

const seekStep = 5 * time.Second

// PlayerModel renders the session and routes key presses to it.
type PlayerModel struct {
	sess      *session.Session
	favorites *store.FavoritesStore
	notifier  *notify.Notifier
	userID    int64

	overlay   overlay
	pathInput textinput.Model

	favEntries []store.FavoriteEntry
	favCursor  int

	width  int
	height int
}

// NewPlayer creates the player screen for a logged-in user.
func NewPlayer(sess *session.Session, favorites *store.FavoritesStore, notifier *notify.Notifier, userID int64) PlayerModel {
	input := textinput.New()
	input.Placeholder = "path"

	return PlayerModel{
		sess:      sess,
		favorites: favorites,
		notifier:  notifier,
		userID:    userID,
		pathInput: input,
	}
}

func (m PlayerModel) Update(msg tea.Msg) (PlayerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.sess.Tick()
		return m, TickCmd()

	case tea.KeyMsg:
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m PlayerModel) updateKeys(msg tea.KeyMsg) (PlayerModel, tea.Cmd) {
	switch msg.String() {
	case " ":
		_ = m.sess.Toggle()
	case "n":
		_ = m.sess.Next()
	case "b":
		_ = m.sess.Previous()
	case "s":
		m.sess.Stop()
	case "right":
		snap := m.sess.Snapshot()
		m.sess.SeekTo(snap.Position + seekStep)
	case "left":
		snap := m.sess.Snapshot()
		m.sess.SeekTo(snap.Position - seekStep)
	case "+", "=":
		m.sess.SetVolume(m.sess.Volume() + 5)
	case "-":
		m.sess.SetVolume(m.sess.Volume() - 5)
	case "l":
		m.likeCurrent()
	case "d":
		m.dislikeCurrent()
	case "f":
		m.openFavorites()
	case "i":
		if _, ok := m.sess.CurrentTrack(); !ok {
			m.sess.SetError(session.NoFileMessage)
			return m, nil
		}
		m.overlay = overlayProperties
	case "o":
		m.overlay = overlayOpenFile
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink
	case "O":
		m.overlay = overlayOpenFolder
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m PlayerModel) updateOverlay(msg tea.KeyMsg) (PlayerModel, tea.Cmd) {
	switch m.overlay {
	case overlayOpenFile, overlayOpenFolder:
		switch msg.String() {
		case "esc":
			m.overlay = overlayNone
			m.pathInput.Blur()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			isFolder := m.overlay == overlayOpenFolder
			m.overlay = overlayNone
			m.pathInput.Blur()
			if isFolder {
				_ = m.sess.OpenFolder(path)
			} else {
				_ = m.sess.OpenFile(path)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd

	case overlayFavorites:
		switch msg.String() {
		case "esc", "f":
			m.overlay = overlayNone
		case "up", "k":
			if m.favCursor > 0 {
				m.favCursor--
			}
		case "down", "j":
			if m.favCursor < len(m.favEntries)-1 {
				m.favCursor++
			}
		case "enter":
			m.playFavorites()
		case "x":
			m.deleteFavorite()
		}
		return m, nil

	case overlayProperties:
		m.overlay = overlayNone
		return m, nil
	}
	return m, nil
}

func (m *PlayerModel) likeCurrent() {
	track, ok := m.sess.CurrentTrack()
	if !ok {
		return
	}
	snap := m.sess.Snapshot()
	if err := m.favorites.Save(m.userID, snap.Title, snap.Author, track.Path); err != nil {
		m.sess.SetError(err.Error())
	}
}

func (m *PlayerModel) dislikeCurrent() {
	track, ok := m.sess.CurrentTrack()
	if !ok {
		return
	}
	if err := m.favorites.Delete(track.Path); err != nil {
		m.sess.SetError(err.Error())
	}
}

func (m *PlayerModel) openFavorites() {
	entries, err := m.favorites.ListAll(m.userID)
	if err != nil {
		m.sess.SetError(err.Error())
		return
	}
	m.favEntries = entries
	m.favCursor = 0
	m.overlay = overlayFavorites
}

// playFavorites pushes the favorites list into the session as the playlist
// and starts playback at the selected entry.
func (m *PlayerModel) playFavorites() {
	if len(m.favEntries) == 0 {
		return
	}
	paths := make([]string, len(m.favEntries))
	for i, e := range m.favEntries {
		paths[i] = e.FilePath
	}
	m.overlay = overlayNone
	_ = m.sess.PlayPaths(paths, m.favCursor)
}

func (m *PlayerModel) deleteFavorite() {
	if m.favCursor >= len(m.favEntries) {
		return
	}
	entry := m.favEntries[m.favCursor]
	if err := m.favorites.Delete(entry.FilePath); err != nil {
		m.sess.SetError(err.Error())
		return
	}
	m.favEntries = append(m.favEntries[:m.favCursor], m.favEntries[m.favCursor+1:]...)
	if m.favCursor >= len(m.favEntries) && m.favCursor > 0 {
		m.favCursor--
	}
}

func (m PlayerModel) View() string {
	snap := m.sess.Snapshot()

	bg := lipgloss.NewStyle().Background(lipgloss.Color(snap.Background.Hex()))
	dim := bg.Foreground(lipgloss.Color("250"))

	var b strings.Builder

	switch m.overlay {
	case overlayFavorites:
		b.WriteString(m.viewFavorites())
	case overlayProperties:
		b.WriteString(m.viewProperties(snap))
	case overlayOpenFile:
		b.WriteString("Open file:\n" + m.pathInput.View())
	case overlayOpenFolder:
		b.WriteString("Open folder:\n" + m.pathInput.View())
	default:
		b.WriteString(m.viewPlayer(snap, bg, dim))
	}

	if msg := m.notifier.Message(); msg != "" {
		b.WriteString("\n" + loginErrStyle.Render(msg))
	}
	return b.String()
}

func (m PlayerModel) viewPlayer(snap session.Snapshot, bg, dim lipgloss.Style) string {
	var b strings.Builder

	if snap.HasTrack {
		b.WriteString(bg.Bold(true).Render(snap.Title) + "\n")
		b.WriteString(dim.Render(snap.Author) + "\n\n")
		b.WriteString(progressLine(snap, 40) + "\n")
		b.WriteString(fmt.Sprintf("%s / %s", snap.Elapsed, snap.DurationLabel))
		if snap.QueueLen > 1 {
			b.WriteString(fmt.Sprintf("   track %d/%d", snap.QueueIndex+1, snap.QueueLen))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(dim.Render("No track loaded") + "\n")
	}

	b.WriteString(fmt.Sprintf("\n%s  vol %d%%\n", stateLabel(snap.State), snap.Volume))
	b.WriteString(loginHelpStyle.Render(
		"space: play/pause · n/b: next/prev · s: stop · ←/→: seek · o/O: open file/folder\n" +
			"l/d: like/dislike · f: favorites · i: properties · q: quit"))
	return b.String()
}

func (m PlayerModel) viewFavorites() string {
	if len(m.favEntries) == 0 {
		return "Favorites\n\n(empty)\n\n" + loginHelpStyle.Render("esc: back")
	}
	var b strings.Builder
	b.WriteString("Favorites\n\n")
	for i, e := range m.favEntries {
		prefix := "  "
		if i == m.favCursor {
			prefix = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s — %s\n", prefix, e.Title, e.Author))
	}
	b.WriteString("\n" + loginHelpStyle.Render("enter: play · x: remove · esc: back"))
	return b.String()
}

func (m PlayerModel) viewProperties(snap session.Snapshot) string {
	size := ""
	if snap.FileSize > 0 {
		size = humanize.Bytes(uint64(snap.FileSize))
	}
	return fmt.Sprintf(
		"Properties\n\nTitle:  %s\nAuthor: %s\nAlbum:  %s\nGenre:  %s\nYear:   %s\nLength: %s\nFile:   %s\nSize:   %s\n\n%s",
		snap.Title, snap.Author, snap.Album, snap.Genre, snap.Year,
		snap.DurationLabel, snap.Path, size,
		loginHelpStyle.Render("any key: back"),
	)
}

// progressLine renders the position slider bound to [0, duration].
func progressLine(snap session.Snapshot, width int) string {
	if snap.Duration <= 0 {
		return strings.Repeat("─", width)
	}
	filled := int(int64(width) * int64(snap.Position) / int64(snap.Duration))
	if filled > width {
		filled = width
	}
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

func stateLabel(s player.State) string {
	switch s {
	case player.Playing:
		return "▶ playing"
	case player.Paused:
		return "⏸ paused"
	default:
		return "⏹ stopped"
	}
}
