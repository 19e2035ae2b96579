package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"emojihub/internal/favorites"
	"emojihub/internal/hub"
	"emojihub/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgSnapshot carries the result of a catalog load.
type MsgSnapshot struct {
	Seq      int
	Snapshot hub.Snapshot
	Retry    bool
}

// MsgBannerExpired hides the copy banner if no newer copy happened.
type MsgBannerExpired struct {
	Seq int
}

// Init returns the load started by NewModel, if any.
func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

// mountCatalog starts the first load unless one already ran or is running.
func (m *AppModel) mountCatalog() tea.Cmd {
	if m.Loaded || m.Loading {
		return nil
	}
	return m.startLoad(false)
}

func (m *AppModel) startLoad(retry bool) tea.Cmd {
	m.cancelLoad()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loadSeq++
	m.Loading = true
	m.Err = nil

	seq := m.loadSeq
	src := m.deps.Source
	prev := m.Snapshot
	load := func() tea.Msg {
		if retry {
			return MsgSnapshot{Seq: seq, Snapshot: hub.Reload(ctx, src, prev), Retry: true}
		}
		return MsgSnapshot{Seq: seq, Snapshot: hub.Load(ctx, src)}
	}
	return tea.Batch(load, m.Spinner.Tick)
}

// cancelLoad abandons an in-flight load; its result will arrive stale.
func (m *AppModel) cancelLoad() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.Loading {
		m.Loading = false
		m.loadSeq++
	}
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Help.Width = msg.Width
		return m, nil

	case MsgSnapshot:
		if msg.Seq != m.loadSeq {
			slog.Debug("discarding stale catalog load", "seq", msg.Seq, "current", m.loadSeq)
			return m, nil
		}
		m.Loading = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.Snapshot = msg.Snapshot
		if msg.Snapshot.Err != nil {
			m.Err = msg.Snapshot.Err
			return m, nil
		}
		m.Loaded = true
		m.Catalog.SetEmojis(msg.Snapshot.Emojis)
		m.Catalog.SetOptions(msg.Snapshot.Categories, msg.Snapshot.Groups)
		m.clampCatalogCursor()
		return m, nil

	case MsgBannerExpired:
		if msg.Seq == m.bannerSeq {
			m.Copied = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.Status = ""

		if m.ConfirmClear {
			return m.handleConfirm(msg)
		}

		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				m.Catalog.SetQuery("")
				m.clampCatalogCursor()
				return m, nil
			case tea.KeyCtrlC:
				m.cancelLoad()
				return m, tea.Quit
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.Catalog.SetQuery(m.InputBuffer.Value())
			m.clampCatalogCursor()
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.cancelLoad()
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.ShowHelp = !m.ShowHelp
			m.Help.ShowAll = m.ShowHelp
			return m, nil
		case key.Matches(msg, m.Keys.Switch):
			return m.switchScreen()
		}

		if m.Screen == ScreenFavorites {
			return m.updateFavorites(msg)
		}
		return m.updateCatalog(msg)
	}

	return m, cmd
}

func (m AppModel) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Err != nil && !m.Loading {
		if key.Matches(msg, m.Keys.Retry) {
			cmd := m.startLoad(true)
			return m, cmd
		}
		return m, nil
	}
	if m.Loading {
		return m, nil
	}

	visible := m.Catalog.Visible()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.Keys.Search):
		m.InputMode = true
		m.InputBuffer.SetValue(m.Catalog.Criteria().Query)
		m.InputBuffer.CursorEnd()
		m.InputBuffer.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.Keys.Category):
		m.Catalog.CycleCategory(1)
	case key.Matches(msg, m.Keys.PrevCat):
		m.Catalog.CycleCategory(-1)
	case key.Matches(msg, m.Keys.Group):
		m.Catalog.CycleGroup(1)
	case key.Matches(msg, m.Keys.PrevGroup):
		m.Catalog.CycleGroup(-1)
	case key.Matches(msg, m.Keys.Clear):
		m.Catalog.ClearFilters()
		m.InputBuffer.SetValue("")
		m.SelectedIdx = 0
	case key.Matches(msg, m.Keys.Up):
		m.SelectedIdx = move(m.SelectedIdx, -cols, len(visible))
	case key.Matches(msg, m.Keys.Down):
		m.SelectedIdx = move(m.SelectedIdx, cols, len(visible))
	case key.Matches(msg, m.Keys.Left):
		m.SelectedIdx = move(m.SelectedIdx, -1, len(visible))
	case key.Matches(msg, m.Keys.Right):
		m.SelectedIdx = move(m.SelectedIdx, 1, len(visible))
	case key.Matches(msg, m.Keys.Favorite):
		if e, ok := m.selectedCatalog(); ok {
			if _, err := m.Favorites.Toggle(context.Background(), e); err != nil {
				m.Status = "Could not save favorites: " + err.Error()
			}
		}
	case key.Matches(msg, m.Keys.Copy):
		if e, ok := m.selectedCatalog(); ok {
			cmd := m.copyEmoji(e)
			return m, cmd
		}
	}

	m.clampCatalogCursor()
	return m, nil
}

func (m AppModel) updateFavorites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.Favorites.List()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.FavSelectedIdx = move(m.FavSelectedIdx, -cols, len(list))
	case key.Matches(msg, m.Keys.Down):
		m.FavSelectedIdx = move(m.FavSelectedIdx, cols, len(list))
	case key.Matches(msg, m.Keys.Left):
		m.FavSelectedIdx = move(m.FavSelectedIdx, -1, len(list))
	case key.Matches(msg, m.Keys.Right):
		m.FavSelectedIdx = move(m.FavSelectedIdx, 1, len(list))
	case key.Matches(msg, m.Keys.Remove):
		if e, ok := m.selectedFavorite(); ok {
			if err := m.Favorites.Remove(context.Background(), e); err != nil {
				m.Status = "Could not save favorites: " + err.Error()
			}
		}
	case key.Matches(msg, m.Keys.ClearAll):
		if m.Favorites.Len() > 0 {
			m.ConfirmClear = true
		}
	case key.Matches(msg, m.Keys.Copy):
		if e, ok := m.selectedFavorite(); ok {
			cmd := m.copyEmoji(e)
			return m, cmd
		}
	}

	m.clampFavoritesCursor()
	return m, nil
}

// handleConfirm resolves the clear-all prompt: only "y" confirms.
func (m AppModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ConfirmClear = false
	confirmed := msg.String() == "y" || msg.String() == "Y"
	err := m.Favorites.ClearAll(context.Background(), confirmed)
	switch {
	case err == nil:
		m.FavSelectedIdx = 0
	case errors.Is(err, favorites.ErrNotConfirmed):
	default:
		m.Status = "Could not save favorites: " + err.Error()
	}
	return m, nil
}

// switchScreen leaves the current screen and mounts the other one.
func (m AppModel) switchScreen() (tea.Model, tea.Cmd) {
	m.InputMode = false
	m.InputBuffer.Blur()

	if m.Screen == ScreenCatalog {
		m.cancelLoad()
		m.Screen = ScreenFavorites
	} else {
		m.Screen = ScreenCatalog
	}

	// Both screens mount on the shared store.
	if err := m.Favorites.Reload(context.Background()); err != nil {
		m.Status = err.Error()
	}
	m.clampFavoritesCursor()

	var cmd tea.Cmd
	if m.Screen == ScreenCatalog {
		cmd = m.mountCatalog()
	}
	return m, cmd
}

// copyEmoji copies the glyph and (re)starts the banner timer. Clipboard
// failures are logged only.
func (m *AppModel) copyEmoji(e model.Emoji) tea.Cmd {
	text := model.Glyph(e)
	if text == "" && len(e.HTMLCode) > 0 {
		text = e.HTMLCode[0]
	}
	if err := m.deps.Copier.Copy(text); err != nil {
		slog.Warn("copy failed", "name", e.Name, "err", err)
	}

	m.Copied = e.Name
	m.bannerSeq++
	seq := m.bannerSeq
	return tea.Tick(m.deps.BannerDuration, func(time.Time) tea.Msg {
		return MsgBannerExpired{Seq: seq}
	})
}

func (m AppModel) selectedCatalog() (model.Emoji, bool) {
	visible := m.Catalog.Visible()
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(visible) {
		return model.Emoji{}, false
	}
	return visible[m.SelectedIdx], true
}

func (m AppModel) selectedFavorite() (model.Emoji, bool) {
	list := m.Favorites.List()
	if m.FavSelectedIdx < 0 || m.FavSelectedIdx >= len(list) {
		return model.Emoji{}, false
	}
	return list[m.FavSelectedIdx], true
}

func (m *AppModel) clampCatalogCursor() {
	m.SelectedIdx = clamp(m.SelectedIdx, len(m.Catalog.Visible()))
}

func (m *AppModel) clampFavoritesCursor() {
	m.FavSelectedIdx = clamp(m.FavSelectedIdx, m.Favorites.Len())
}

// move shifts idx by delta, staying put when the target is out of range.
func move(idx, delta, n int) int {
	next := idx + delta
	if next < 0 || next >= n {
		return idx
	}
	return next
}

func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
