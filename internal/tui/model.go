package tui

import (
	"context"
	"time"

	"emojihub/internal/catalog"
	"emojihub/internal/clip"
	"emojihub/internal/favorites"
	"emojihub/internal/hub"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies which page is shown.
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenFavorites
)

// Deps are the collaborators the TUI drives.
type Deps struct {
	Source         hub.Source
	Repo           favorites.Repository
	Copier         clip.Copier
	BannerDuration time.Duration
	Start          Screen
}

// AppModel holds the TUI state.
type AppModel struct {
	deps Deps

	// Data
	Catalog   *catalog.Catalog
	Snapshot  hub.Snapshot
	Favorites *favorites.Controller
	Loading   bool
	Loaded    bool // primary list has arrived at least once
	Err       error

	// UI State
	Screen         Screen
	SelectedIdx    int // Cursor in the catalog grid
	FavSelectedIdx int // Cursor in the favorites grid
	WindowSize     tea.WindowSizeMsg
	ShowHelp       bool
	ConfirmClear   bool
	Status         string // Transient failure line, cleared on the next key

	// Search State
	InputMode   bool
	InputBuffer textinput.Model

	// Copy banner
	Copied    string
	bannerSeq int

	// Components
	Spinner spinner.Model
	Help    help.Model
	Keys    keyMap

	// Fetch lifecycle: results tagged with an older loadSeq are stale.
	loadSeq int
	cancel  context.CancelFunc
	initCmd tea.Cmd
}

// NewModel mounts the favorites set and returns the initial state.
func NewModel(ctx context.Context, deps Deps) (AppModel, error) {
	if deps.BannerDuration <= 0 {
		deps.BannerDuration = 2 * time.Second
	}
	if deps.Copier == nil {
		deps.Copier = clip.System{}
	}

	favs, err := favorites.New(ctx, deps.Repo)
	if err != nil {
		return AppModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Search emojis..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := AppModel{
		deps:        deps,
		Catalog:     catalog.New(),
		Favorites:   favs,
		Screen:      deps.Start,
		InputBuffer: ti,
		Spinner:     sp,
		Help:        help.New(),
		Keys:        defaultKeyMap(),
	}
	if m.Screen == ScreenCatalog {
		m.initCmd = m.startLoad(false)
	}
	return m, nil
}
