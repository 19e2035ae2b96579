package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"emojihub/internal/catalog"
	"emojihub/internal/config"
	"emojihub/internal/favorites"
	"emojihub/internal/hub"
	"emojihub/internal/model"
	"emojihub/internal/tui"
	"emojihub/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(cfg config.Config, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      cfg.UpdateOwner,
		Repository: cfg.UpdateRepo,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		slog.Debug("update check failed", "err", err)
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("👉 Download it from https://github.com/%s/%s/releases\n", cfg.UpdateOwner, cfg.UpdateRepo)
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emojihub [options]\n\n")
		fmt.Fprintf(os.Stderr, "emojihub browses the EmojiHub catalog and keeps a list of favorite emojis.\n")
		fmt.Fprintf(os.Stderr, "Search by name, filter by category and group, copy glyphs to the clipboard.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  emojihub                        # Start TUI mode on the catalog\n")
		fmt.Fprintf(os.Stderr, "  emojihub -f                     # Start TUI mode on your favorites\n")
		fmt.Fprintf(os.Stderr, "  emojihub --web --addr :9000     # Serve the catalog in a browser\n")
		fmt.Fprintf(os.Stderr, "  emojihub -j -q heart            # Print matching emojis as JSON\n")
		fmt.Fprintf(os.Stderr, "  emojihub --store sqlite         # Keep favorites in an SQLite database\n")
	}

	configFlag := pflag.String("config", "", "Path to a JSONC config file (default "+config.DefaultFile()+")")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	addrFlag := pflag.String("addr", "", "Listen address for Web Mode (default :8080)")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the filtered catalog as JSON")
	queryFlag := pflag.StringP("query", "q", "", "Name search for --json")
	categoryFlag := pflag.String("category", model.All, "Category filter for --json")
	groupFlag := pflag.String("group", model.All, "Group filter for --json")
	favoritesFlag := pflag.BoolP("favorites", "f", false, "Open the TUI on the favorites screen")
	storeFlag := pflag.String("store", "", "Favorites store: file, sqlite or memory")
	storePathFlag := pflag.String("store-path", "", "Location of the favorites store")
	apiFlag := pflag.String("api", "", "Base URL of the emoji API")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("emojihub version %s\n", model.Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *storeFlag != "" {
		cfg.UseStore(*storeFlag)
	}
	if *storePathFlag != "" {
		cfg.StorePath = *storePathFlag
	}
	if *apiFlag != "" {
		cfg.APIBaseURL = *apiFlag
	}
	if *addrFlag != "" {
		cfg.WebAddr = *addrFlag
	}

	interactive := !*webFlag && !*jsonFlag && !*updateFlag
	closeLog := setupLogging(cfg, interactive)
	defer closeLog()

	if *updateFlag {
		checkUpdate(cfg, model.Version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := hub.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	if *jsonFlag {
		criteria := model.Criteria{Query: *queryFlag, Category: *categoryFlag, Group: *groupFlag}
		if err := runJsonMode(ctx, client, criteria); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	repo, err := favorites.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening favorites store: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()
	slog.Debug("favorites store", "kind", cfg.Store, "path", cfg.StorePath)

	if *webFlag {
		if err := runWebMode(ctx, cfg, client, repo); err != nil {
			slog.Error("web server stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	start := tui.ScreenCatalog
	if *favoritesFlag {
		start = tui.ScreenFavorites
	}
	// Default: TUI
	if err := runTuiMode(ctx, cfg, client, repo, start); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// setupLogging keeps the alternate screen clean: in TUI mode logs only go to
// the configured log file.
func setupLogging(cfg config.Config, interactive bool) func() {
	var out io.Writer = os.Stderr
	closer := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFile, err)
		} else {
			out = f
			closer = func() { f.Close() }
		}
	} else if interactive {
		out = io.Discard
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level()})
	slog.SetDefault(slog.New(handler))
	return closer
}

func runJsonMode(ctx context.Context, client *hub.Client, criteria model.Criteria) error {
	emojis, err := client.FetchAll(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog.Filter(emojis, criteria))
}

func runWebMode(ctx context.Context, cfg config.Config, client *hub.Client, repo favorites.Repository) error {
	srv, err := web.NewServer(client, repo)
	if err != nil {
		return err
	}
	srv.Load(ctx)
	return web.StartServer(ctx, cfg.WebAddr, srv)
}

func runTuiMode(ctx context.Context, cfg config.Config, client *hub.Client, repo favorites.Repository, start tui.Screen) error {
	m, err := tui.NewModel(ctx, tui.Deps{
		Source:         client,
		Repo:           repo,
		BannerDuration: cfg.BannerDuration,
		Start:          start,
	})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
