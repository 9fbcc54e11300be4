// ABOUTME: CLI entry point for the zoomview image browser
// ABOUTME: Parses flags, loads config and theme, reads images concurrently, runs the app

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the viewer.
	_ "github.com/mauromedda/zoomview-go/internal/termfix"

	"github.com/mauromedda/zoomview-go/internal/config"
	zlog "github.com/mauromedda/zoomview-go/internal/log"
	"github.com/mauromedda/zoomview-go/internal/theme"
	"github.com/mauromedda/zoomview-go/pkg/termimg"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("zoomview %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, resolves the theme, reads the images, and hands
// control to the interactive app.
func run(args cliArgs) error {
	if args.verbose {
		zlog.SetLevel(zlog.LevelDebug)
	}

	paths := args.remaining()
	if len(paths) == 0 {
		return fmt.Errorf("usage: zoomview [flags] image...")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyCLIOverrides(cfg, args)
	applyLogLevel(cfg.LogLevel)
	resolveTheme(cfg.Theme)

	images, err := loadAll(context.Background(), paths)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	app := newApp(images, cfg, width, height)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

// applyCLIOverrides lets flags win over file-based settings.
func applyCLIOverrides(cfg *config.Settings, args cliArgs) {
	if args.margin > 0 {
		cfg.ZoomMargin = args.margin
	}
	if args.noReplace {
		replace := false
		cfg.ReplaceImage = &replace
	}
	if args.respectMax {
		cfg.RespectMaxDimension = true
	}
	if args.theme != "" {
		cfg.Theme = args.theme
	}
	if args.verbose {
		cfg.LogLevel = "debug"
	}
}

func applyLogLevel(level string) {
	switch level {
	case "debug":
		zlog.SetLevel(zlog.LevelDebug)
	case "warn":
		zlog.SetLevel(zlog.LevelWarn)
	case "error":
		zlog.SetLevel(zlog.LevelError)
	}
}

// resolveTheme activates a builtin theme or a custom JSON theme file.
// Unknown names fall back to the default theme with a warning.
func resolveTheme(name string) {
	if name == "" {
		return
	}
	if th := theme.Builtin(name); th != nil {
		theme.Set(th)
		return
	}
	path := filepath.Join(config.ThemesDir(), name+".json")
	th, err := theme.LoadFile(path)
	if err != nil {
		zlog.Warn("theme %q not found, using default: %v", name, err)
		return
	}
	theme.Set(th)
}

// imageFile is one image read from disk with its probed dimensions.
type imageFile struct {
	path string
	data []byte
	dim  termimg.Dimensions
}

// loadAll reads and probes all images concurrently.
func loadAll(ctx context.Context, paths []string) ([]imageFile, error) {
	images := make([]imageFile, len(paths))
	g, gCtx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			dim, err := termimg.GetDimensions(data)
			if err != nil {
				return fmt.Errorf("probing %s: %w", path, err)
			}
			images[i] = imageFile{path: path, data: data, dim: dim}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
