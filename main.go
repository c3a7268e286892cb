package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"extraction/pkg/game/audio"
	"extraction/pkg/game/config"
	"extraction/pkg/game/devtools"
	"extraction/pkg/game/gameplay"
	"extraction/pkg/game/locale"
	"extraction/pkg/game/renderer"
	ebitenrenderer "extraction/pkg/game/renderer/ebiten"
	"extraction/pkg/game/renderer/tui"
)

// flags holds the command line overrides
type flags struct {
	envFile    string
	renderer   string
	level      int
	maxLevel   int
	seed       int64
	volume     float64
	mute       bool
	logLevel   string
	logFile    string
	lang       string
	tickRate   int
	dumpLevel  int
	listLocale bool
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.envFile, "env", ".env", "environment file to load")
	flag.StringVar(&f.renderer, "renderer", config.RendererEbiten, "frontend: ebiten or tui")
	flag.IntVar(&f.level, "level", 1, "starting level (for developer testing)")
	flag.IntVar(&f.maxLevel, "max-level", 10, "number of levels in a campaign")
	flag.Int64Var(&f.seed, "seed", 0, "base maze seed, 0 for a random campaign")
	flag.Float64Var(&f.volume, "volume", 0.3, "master volume 0..1")
	flag.BoolVar(&f.mute, "mute", false, "start with sound muted")
	flag.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flag.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	flag.StringVar(&f.lang, "lang", locale.DefaultLanguage, "UI language")
	flag.IntVar(&f.tickRate, "tick-rate", 30, "terminal frames per second")
	flag.IntVar(&f.dumpLevel, "dump", 0, "print the maze for this level and exit")
	flag.BoolVar(&f.listLocale, "languages", false, "list available UI languages and exit")
	flag.Parse()
	return f
}

// apply overlays flags that were set on the command line onto cfg
func (f *flags) apply(cfg *config.Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "renderer":
			cfg.Renderer = f.renderer
		case "level":
			cfg.StartLevel = f.level
		case "max-level":
			cfg.MaxLevel = f.maxLevel
		case "seed":
			cfg.Seed = f.seed
		case "volume":
			cfg.Volume = f.volume
		case "mute":
			cfg.Muted = f.mute
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-file":
			cfg.LogFile = f.logFile
		case "lang":
			cfg.Language = f.lang
		case "tick-rate":
			cfg.TickRate = f.tickRate
		}
	})
}

// setupLogging configures the default logger. The terminal frontend owns the
// screen, so without a log file its logs are discarded.
func setupLogging(cfg config.Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	case cfg.Renderer == config.RendererTUI:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return nil, nil
}

// dump prints the maze for one level of a seeded campaign
func dump(cfg config.Config, level int) error {
	if level < 1 || level > cfg.MaxLevel {
		return fmt.Errorf("dump level %d outside 1..%d", level, cfg.MaxLevel)
	}
	g := gameplay.NewGame(cfg.MaxLevel, level, cfg.Seed)
	gameplay.StartGame(g)
	return devtools.DumpLevel(os.Stdout, g)
}

func newRenderer(cfg config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererTUI {
		return tui.New(cfg.TickRate)
	}
	return ebitenrenderer.New()
}

func main() {
	f := parseFlags()

	if f.listLocale {
		for _, l := range locale.Languages() {
			fmt.Println(l)
		}
		return
	}

	cfg, err := config.Load(f.envFile)
	if err != nil {
		log.Fatal("could not load config", "err", err)
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", "err", err)
	}
	config.SetCurrent(cfg)

	closer, err := setupLogging(cfg)
	if err != nil {
		log.Fatal("could not set up logging", "err", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := locale.Init(cfg.Language); err != nil {
		log.Warn("falling back to default language", "lang", cfg.Language, "err", err)
		if err := locale.Init(locale.DefaultLanguage); err != nil {
			log.Fatal("could not load translations", "err", err)
		}
	}

	if f.dumpLevel > 0 {
		if err := dump(cfg, f.dumpLevel); err != nil {
			log.Fatal("dump failed", "err", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := gameplay.NewGame(cfg.MaxLevel, cfg.StartLevel, cfg.Seed)
	log.Info("game created", "session", g.ID.String(), "renderer", cfg.Renderer, "seed", cfg.Seed)

	scheduler := gameplay.NewScheduler(g)

	sound := audio.NewSystem(audio.Options{Volume: cfg.Volume, Muted: cfg.Muted})
	if err := sound.Init(ctx); err != nil {
		log.Warn("audio disabled", "err", err)
	}
	defer sound.Close()
	scheduler.AddListener(sound)
	scheduler.SetVolumeSource(sound)

	r := newRenderer(cfg)
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		log.Fatal("could not initialize renderer", "renderer", cfg.Renderer, "err", err)
	}
	if err := r.Run(ctx, scheduler); err != nil {
		log.Fatal("renderer stopped", "err", err)
	}
	log.Info("game exited", "session", g.ID.String())
}
