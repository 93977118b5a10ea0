package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-pixelclock/internal/calib"
	"github.com/coreman2200/funtimes-pixelclock/internal/clock"
	"github.com/coreman2200/funtimes-pixelclock/internal/config"
	"github.com/coreman2200/funtimes-pixelclock/internal/led"
	"github.com/coreman2200/funtimes-pixelclock/internal/loop"
)

func main() {
	// ---- Flags (override config.yaml) ----
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		driver     = flag.String("driver", "", "driver: ws281x | nrz | console | term | sim")
		fps        = flag.Int("fps", 0, "target frames per second (0 keeps the config value)")
		pattern    = flag.String("test", "", "show a calibration pattern and exit: index_sweep | rgb_channels | quarters")
		level      = flag.String("log-level", "info", "log level: debug | info | warn | error")
		clearExit  bool
	)
	flag.BoolVar(&clearExit, "c", false, "clear the display on exit")
	flag.BoolVar(&clearExit, "clear", false, "clear the display on exit")
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(*level); err != nil {
		log.Warn().Err(err).Str("level", *level).Msg("bad log level; using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}

	// ---- Config ----
	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", *configPath).Msg("no config file; using defaults")
		cfg = config.Default()
	} else if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if clearExit {
		cfg.ClearOnExit = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad settings")
	}

	kind := calib.None
	if *pattern != "" {
		if kind, err = calib.ParseKind(*pattern); err != nil {
			log.Fatal().Err(err).Msg("bad -test")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stderr := log.Logger
	if err := run(ctx, cancel, cfg, kind); err != nil {
		// the terminal preview is closed by now
		log.Logger = stderr
		log.Fatal().Err(err).Msg("pixelclock stopped")
	}
}

// openStrip is swapped out in tests.
var openStrip = led.Open

// run opens the strip, renders until ctx is done and closes the strip.
func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, kind calib.Kind) error {
	r, err := cfg.BuildRing()
	if err != nil {
		return err
	}

	opts := cfg.HWOptions()
	opts.Ring = r
	opts.OnQuit = cancel

	driver := cfg.Driver
	strip, err := openStrip(driver, opts)
	if err != nil {
		if !cfg.Fallback || driver == led.DriverConsole {
			return err
		}
		log.Warn().Err(err).Str("driver", driver).Msg("strip init failed; falling back to console")
		driver = led.DriverConsole
		if strip, err = openStrip(driver, opts); err != nil {
			return err
		}
	}
	if driver == led.DriverTerm {
		// the preview owns the terminal
		log.Logger = log.Output(io.Discard)
	} else {
		fmt.Println("Press Ctrl-C to quit.")
		if !cfg.ClearOnExit {
			fmt.Println("Use -c to clear the display on exit.")
		}
	}
	defer func() {
		if cerr := strip.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("strip close")
		}
	}()

	var renderer loop.Renderer
	if kind != calib.None {
		renderer = calib.NewRunner(calib.Plan{Kind: kind, Hold: cfg.Calib.HoldFrames}, r, strip)
		log.Info().Str("pattern", string(kind)).Int("hold_frames", cfg.Calib.HoldFrames).Msg("calibration")
	} else {
		face, err := clock.NewFace(r, strip, cfg.Palette())
		if err != nil {
			return err
		}
		renderer = face
	}

	log.Info().
		Str("driver", driver).
		Int("pixels", r.Len()).
		Int("offset", r.Offset()).
		Bool("reversed", r.Reversed()).
		Int("fps", cfg.FPS).
		Msg("pixelclock starting")

	return loop.NewLooper(renderer, cfg.FPS, cfg.ClearOnExit).Run(ctx)
}
