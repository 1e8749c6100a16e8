package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/game"
	"github.com/lixenwraith/breakout/logger"
	"github.com/lixenwraith/breakout/render"
	"github.com/lixenwraith/breakout/status"
)

var (
	configFlag = flag.String("config", "", "YAML config file, defaults apply when empty")
	logFlag    = flag.String("log", "", "Log file path, overrides log.path")
	levelFlag  = flag.String("level", "", "Log level, overrides log.level")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logFlag != "" {
		cfg.Log.Path = *logFlag
	}
	if *levelFlag != "" {
		cfg.Log.Level = *levelFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("crash", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			_ = log.Sync()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBREAKOUT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sound engine.SoundPlayer = engine.Silent{}
	if !*muteFlag {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer player.Close()
			sound = player
		}
	}

	metrics := status.NewRegistry()
	defer logMetrics(log, metrics)
	ctrl, err := game.New(cfg,
		game.WithLogger(log),
		game.WithSound(sound),
		game.WithImages(render.DefaultGlyphs()),
		game.WithStatus(metrics),
		game.WithLevelComplete(func(game.Summary) {
			metrics.Texts.Get(statusMessage).Set("level complete, q to quit")
		}),
	)
	if err != nil {
		return err
	}
	if err := ctrl.Start(); err != nil {
		return err
	}
	defer ctrl.Stop()

	view := render.NewScreen(screen, cfg.Field.Width, cfg.Field.Height, cfg.Field.UnitsPerPixel)
	input := newInputRouter(ctrl, view)

	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	interval := cfg.Physics.FrameInterval.Std()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fps := newFPSMeter(metrics.Floats.Get(status.RenderFPS))

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.key(ev) {
					return nil
				}
			case *tcell.EventMouse:
				input.mouse(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			view.Begin()
			if input.paused {
				ctrl.Paint(interval, view)
			} else {
				ctrl.Frame(interval, view)
			}
			fps.tick(now)
			view.Status(statusLine(metrics, input.paused))
			view.End()
		}
	}
}
