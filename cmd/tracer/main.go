package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tracer/audio"
	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/config"
	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/core"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/events"
	"github.com/lixenwraith/tracer/input"
	"github.com/lixenwraith/tracer/physics"
	"github.com/lixenwraith/tracer/render"
	"github.com/lixenwraith/tracer/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/tracer.log")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag || cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Engine goroutine panics must hand the terminal back before printing
	core.SetResetHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	// Audio is optional, the game runs silent on failure
	var cues *audio.Cues
	observer := engine.Observer(engine.NopObserver{})
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err == nil {
			defer sm.Cleanup()
			cues = audio.NewSpeakerCues(sm, cfg.Audio.Volume)
			observer = cues
		} else {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}

	reg := status.NewRegistry()
	c, err := character.New(cfg, observer, character.WithRegistry(reg))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Character: %v\n", err)
		os.Exit(1)
	}

	queue := events.NewEventQueue()
	inputMachine := input.NewMachine(queue)
	collector := input.NewCollector()
	body := &physics.Body{Grounded: true}
	params := physics.DefaultParams()

	// view is the last published frame, written by the tick goroutine and read by the renderer
	var (
		viewMu sync.Mutex
		view   = render.View{Snapshot: c.Snapshot(), Body: *body, Metrics: reg}
	)

	statOverwritten := reg.Ints.Get(status.InputOverwritten)
	tick := func(dt time.Duration) {
		frame := collector.Fold(queue, body.Forward())
		statOverwritten.Store(int64(queue.Dropped()))
		out := c.Step(dt, frame)
		body.Apply(out, params, dt)

		viewMu.Lock()
		view.Snapshot = c.Snapshot()
		view.Body = *body
		viewMu.Unlock()
	}

	scheduler, updateDone := engine.NewClockScheduler(cfg.Tick, tick, reg)
	scheduler.Start()
	defer scheduler.Stop()

	hud := render.NewHUD()
	draw := func() {
		viewMu.Lock()
		v := view
		viewMu.Unlock()
		v.Paused = scheduler.IsPaused()
		v.Muted = cues == nil || cues.Muted()
		hud.Draw(screen, v)
		screen.Show()
	}

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	log.Printf("tracer started, character %s", c.ID())
	draw()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent := inputMachine.Process(ev)
				switch intent.Type {
				case input.IntentQuit:
					log.Printf("quit after %d ticks", scheduler.TickCount())
					return
				case input.IntentTogglePause:
					if scheduler.IsPaused() {
						scheduler.Resume()
					} else {
						scheduler.Pause()
					}
				case input.IntentToggleMute:
					if cues != nil {
						cues.ToggleMute()
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-updateDone:
			draw()

		case <-frameTicker.C:
			// Keeps pause state and resizes visible while no ticks arrive
			if scheduler.IsPaused() {
				draw()
			}
		}
	}
}
