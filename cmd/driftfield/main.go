package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/driftfield/audio"
	"github.com/lixenwraith/driftfield/field"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/sim"
)

var (
	countFlag       = flag.Int("count", 0, "Particle count override (0 = governor decides)")
	variantFlag     = flag.String("variant", "pull", "Force variant: pull or swirl")
	accentFlag      = flag.String("accent", "", "Accent color as RRGGBB hex")
	constrainedFlag = flag.Bool("constrained", false, "Force the reduced-capacity profile")
	audioFlag       = flag.Bool("audio", false, "Chime on click bursts")
	fpsFlag         = flag.Int("fps", 0, "Tick rate (0 = default)")
)

// wheelStep is the scroll depth per wheel notch, in field radii
const wheelStep = 0.12

func main() {
	// Restore the terminal before reporting if a frame panics
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ndriftfield crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := sim.Config{
		ParticleOverride: *countFlag,
		Constrained:      *constrainedFlag,
		TickRate:         *fpsFlag,
	}

	switch *variantFlag {
	case "pull":
		cfg.Variant = field.VariantPull
	case "swirl":
		cfg.Variant = field.VariantSwirl
	default:
		fmt.Fprintf(os.Stderr, "unknown variant %q (want pull or swirl)\n", *variantFlag)
		os.Exit(2)
	}

	if *accentFlag != "" {
		accent, err := render.ParseHex(*accentFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		cfg.AccentColor = accent
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	if *audioFlag {
		// Non-fatal: a nil chime is silent
		cfg.Chime = audio.NewChime()
		defer cfg.Chime.Close()
	}

	loop := sim.New(screen, cfg)
	loop.Start()
	defer loop.Stop()

	variant := cfg.Variant
	var lastButtons tcell.ButtonMask

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				loop.TogglePause()
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'v':
				if variant == field.VariantPull {
					variant = field.VariantSwirl
				} else {
					variant = field.VariantPull
				}
				loop.SetVariant(variant)
			}

		case *tcell.EventMouse:
			// Input handlers only store targets; all motion math happens
			// inside the tick
			ptr := loop.Pointer()
			x, y := ev.Position()
			ptr.SetTarget(float64(x), float64(y))

			buttons := ev.Buttons()
			if buttons&tcell.WheelUp != 0 {
				ptr.AddScroll(wheelStep)
			}
			if buttons&tcell.WheelDown != 0 {
				ptr.AddScroll(-wheelStep)
			}
			if buttons&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0 {
				ptr.TriggerBurst()
			}
			lastButtons = buttons

		case *tcell.EventResize:
			w, h := ev.Size()
			loop.NotifyResize(w, h)

		case nil:
			// Screen finalized underneath us
			return
		}
	}
}
