package main

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/marisvali/fireworks/fireworks"
)

var hintStyle = tcell.StyleDefault.Background(tcell.ColorBlack).
	Foreground(tcell.ColorGray)

const hint = "click: launch  space: ignite  a: auto play  s: screenshot  q: quit"

// App runs a show inside a terminal. Every terminal cell shows two pixels of
// the raster, one above the other: the upper half block character takes the
// color of the top pixel and the cell background the color of the bottom one.
type App struct {
	fireworks.Config
	screen       tcell.Screen
	clock        fireworks.Clock
	show         *fireworks.Show
	raster       *fireworks.Raster
	autoPlay     fireworks.AutoPlay
	sessionId    uuid.UUID
	nScreenshots int64
	mousePressed bool
}

func NewApp(c fireworks.Config, screen tcell.Screen, clock fireworks.Clock) *App {
	if clock == nil {
		clock = fireworks.SystemClock{}
	}
	a := &App{
		Config:    c,
		screen:    screen,
		clock:     clock,
		show:      fireworks.NewShow(clock, clock.Now().UnixNano()),
		autoPlay:  fireworks.NewAutoPlay(c),
		sessionId: uuid.New(),
	}
	a.show.Stagger = c.LaunchStagger()
	cols, rows := screen.Size()
	a.raster = fireworks.NewRaster(cols, 2*rows)
	a.show.Start(a.raster)
	if c.AutoPlay {
		a.autoPlay.Toggle(clock.Now())
	}
	return a
}

// HandleEvent reacts to one terminal event and returns false when the app
// must quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.HandleMouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := a.screen.Size()
		a.show.Resize(cols, 2*rows)
	}
	return true
}

func (a *App) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.show.Launch(int(a.IgniteCount))
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case ' ':
			a.show.Launch(int(a.IgniteCount))
		case 'a', 'A':
			a.autoPlay.Toggle(a.clock.Now())
		case 's', 'S':
			if err := a.SaveScreenshot(); err != nil {
				fireworks.Logger().Error("screenshot failed", "err", err)
			}
		}
	}
	return true
}

// HandleMouse launches a rocket when the button goes down. The terminal keeps
// sending events while the button is held and the mouse moves, and those
// don't count as new clicks.
func (a *App) HandleMouse(col int, row int, pressed bool) {
	if pressed && !a.mousePressed {
		a.show.LaunchAt(CellCenter(col, row))
	}
	a.mousePressed = pressed
}

// CellCenter returns the point of the raster at the center of a terminal
// cell.
func CellCenter(col int, row int) (x float64, y float64) {
	return float64(col) + 0.5, float64(2*row + 1)
}

// Frame steps the show and paints the result on the terminal.
func (a *App) Frame() {
	a.autoPlay.Step(a.clock.Now(), a.show, &a.show.World.Rand)
	a.show.Frame()
	a.Draw()
}

func (a *App) Draw() {
	cols, rows := a.screen.Size()
	for row := range rows {
		for col := range cols {
			style := tcell.StyleDefault.
				Foreground(PixelColor(a.raster, col, 2*row)).
				Background(PixelColor(a.raster, col, 2*row+1))
			a.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	if a.ShowHint && rows > 0 {
		col := 0
		for _, r := range hint {
			if col >= cols {
				break
			}
			a.screen.SetContent(col, rows-1, r, nil, hintStyle)
			col++
		}
	}
	a.screen.Show()
}

// PixelColor returns the color of a raster pixel as seen on a black
// background. Since the raster is premultiplied, that is simply its color
// channels.
func PixelColor(r *fireworks.Raster, x int, y int) tcell.Color {
	red, green, blue, _ := r.At(x, y)
	return tcell.NewRGBColor(channel(red), channel(green), channel(blue))
}

func channel(v float64) int32 {
	return int32(math.Round(min(max(v, 0), 1) * 255))
}

func (a *App) SaveScreenshot() error {
	a.nScreenshots++
	name := filepath.Join(a.ScreenshotDir,
		fmt.Sprintf("fireworks-%s-%03d.png", a.sessionId, a.nScreenshots))
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.raster.Image()); err != nil {
		return fmt.Errorf("can't encode screenshot: %w", err)
	}
	if err := os.MkdirAll(a.ScreenshotDir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return err
	}
	fireworks.Logger().Info("screenshot saved", "file", name)
	return nil
}

// Run is the main loop. Terminal events are read on their own goroutine, but
// they are handled here, on the same goroutine that runs the frames, so the
// show is only ever touched by one goroutine.
func (a *App) Run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go PollEvents(a.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				a.show.Stop()
				return
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// PollEvents forwards the events of screen to events until the screen is
// finalized or done is closed. Nobody reads events after done is closed, so
// a full channel must not keep the goroutine stuck.
func PollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// The screen was finalized.
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
