package render

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/tiri-wm/tiri/geom"
	"github.com/tiri-wm/tiri/style"
	"github.com/tiri-wm/tiri/tiling"
	"github.com/tiri-wm/tiri/workspace"
)

// App drives a single workspace.Workspace interactively in a terminal,
// the same screen-lifecycle shape as the teacher's standalone.runApp:
// Init the screen, loop PollEvent, redraw on interrupt/resize, tear down
// on exit key. Windows are inserted with a nil tiling.Surface (spec §4.5
// treats the surface as an opaque external collaborator; this demo never
// has a real one).
type App struct {
	Workspace *workspace.Workspace
	Theme     style.Theme

	// StartWatch, if set, is called once the screen is ready; it should
	// start watching for external Options changes and call the given
	// onChange function (normally a.QueueOptions) when one occurs. It
	// returns a stop function Run defers. cmd/tiri wires this to its
	// fsnotify-backed config watcher; render itself has no opinion about
	// where Options come from.
	StartWatch func(onChange func(*tiling.Options)) (stop func(), err error)

	nextWindow tiling.WindowID
	screen     tcell.Screen
}

// NewApp creates an App over a fresh, empty Workspace sized to no
// particular working area yet; Run sets it from the terminal's initial
// size.
func NewApp(options *tiling.Options) *App {
	if options == nil {
		options = tiling.DefaultOptions()
	}
	ws := workspace.New(options, geom.Rect{}, nil, nil)
	return &App{Workspace: ws, Theme: style.DefaultTheme()}
}

// Run initializes a tcell screen and drives the interactive loop until the
// user quits (q or Ctrl-C), matching the teacher's runner.go PollEvent
// switch.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	a.screen = screen

	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()

	w, h := screen.Size()
	a.Workspace.SetWorkingArea(geom.Rect{X: 0, Y: 0, W: w, H: h})
	a.draw()

	if a.StartWatch != nil {
		if stop, err := a.StartWatch(a.QueueOptions); err != nil {
			fmt.Fprintf(os.Stderr, "tiri: config watch disabled: %v\n", err)
		} else {
			defer stop()
		}
	}

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			rw, rh := tev.Size()
			a.Workspace.SetWorkingArea(geom.Rect{X: 0, Y: 0, W: rw, H: rh})
			screen.Sync()
			a.draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC || tev.Rune() == 'q' {
				return nil
			}
			a.handleKey(tev)
			a.draw()
		case *tcell.EventInterrupt:
			if opts, ok := tev.Data().(*tiling.Options); ok {
				a.Workspace.SetOptions(opts)
				a.draw()
			}
		}
	}
}

// QueueOptions posts an Options update onto the screen's own event queue
// so it is applied on Run's goroutine rather than the caller's — the tree
// has no lock and is single-threaded by contract (spec §5), so a config
// file watcher running on its own goroutine (cmd/tiri's fsnotify watcher,
// SPEC_FULL.md §2.1) must hand updates off this way rather than calling
// Workspace.SetOptions directly. Safe to call before Run or after the
// session ends; the event is simply dropped if there is no screen yet.
func (a *App) QueueOptions(options *tiling.Options) {
	if a.screen == nil {
		return
	}
	a.screen.PostEvent(tcell.NewEventInterrupt(options))
}

// navigate moves focus in d, or moves the focused window instead when
// shifted is set (the Shift+arrow chord for move_direction vs. the plain
// arrow chord for focus_direction; spec §4.2 treats these as two distinct
// operations sharing a direction argument).
func (a *App) navigate(d tiling.Direction, shifted bool) {
	if shifted {
		a.Workspace.MoveDirection(d)
		return
	}
	a.Workspace.FocusDirection(d)
}

func (a *App) draw() {
	Draw(a.screen, a.Workspace.Tree, a.Theme)
	a.screen.Show()
}

// handleKey implements a small i3-like keymap for the demo: 'n' inserts a
// new window, 'x' removes the focused one, arrow keys move focus,
// shift+arrow moves the focused window, 'v'/'h'/'t'/'s' split or retag the
// focused container's layout, and '+'/'-' resize.
func (a *App) handleKey(ev *tcell.EventKey) {
	ws := a.Workspace
	shifted := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyLeft:
		a.navigate(tiling.Left, shifted)
	case tcell.KeyRight:
		a.navigate(tiling.Right, shifted)
	case tcell.KeyUp:
		a.navigate(tiling.Up, shifted)
	case tcell.KeyDown:
		a.navigate(tiling.Down, shifted)
	}

	switch ev.Rune() {
	case 'n':
		a.nextWindow++
		ws.Insert(a.nextWindow, nil, workspace.WindowMeta{}, tiling.InsertPolicy{})
	case 'x':
		if tile, ok := ws.Tree.FocusedTile(); ok {
			ws.Remove(tile.Window)
		}
	case 'h':
		ws.Split(tiling.SplitH)
	case 'v':
		ws.Split(tiling.SplitV)
	case 't':
		ws.SetLayoutMode(tiling.Tabbed)
	case 's':
		ws.SetLayoutMode(tiling.Stacked)
	case 'f':
		if tile, ok := ws.Tree.FocusedTile(); ok {
			ws.SetFocusedFullscreen(!tile.Fullscreen)
		}
	case '+':
		ws.Resize(0.05)
	case '-':
		ws.Resize(-0.05)
	}
}
