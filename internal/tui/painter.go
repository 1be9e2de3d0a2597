package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pixelstorm/internal/app"
	"github.com/dshills/pixelstorm/internal/engine/grid"
	"github.com/dshills/pixelstorm/internal/session"
)

// cellsPerPixel is the number of terminal columns one pixel occupies.
// Two columns roughly square up a terminal cell's aspect ratio.
const cellsPerPixel = 2

// Painter is the interactive terminal front end for one canvas session.
type Painter struct {
	screen    tcell.Screen
	ownScreen bool

	sess    *session.Session
	logger  *app.Logger
	metrics *app.Metrics

	palette  []grid.Color
	selected int

	// stroking is true between pointer-down and pointer-up.
	stroking bool
}

// Option configures a Painter.
type Option func(*Painter)

// WithScreen supplies a screen instead of allocating a terminal one.
// Used with tcell's SimulationScreen in tests.
func WithScreen(s tcell.Screen) Option {
	return func(p *Painter) {
		p.screen = s
		p.ownScreen = false
	}
}

// WithLogger sets the painter's logger.
func WithLogger(l *app.Logger) Option {
	return func(p *Painter) {
		p.logger = l
	}
}

// WithMetrics records paint operations to the given tracker.
func WithMetrics(m *app.Metrics) Option {
	return func(p *Painter) {
		p.metrics = m
	}
}

// WithPalette sets the color choices offered to the user.
func WithPalette(colors []grid.Color) Option {
	return func(p *Painter) {
		if len(colors) > 0 {
			p.palette = colors
		}
	}
}

// New creates a painter for the given session.
func New(sess *session.Session, opts ...Option) (*Painter, error) {
	p := &Painter{
		sess:      sess,
		ownScreen: true,
		logger:    app.NullLogger,
		palette:   GeneratePalette(DefaultPaletteSize),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		p.screen = screen
	}

	return p, nil
}

// Run initializes the screen and drives the event loop until the user
// quits. The screen is finalized on return.
func (p *Painter) Run() error {
	if err := p.screen.Init(); err != nil {
		return err
	}
	defer p.screen.Fini()

	p.screen.EnableMouse()
	p.logger.Info("painter started: %dx%d canvas", p.sess.Width(), p.sess.Height())

	for {
		p.draw()

		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if p.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			p.handleMouse(ev)
		case *tcell.EventResize:
			p.screen.Sync()
		case nil:
			return nil
		}
	}
}

// handleKey processes one key event and reports whether to quit.
func (p *Painter) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r == 'u':
			if p.sess.Undo() && p.metrics != nil {
				p.metrics.RecordUndo()
			}
		case r == 'y':
			if p.sess.Redo() && p.metrics != nil {
				p.metrics.RecordRedo()
			}
		case r == 'c':
			p.sess.Engine().Clear()
		case r >= '1' && r <= '9':
			p.selectColor(int(r - '1'))
		}
	}
	return false
}

// handleMouse maps pointer events to stroke gestures.
func (p *Painter) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		// Pointer up ends any stroke in progress.
		if p.stroking {
			p.sess.EndStroke()
			p.stroking = false
			if p.metrics != nil {
				p.metrics.RecordStroke()
			}
		}
		return
	}

	if py := p.paletteIndexAt(x, y); py >= 0 {
		p.selectColor(py)
		return
	}

	px, py, ok := p.pixelAt(x, y)
	if !ok {
		return
	}

	if !p.stroking {
		p.sess.BeginStroke()
		p.stroking = true
	}

	start := time.Now()
	if err := p.sess.Brush(px, py, p.palette[p.selected]); err != nil {
		p.logger.Debug("brush (%d,%d): %v", px, py, err)
		return
	}
	if p.metrics != nil {
		p.metrics.RecordBrush(time.Since(start))
	}
}

// pixelAt converts screen coordinates to canvas coordinates.
func (p *Painter) pixelAt(x, y int) (int, int, bool) {
	px := x / cellsPerPixel
	if px < 0 || px >= p.sess.Width() || y < 0 || y >= p.sess.Height() {
		return 0, 0, false
	}
	return px, y, true
}

// paletteRow returns the screen row of the palette bar.
func (p *Painter) paletteRow() int {
	return p.sess.Height() + 1
}

// paletteIndexAt returns the palette entry under the given screen
// position, or -1.
func (p *Painter) paletteIndexAt(x, y int) int {
	if y != p.paletteRow() {
		return -1
	}
	idx := x / cellsPerPixel
	if idx < 0 || idx >= len(p.palette) {
		return -1
	}
	return idx
}

// selectColor changes the active color if idx is a valid palette entry.
func (p *Painter) selectColor(idx int) {
	if idx >= 0 && idx < len(p.palette) {
		p.selected = idx
	}
}

// draw renders the canvas, palette bar, and status line.
func (p *Painter) draw() {
	p.screen.Clear()

	width, height := p.sess.Width(), p.sess.Height()
	pixels := p.sess.ImageBytes()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			style := tcell.StyleDefault.Background(
				tcell.NewRGBColor(int32(pixels[i]), int32(pixels[i+1]), int32(pixels[i+2])))
			for dx := 0; dx < cellsPerPixel; dx++ {
				p.screen.SetContent(x*cellsPerPixel+dx, y, ' ', nil, style)
			}
		}
	}

	p.drawPalette()
	p.drawStatus()
	p.screen.Show()
}

// drawPalette renders the palette bar with the selection marked.
func (p *Painter) drawPalette() {
	row := p.paletteRow()
	for i, c := range p.palette {
		style := tcell.StyleDefault.Background(
			tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		r := ' '
		if i == p.selected {
			r = '*'
			style = style.Foreground(contrastColor(c))
		}
		p.screen.SetContent(i*cellsPerPixel, row, r, nil, style)
		p.screen.SetContent(i*cellsPerPixel+1, row, ' ', nil, style)
	}
}

// drawStatus renders the key hints line.
func (p *Painter) drawStatus() {
	eng := p.sess.Engine()
	status := fmt.Sprintf("[1-9] color  [u]ndo  [y] redo  [c]lear  [q]uit   undo:%v redo:%v",
		eng.CanUndo(), eng.CanRedo())

	row := p.paletteRow() + 1
	for i, r := range status {
		p.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
}

// contrastColor picks black or white for a readable mark on c.
func contrastColor(c grid.Color) tcell.Color {
	// Perceived luminance, integer weights
	lum := (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
	if lum > 128 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
