package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/ui"
)

const controlsHint = "arrows/wasd/hjkl move  r restart  q quit"

// eventScreen is the terminal a game draws on and reads keys from.
type eventScreen interface {
	ui.Surface
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Game owns the terminal and runs sessions until the player quits.
type Game struct {
	cfg       Config
	log       *zap.SugaredLogger
	screen    eventScreen
	board     *ui.Board
	input     *Input
	rng       *rand.Rand
	restart   chan struct{}
	over      atomic.Bool // a session ended and restart is accepted
	closeOnce sync.Once
}

// New creates a new game instance.
func New(cfg Config, log *zap.SugaredLogger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	g, err := newWithScreen(cfg, log, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newWithScreen builds a game on an already initialized screen.
func newWithScreen(cfg Config, log *zap.SugaredLogger, screen eventScreen) (*Game, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:     cfg,
		log:     log,
		screen:  screen,
		board:   ui.NewBoard(screen, cfg.Width, cfg.Height, theme),
		input:   NewInput(cfg.StartDirection),
		rng:     rand.New(rand.NewSource(seed)),
		restart: make(chan struct{}, 1),
	}, nil
}

// Run executes sessions back to back until ctx is cancelled or the player quits.
// Restarting after a game over is manual only.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("board.width", g.cfg.Width),
		attribute.Int("board.height", g.cfg.Height),
		attribute.Int64("seed", g.cfg.Seed),
	)
	initSpan.End()

	go g.pollEvents(cancel)
	defer g.Close()

	canvas := terminalCanvas{Board: g.board}
	for {
		g.input.Set(g.cfg.StartDirection)
		session := NewSession(g.cfg, g.rng, canvas, g.input, g.log)

		outcome := session.Run(ctx, NewTickerFrames(g.cfg.FrameInterval))
		if outcome == OutcomeQuit || ctx.Err() != nil {
			return nil
		}

		g.over.Store(true)
		select {
		case <-ctx.Done():
			return nil
		case <-g.restart:
			g.log.Infow("restart requested", "previous_session", session.ID())
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (g *Game) Close() {
	g.closeOnce.Do(g.screen.Close)
}

// pollEvents reads terminal events until the screen is closed.
func (g *Game) pollEvents(quit context.CancelFunc) {
	for {
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			g.handleKeyEvent(ev, quit)
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey, quit context.CancelFunc) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		quit()
		return
	case tcell.KeyUp:
		g.input.Set(entity.Up)
		return
	case tcell.KeyDown:
		g.input.Set(entity.Down)
		return
	case tcell.KeyLeft:
		g.input.Set(entity.Left)
		return
	case tcell.KeyRight:
		g.input.Set(entity.Right)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		quit()
	case 'r', 'R':
		if !g.over.CompareAndSwap(true, false) {
			return
		}
		select {
		case g.restart <- struct{}{}:
		default:
		}
	default:
		if dir, ok := runeDirection(ev.Rune()); ok {
			g.input.Set(dir)
		}
	}
}

// runeDirection maps WASD and vi keys to directions.
func runeDirection(r rune) (entity.Direction, bool) {
	switch r {
	case 'w', 'W', 'k':
		return entity.Up, true
	case 'd', 'D', 'l':
		return entity.Right, true
	case 's', 'S', 'j':
		return entity.Down, true
	case 'a', 'A', 'h':
		return entity.Left, true
	default:
		return entity.Up, false
	}
}

// terminalCanvas adapts a ui.Board to the session's Canvas.
type terminalCanvas struct {
	*ui.Board
}

// Present renders the status lines for a session.
func (c terminalCanvas) Present(st Status) {
	c.Board.Present(statusLines(st)...)
}

// statusLines formats the text shown under the board.
func statusLines(st Status) []string {
	lines := []string{fmt.Sprintf("Score: %d  Length: %d", st.Score, st.Length)}
	if st.State == StateStopped && st.Outcome != OutcomeNone {
		lines = append(lines, st.Outcome.Message()+"  press r to restart")
	} else {
		lines = append(lines, "")
	}
	return append(lines, controlsHint)
}
