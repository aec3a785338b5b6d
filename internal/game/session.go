package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/world"
)

// Canvas is the rendering collaborator of a session.
// Present is called once at the end of every render pass.
type Canvas interface {
	world.Painter
	Present(status Status)
}

// Session is one run of the game, from start to a terminal outcome.
// All methods must be called from a single goroutine.
type Session struct {
	id      string
	cfg     Config
	grid    *world.Grid
	snake   *entity.Snake
	food    world.Food
	spawner *world.Spawner
	canvas  Canvas
	input   DirectionSource
	log     *zap.SugaredLogger
	tracer  trace.Tracer
	metrics *Metrics

	state    State
	outcome  Outcome
	lastTick time.Duration
	score    int
	inFrame  bool // end report waits until the frame's tick is counted
}

// NewSession builds a stopped session with the snake placed on a fresh board.
func NewSession(cfg Config, rng *rand.Rand, canvas Canvas, input DirectionSource, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	id := uuid.NewString()

	grid := world.NewGrid(cfg.Width, cfg.Height)
	snake := entity.NewSnake(cfg.StartX, cfg.StartY, cfg.StartDirection)
	snake.Place(grid)

	return &Session{
		id:      id,
		cfg:     cfg,
		grid:    grid,
		snake:   snake,
		spawner: world.NewSpawner(rng, cfg.FoodMinDistSq, cfg.FoodMaxAttempts),
		canvas:  canvas,
		input:   input,
		log:     log.With("session", id),
		tracer:  telemetry.Tracer("session"),
		metrics: &Metrics{},
		state:   StateStopped,
	}
}

// Start moves a fresh session to running and draws the initial board.
// now is the frame clock baseline. A session that already stopped stays stopped.
func (s *Session) Start(ctx context.Context, now time.Duration) {
	if s.state == StateRunning || s.outcome != OutcomeNone {
		return
	}

	_, span := s.tracer.Start(ctx, "session.start")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("board.width", s.grid.Width),
		attribute.Int("board.height", s.grid.Height),
		attribute.Int64("tick_interval_ms", s.cfg.TickInterval.Milliseconds()),
	)
	span.End()

	s.state = StateRunning
	s.lastTick = now
	s.log.Infow("session started", "width", s.grid.Width, "height", s.grid.Height)

	s.Render()
}

// Frame handles one frame callback at monotonic time now.
// When more than the tick interval has passed since the last tick it runs
// one update and one render pass and returns true.
func (s *Session) Frame(ctx context.Context, now time.Duration) bool {
	if s.state != StateRunning {
		return false
	}
	s.metrics.IncFrames()

	if now-s.lastTick <= s.cfg.TickInterval {
		return false
	}

	start := time.Now()
	s.inFrame = true
	s.Tick(ctx)
	s.Render()
	s.inFrame = false
	s.lastTick = now
	s.metrics.AddTick(time.Since(start).Nanoseconds())

	if s.state == StateStopped {
		s.reportEnd(ctx)
	}

	return true
}

// Tick performs one simulation step: ensure food, then move the snake.
func (s *Session) Tick(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.tick")
	defer span.End()

	head := s.snake.Head()
	err := s.spawner.EnsureFood(s.grid, &s.food, head.X, head.Y)
	s.metrics.SetSpawnAttempts(s.spawner.Attempts)
	switch {
	case errors.Is(err, world.ErrBoardFull):
		s.Stop(ctx, OutcomeBoardFull)
		return
	case errors.Is(err, world.ErrNoEligibleCell):
		s.log.Debugw("no food cell available this tick", "head_x", head.X, "head_y", head.Y)
	}

	dir := s.input.Direction()
	before := s.snake.Len()
	if !s.snake.Move(dir, s.grid, &s.food) {
		span.SetAttributes(attribute.String("direction", dir.String()))
		s.Stop(ctx, OutcomeCollision)
		return
	}

	if s.snake.Len() > before {
		s.score++
		s.metrics.IncFoodEaten()
		s.log.Debugw("food eaten", "score", s.score, "length", s.snake.Len())
	}

	span.SetAttributes(
		attribute.String("direction", dir.String()),
		attribute.Int("snake.length", s.snake.Len()),
		attribute.Bool("food.active", s.food.Active()),
	)
}

// Render paints the whole board: background, snake, then food.
func (s *Session) Render() {
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			s.canvas.Paint(x, y, world.CellEmpty)
		}
	}

	s.snake.Render(s.canvas)

	if x, y, ok := s.food.Position(); ok {
		s.canvas.Paint(x, y, world.CellFood)
	}

	s.canvas.Present(s.Status())
}

// Stop ends a running session with the given outcome. It is terminal.
// When called during a frame, the end report is emitted once that frame's
// tick has been recorded.
func (s *Session) Stop(ctx context.Context, outcome Outcome) {
	if s.state != StateRunning {
		return
	}
	s.state = StateStopped
	s.outcome = outcome

	if !s.inFrame {
		s.reportEnd(ctx)
	}
}

// reportEnd logs the final metrics and records the session.end span.
func (s *Session) reportEnd(ctx context.Context) {
	outcome := s.outcome
	snapshot := s.metrics.Snapshot()

	_, span := s.tracer.Start(ctx, "session.end")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("outcome", outcome.String()),
		attribute.Int("score", s.score),
		attribute.Int("snake.length", s.snake.Len()),
		attribute.Int64("ticks", snapshot["ticks"].(int64)),
		attribute.Int64("spawn_attempts", snapshot["spawn_attempts"].(int64)),
	)
	span.End()

	s.log.Infow("session ended",
		"outcome", outcome.String(),
		"score", s.score,
		"length", s.snake.Len(),
		"metrics", snapshot,
	)
}

// Run drives the session from frames until it stops, ctx is cancelled, or
// the frame source closes. The frame source is always stopped on return.
// The frame in flight completes before the running state is checked again.
func (s *Session) Run(ctx context.Context, frames FrameSource) Outcome {
	defer frames.Stop()

	s.Start(ctx, 0)
	ch := frames.Frames()

	for s.state == StateRunning {
		select {
		case <-ctx.Done():
			s.Stop(context.WithoutCancel(ctx), OutcomeQuit)
		case now, ok := <-ch:
			if !ok {
				s.Stop(ctx, OutcomeQuit)
				continue
			}
			s.Frame(ctx, now)
		}
	}

	return s.outcome
}

// Status summarizes the session for the renderer.
func (s *Session) Status() Status {
	return Status{
		SessionID: s.id,
		Score:     s.score,
		Length:    s.snake.Len(),
		State:     s.state,
		Outcome:   s.outcome,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the loop state.
func (s *Session) State() State { return s.state }

// Outcome returns why the session stopped, or OutcomeNone.
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the number of food items eaten.
func (s *Session) Score() int { return s.score }

// Snake returns the session's snake.
func (s *Session) Snake() *entity.Snake { return s.snake }

// Grid returns the session's board.
func (s *Session) Grid() *world.Grid { return s.grid }

// Food returns a copy of the current food state.
func (s *Session) Food() world.Food { return s.food }

// Metrics returns the session counters.
func (s *Session) Metrics() *Metrics { return s.metrics }
