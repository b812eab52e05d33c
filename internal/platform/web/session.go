package web

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

var errSessionClosed = errors.New("web: session closed")

// Session is one websocket game. A single goroutine (run) owns the world:
// input, ticks and queries are all serialised through it.
type Session struct {
	id     string
	remote string
	world  *snake.World
	clock  *snake.SimulationClock
	conn   *clientConn
	frame  time.Duration
	paused bool
	logger *log.Logger

	input   chan ClientMessage
	queries chan query
	stopped chan struct{}
}

type query struct {
	fn   func(*Session)
	done chan struct{}
}

func newSession(id, remote string, settings snake.Settings, seed int64, frame time.Duration, conn *clientConn, logger *log.Logger) (*Session, error) {
	world, err := snake.NewWorld(snake.WorldOptions{
		Grid:   settings.Grid,
		Origin: settings.Origin,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:      id,
		remote:  remote,
		world:   world,
		clock:   snake.NewSimulationClock(settings.MoveInterval, settings.FoodInterval),
		conn:    conn,
		frame:   frame,
		logger:  logger.With("session", id),
		input:   make(chan ClientMessage, 16),
		queries: make(chan query),
		stopped: make(chan struct{}),
	}
	world.OnEvent(s.logEvent)
	return s, nil
}

func (s *Session) logEvent(ev snake.Event) {
	switch ev.Kind {
	case snake.EventCollision:
		s.logger.Info("collision", "kind", ev.Collision, "at", ev.Pos, "length", ev.Length)
	case snake.EventWon:
		s.logger.Info("board filled", "length", ev.Length)
	}
}

// run drives the session until ctx is done. It closes the connection on
// the way out.
func (s *Session) run(ctx context.Context) {
	defer close(s.stopped)
	defer s.conn.close()

	s.conn.enqueue(s.state(MsgHello))

	ticker := time.NewTicker(s.frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.input:
			s.handle(msg)
		case q := <-s.queries:
			q.fn(s)
			close(q.done)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if s.paused || s.world.Won() {
				continue
			}
			s.advance(dt)
		}
	}
}

// handle applies one client message. Direction writes between ticks
// overwrite each other in the world's latch.
func (s *Session) handle(msg ClientMessage) {
	switch msg.Type {
	case MsgDir:
		d, err := snake.ParseDirection(msg.Dir)
		if err != nil {
			s.conn.enqueue(ErrorMessage{Type: MsgError, Error: err.Error()})
			return
		}
		s.world.SetDirectionIntent(d)
	case MsgRestart:
		s.world.Reset()
		s.clock.Reset()
		s.paused = false
		s.conn.enqueue(s.state(MsgState))
	case MsgPause:
		s.paused = !s.paused
		s.conn.enqueue(s.state(MsgState))
	default:
		s.conn.enqueue(ErrorMessage{Type: MsgError, Error: "unknown message type " + msg.Type})
	}
}

// advance runs the ticks that fell due during dt.
func (s *Session) advance(dt time.Duration) {
	for _, tick := range s.clock.Advance(dt) {
		switch tick {
		case snake.TickMove:
			s.conn.enqueue(s.moveMessage(s.world.OnMovementTick()))
		case snake.TickFood:
			if p, ok := s.world.OnFoodTick(); ok {
				s.conn.enqueue(FoodMessage{Type: MsgFood, Pos: toPoint(p)})
			} else if s.world.Won() {
				s.conn.enqueue(s.state(MsgState))
			}
		}
	}
}

func (s *Session) moveMessage(res snake.MoveResult) MoveMessage {
	msg := MoveMessage{
		Type:      MsgMove,
		Tick:      res.Tick,
		Head:      toPoint(res.Head),
		Segments:  toPoints(res.Segments),
		Direction: s.world.Direction().String(),
		AteFood:   res.AteFood,
		GameOver:  res.GameOver,
		Won:       res.Won,
		Score:     s.world.Score(),
		Best:      s.world.Best(),
	}
	if res.GameOver {
		msg.Collision = res.Collision.String()
		crash := toPoint(res.CrashAt)
		msg.CrashAt = &crash
	}
	return msg
}

// state describes the whole world, for hello and after restarts.
func (s *Session) state(kind string) HelloMessage {
	grid := s.world.Grid()
	msg := HelloMessage{
		Type:           kind,
		Session:        s.id,
		Grid:           GridInfo{Width: grid.Width, Height: grid.Height},
		Segments:       toPoints(s.world.Snake().Segments()),
		Direction:      s.world.Direction().String(),
		Score:          s.world.Score(),
		Best:           s.world.Best(),
		Won:            s.world.Won(),
		Paused:         s.paused,
		MoveIntervalMS: s.clock.MoveInterval().Milliseconds(),
		FoodIntervalMS: s.clock.FoodInterval().Milliseconds(),
	}
	if p, ok := s.world.CurrentFoodPosition(); ok {
		food := toPoint(p)
		msg.Food = &food
	}
	return msg
}

// info summarises the session. Only call from the run goroutine.
func (s *Session) info() SessionInfo {
	return SessionInfo{
		ID:     s.id,
		Remote: s.remote,
		Tick:   s.world.Tick(),
		Length: s.world.Snake().Len(),
		Score:  s.world.Score(),
		Best:   s.world.Best(),
		Won:    s.world.Won(),
		Paused: s.paused,
	}
}

// query runs fn on the session goroutine and waits for it.
func (s *Session) query(ctx context.Context, fn func(*Session)) error {
	q := query{fn: fn, done: make(chan struct{})}
	select {
	case s.queries <- q:
	case <-s.stopped:
		return errSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-q.done // fn runs straight away once received
	return nil
}
