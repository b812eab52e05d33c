package web

import "github.com/vovakirdan/snake-xenzia/internal/games/snake"

// Client message types.
const (
	MsgDir     = "dir"
	MsgRestart = "restart"
	MsgPause   = "pause"
)

// Server message types.
const (
	MsgHello = "hello"
	MsgMove  = "move"
	MsgFood  = "food"
	MsgState = "state"
	MsgError = "error"
)

// ClientMessage is what a browser sends: {"type":"dir","dir":"left"}.
type ClientMessage struct {
	Type string `json:"type"`
	Dir  string `json:"dir,omitempty"`
}

// Point is a board cell on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(p snake.Position) Point {
	return Point{X: p.X, Y: p.Y}
}

func toPoints(ps []snake.Position) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = toPoint(p)
	}
	return out
}

// GridInfo describes the board.
type GridInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// HelloMessage opens every session and follows every restart as "state".
type HelloMessage struct {
	Type           string   `json:"type"`
	Session        string   `json:"session"`
	Grid           GridInfo `json:"grid"`
	Segments       []Point  `json:"segments"`
	Direction      string   `json:"direction"`
	Food           *Point   `json:"food,omitempty"`
	Score          int      `json:"score"`
	Best           int      `json:"best"`
	Won            bool     `json:"won,omitempty"`
	Paused         bool     `json:"paused,omitempty"`
	MoveIntervalMS int64    `json:"move_interval_ms"`
	FoodIntervalMS int64    `json:"food_interval_ms"`
}

// MoveMessage reports one movement tick.
type MoveMessage struct {
	Type      string  `json:"type"`
	Tick      uint64  `json:"tick"`
	Head      Point   `json:"head"`
	Segments  []Point `json:"segments"`
	Direction string  `json:"direction"`
	AteFood   bool    `json:"ate_food,omitempty"`
	GameOver  bool    `json:"game_over,omitempty"`
	Won       bool    `json:"won,omitempty"`
	Collision string  `json:"collision,omitempty"`
	CrashAt   *Point  `json:"crash_at,omitempty"`
	Score     int     `json:"score"`
	Best      int     `json:"best"`
}

// FoodMessage reports a food placement.
type FoodMessage struct {
	Type string `json:"type"`
	Pos  Point  `json:"pos"`
}

// ErrorMessage rejects a client message.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// SessionInfo is one row of GET /sessions.
type SessionInfo struct {
	ID     string `json:"id"`
	Remote string `json:"remote"`
	Tick   uint64 `json:"tick"`
	Length int    `json:"length"`
	Score  int    `json:"score"`
	Best   int    `json:"best"`
	Won    bool   `json:"won"`
	Paused bool   `json:"paused"`
}
