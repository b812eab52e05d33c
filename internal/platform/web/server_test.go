package web

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

func testServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Settings = snake.Settings{
		Grid:         snake.GridConfig{Width: 10, Height: 10},
		Origin:       snake.Position{X: 2, Y: 2},
		MoveInterval: 20 * time.Millisecond,
		FoodInterval: 40 * time.Millisecond,
	}
	cfg.FrameInterval = 5 * time.Millisecond
	cfg.Seed = 7

	srv := NewServer(cfg, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

type envelope struct {
	Type      string   `json:"type"`
	Session   string   `json:"session"`
	Direction string   `json:"direction"`
	Segments  []Point  `json:"segments"`
	Grid      GridInfo `json:"grid"`
	Error     string   `json:"error"`
	Paused    bool     `json:"paused"`
}

// readUntil reads messages until match accepts one or two seconds pass.
func readUntil(t *testing.T, ws *websocket.Conn, match func(envelope) bool) envelope {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			t.Fatalf("bad message %s: %v", data, err)
		}
		if match(env) {
			return env
		}
	}
}

func ofType(kind string) func(envelope) bool {
	return func(e envelope) bool { return e.Type == kind }
}

func TestHello(t *testing.T) {
	_, ts := testServer(t)
	ws := dial(t, ts)

	hello := readUntil(t, ws, ofType(MsgHello))
	if hello.Session == "" {
		t.Error("hello should carry a session id")
	}
	if hello.Grid.Width != 10 || hello.Grid.Height != 10 {
		t.Errorf("grid = %+v, expected 10x10", hello.Grid)
	}
	want := []Point{{2, 4}, {2, 3}, {2, 2}}
	if len(hello.Segments) != len(want) {
		t.Fatalf("segments = %v, expected %v", hello.Segments, want)
	}
	for i := range want {
		if hello.Segments[i] != want[i] {
			t.Errorf("segment %d = %v, expected %v", i, hello.Segments[i], want[i])
		}
	}
	if hello.Direction != "up" {
		t.Errorf("direction = %q, expected up", hello.Direction)
	}
}

func TestDirectionChange(t *testing.T) {
	_, ts := testServer(t)
	ws := dial(t, ts)
	readUntil(t, ws, ofType(MsgHello))

	if err := ws.WriteJSON(ClientMessage{Type: MsgDir, Dir: "left"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	move := readUntil(t, ws, func(e envelope) bool {
		return e.Type == MsgMove && e.Direction == "left"
	})
	if len(move.Segments) < 3 {
		t.Errorf("move should carry the body, got %v", move.Segments)
	}
}

func TestInvalidDirection(t *testing.T) {
	_, ts := testServer(t)
	ws := dial(t, ts)
	readUntil(t, ws, ofType(MsgHello))

	ws.WriteJSON(ClientMessage{Type: MsgDir, Dir: "sideways"})
	msg := readUntil(t, ws, ofType(MsgError))
	if !strings.Contains(msg.Error, "sideways") {
		t.Errorf("error = %q, expected it to name the input", msg.Error)
	}

	ws.WriteJSON(ClientMessage{Type: "jump"})
	msg = readUntil(t, ws, ofType(MsgError))
	if !strings.Contains(msg.Error, "jump") {
		t.Errorf("error = %q, expected it to name the type", msg.Error)
	}
}

func TestRestartAndPause(t *testing.T) {
	_, ts := testServer(t)
	ws := dial(t, ts)
	readUntil(t, ws, ofType(MsgHello))

	ws.WriteJSON(ClientMessage{Type: MsgPause})
	state := readUntil(t, ws, ofType(MsgState))
	if !state.Paused {
		t.Error("pause should report paused")
	}

	ws.WriteJSON(ClientMessage{Type: MsgRestart})
	state = readUntil(t, ws, ofType(MsgState))
	if state.Paused {
		t.Error("restart should unpause")
	}
	if len(state.Segments) != 3 || state.Direction != "up" {
		t.Errorf("restart should restore the canonical snake, got %v heading %s", state.Segments, state.Direction)
	}
}

func TestHTTPEndpoints(t *testing.T) {
	srv, ts := testServer(t)
	ws := dial(t, ts)
	hello := readUntil(t, ws, ofType(MsgHello))

	t.Run("healthz", func(t *testing.T) {
		var body struct {
			Status   string `json:"status"`
			Sessions int    `json:"sessions"`
		}
		getJSON(t, ts.URL+"/healthz", &body)
		if body.Status != "ok" || body.Sessions != 1 {
			t.Errorf("healthz = %+v, expected ok with 1 session", body)
		}
	})

	t.Run("config", func(t *testing.T) {
		var body struct {
			Grid           GridInfo `json:"grid"`
			MoveIntervalMS int64    `json:"move_interval_ms"`
		}
		getJSON(t, ts.URL+"/config", &body)
		if body.Grid.Width != 10 || body.MoveIntervalMS != 20 {
			t.Errorf("config = %+v", body)
		}
	})

	t.Run("sessions", func(t *testing.T) {
		var infos []SessionInfo
		getJSON(t, ts.URL+"/sessions", &infos)
		if len(infos) != 1 || infos[0].ID != hello.Session {
			t.Fatalf("sessions = %+v, expected just %s", infos, hello.Session)
		}
		if infos[0].Length < 3 {
			t.Errorf("length = %d, expected at least 3", infos[0].Length)
		}
	})

	t.Run("board", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/sessions/" + hello.Session + "/board.png?block=8")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
			t.Fatalf("content type = %q", ct)
		}
		img, err := png.Decode(resp.Body)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
			t.Errorf("image = %v, expected 80x80", b)
		}
	})

	t.Run("unknown board", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/sessions/nope/board.png")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, expected 404", resp.StatusCode)
		}
	})

	t.Run("settings apply to new sessions", func(t *testing.T) {
		st := srv.Settings()
		st.Grid = snake.GridConfig{Width: 12, Height: 12}
		srv.SetSettings(st)

		ws2 := dial(t, ts)
		h := readUntil(t, ws2, ofType(MsgHello))
		if h.Grid.Width != 12 {
			t.Errorf("new session grid = %+v, expected 12 wide", h.Grid)
		}
	})
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
}
