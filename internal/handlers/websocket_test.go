package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	chill "chill_timer"
	"chill_timer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

func TestParseInterval_ConfiguredDefault(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, WithStreamInterval(3*time.Second))
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/ws", nil)
	if got := h.parseInterval(c); got != 3*time.Second {
		t.Fatalf("got %v, want 3s", got)
	}

	// out of range options are ignored
	h = NewHandler(&service.Service{}, nil, WithStreamInterval(time.Minute))
	if got := h.parseInterval(c); got != defaultInterval {
		t.Fatalf("got %v, want %v", got, defaultInterval)
	}
}

// --- websocket integration tests ---

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialStream(t *testing.T, s *service.Service, query url.Values) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(s))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/api/v1/ws"
	u.RawQuery = query.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_TimerStream_InitialAndPeriodic(t *testing.T) {
	timers := &mockTimers{listResp: []chill.TimerView{{
		ID:               "t-1",
		PresetName:       "Beer",
		State:            "RUNNING",
		CurrentTempC:     12.5,
		RemainingSeconds: 60,
	}}}
	s := &service.Service{Authorization: &mockAuth{parseID: 9}, Timers: timers}

	conn := dialStream(t, s, url.Values{"access_token": {"tok"}, "interval_ms": {"20"}})

	// Read initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "timers" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var got []chill.TimerView
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal timers: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t-1" || got[0].RemainingSeconds != 60 {
		t.Fatalf("unexpected timers: %+v", got)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "timers" {
		t.Fatalf("expected type=timers, got %+v", env)
	}
	if timers.calls() < 2 {
		t.Fatalf("expected at least two List calls, got %d", timers.calls())
	}
	timers.mu.Lock()
	uid := timers.lastUserID
	timers.mu.Unlock()
	if uid != 9 {
		t.Fatalf("stream listed timers of user %d, want 9", uid)
	}
}

func TestWebSocket_EmptyListIsArray(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Timers: &mockTimers{}}
	conn := dialStream(t, s, url.Values{"access_token": {"tok"}})

	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(env.Data) != "[]" {
		t.Fatalf("expected empty array, got %s", string(env.Data))
	}
}

func TestWebSocket_InitialListError_Closes(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Timers: &mockTimers{listErr: errors.New("boom")}}
	conn := dialStream(t, s, url.Values{"access_token": {"tok"}})

	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read error envelope: %v", err)
	}
	if env.Type != "error" || env.Error != errInternal {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	// The server closes right after reporting the failure
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}

func TestWebSocket_RequiresToken(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(&service.Service{Authorization: &mockAuth{}}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/api/v1/ws"
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(u.String(), nil)
	if err == nil {
		t.Fatal("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}
}
