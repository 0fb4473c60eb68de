package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chill "chill_timer"
	"chill_timer/internal/cooling"
	"chill_timer/internal/service"

	"github.com/google/uuid"
)

func protectedDo(t *testing.T, s *service.Service, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestStartTimer_Created(t *testing.T) {
	preset := uuid.New()
	timers := &mockTimers{startResp: chill.TimerView{ID: "t-1", PresetID: preset.String(), State: "RUNNING"}}
	s := &service.Service{Authorization: &mockAuth{parseID: 5}, Timers: timers}

	w := protectedDo(t, s, http.MethodPost, "/api/v1/timers", `{"preset_id":"`+preset.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if timers.lastUserID != 5 || timers.lastPresetID != preset {
		t.Fatalf("forwarded user=%d preset=%s", timers.lastUserID, timers.lastPresetID)
	}
	var v chill.TimerView
	_ = json.Unmarshal(w.Body.Bytes(), &v)
	if v.ID != "t-1" || v.State != "RUNNING" {
		t.Fatalf("unexpected body: %+v", v)
	}
}

func TestStartTimer_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing preset", `{}`, nil, http.StatusBadRequest},
		{"malformed preset", `{"preset_id":"abc"}`, nil, http.StatusBadRequest},
		{"unknown preset", `{"preset_id":"` + uuid.NewString() + `"}`, service.ErrPresetNotFound, http.StatusNotFound},
		{"unreachable target", `{"preset_id":"` + uuid.NewString() + `"}`, cooling.ErrUnreachableTarget, http.StatusUnprocessableEntity},
		{"storage failure", `{"preset_id":"` + uuid.NewString() + `"}`, errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{Authorization: &mockAuth{parseID: 1}, Timers: &mockTimers{startErr: tc.err}}
			w := protectedDo(t, s, http.MethodPost, "/api/v1/timers", tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusInternalServerError {
				var m map[string]string
				_ = json.Unmarshal(w.Body.Bytes(), &m)
				if m["error"] != errInternal {
					t.Fatalf("internal error leaked: %q", m["error"])
				}
			}
		})
	}
}

func TestListTimers(t *testing.T) {
	timers := &mockTimers{listResp: []chill.TimerView{{ID: "a"}, {ID: "b"}}}
	s := &service.Service{Authorization: &mockAuth{parseID: 3}, Timers: timers}

	w := protectedDo(t, s, http.MethodGet, "/api/v1/timers", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out struct {
		Count  int               `json:"count"`
		Timers []chill.TimerView `json:"timers"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || timers.lastUserID != 3 {
		t.Fatalf("unexpected: %+v user=%d", out, timers.lastUserID)
	}
}

func TestCancelTimer(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name string
		path string
		err  error
		want int
	}{
		{"cancelled", id.String(), nil, http.StatusOK},
		{"not found", id.String(), service.ErrTimerNotFound, http.StatusNotFound},
		{"malformed id", "nope", nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			timers := &mockTimers{cancelErr: tc.err}
			s := &service.Service{Authorization: &mockAuth{parseID: 2}, Timers: timers}
			w := protectedDo(t, s, http.MethodDelete, "/api/v1/timers/"+tc.path, "")
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusOK {
				var v chill.TimerView
				_ = json.Unmarshal(w.Body.Bytes(), &v)
				if v.State != "CANCELLED" || timers.lastCancelID != id {
					t.Fatalf("unexpected: %+v", v)
				}
			}
		})
	}
}
