package handlers

import (
	"context"
	"net/http"
	"sync"

	chill "chill_timer"
	"chill_timer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockCatalog struct {
	presets   []chill.PresetView
	drinks    []chill.DrinkView
	ambiences []chill.AmbienceView
	presetErr error
	lastID    uuid.UUID
}

func (m *mockCatalog) Presets() []chill.PresetView { return m.presets }
func (m *mockCatalog) Preset(id uuid.UUID) (chill.PresetView, error) {
	m.lastID = id
	if m.presetErr != nil {
		return chill.PresetView{}, m.presetErr
	}
	return chill.PresetView{ID: id.String(), Name: "Beer"}, nil
}
func (m *mockCatalog) Drinks() []chill.DrinkView       { return m.drinks }
func (m *mockCatalog) Ambiences() []chill.AmbienceView { return m.ambiences }

type mockCooling struct {
	temp     chill.TemperatureEstimate
	duration chill.DurationEstimate
	err      error

	lastTemp     service.TemperatureParams
	lastDuration service.DurationParams
}

func (m *mockCooling) Temperature(p service.TemperatureParams) (chill.TemperatureEstimate, error) {
	m.lastTemp = p
	return m.temp, m.err
}
func (m *mockCooling) Duration(p service.DurationParams) (chill.DurationEstimate, error) {
	m.lastDuration = p
	return m.duration, m.err
}

type mockTimers struct {
	mu sync.Mutex

	startResp chill.TimerView
	startErr  error
	listResp  []chill.TimerView
	listErr   error
	cancelErr error

	lastUserID   int
	lastPresetID uuid.UUID
	lastCancelID uuid.UUID
	listCalls    int
}

func (m *mockTimers) Start(ctx context.Context, userID int, presetID uuid.UUID) (chill.TimerView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUserID = userID
	m.lastPresetID = presetID
	return m.startResp, m.startErr
}
func (m *mockTimers) List(ctx context.Context, userID int) ([]chill.TimerView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUserID = userID
	m.listCalls++
	return m.listResp, m.listErr
}
func (m *mockTimers) Cancel(ctx context.Context, userID int, id uuid.UUID) (chill.TimerView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUserID = userID
	m.lastCancelID = id
	if m.cancelErr != nil {
		return chill.TimerView{}, m.cancelErr
	}
	return chill.TimerView{ID: id.String(), State: "CANCELLED"}, nil
}

func (m *mockTimers) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
