package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kiosk/config"
	"kiosk/internal/domain"
	"kiosk/internal/repository"
	"kiosk/internal/service"
	"kiosk/pkg/auth"
)

type testFrame struct {
	SessionID string                 `json:"session_id"`
	Screen    string                 `json:"screen"`
	Actions   []string               `json:"actions"`
	Loading   bool                   `json:"loading"`
	Notice    *domain.Notice         `json:"notice"`
	View      map[string]interface{} `json:"view"`
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Field   string          `json:"field"`
	Data    json.RawMessage `json:"data"`
	Frame   *testFrame      `json:"frame"`
}

type ticket struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	Frame     testFrame `json:"frame"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	cfg := &config.Config{
		Environment: "test",
		Name:        "Secretaria Digital Amanhecer",
		Version:     "1.0.0",
		Kiosk: config.KioskConfig{
			SuccessRate:     1,
			NoticeTTL:       5 * time.Second,
			CalendarHorizon: 14,
			SessionIdleTTL:  30 * time.Minute,
		},
	}

	specialists := repository.NewSpecialistMemoryRepository()
	catalog, err := service.LoadCatalog(t.Context(), specialists, logger)
	require.NoError(t, err)

	sessions, err := repository.NewSessionLRURepository(8, nil)
	require.NoError(t, err)

	brt := time.FixedZone("BRT", -3*60*60)
	now := func() time.Time { return time.Date(2024, time.June, 3, 10, 0, 0, 0, brt) }

	services := service.NewServices(service.Deps{
		Repos:        repository.NewRepositories(specialists, sessions),
		Catalog:      catalog,
		Logger:       logger,
		Config:       cfg,
		Location:     brt,
		Tokens:       auth.NewTokenManager("segredo", time.Hour),
		Fingerprints: auth.NewFingerprinter("segredo"),
		Rand:         rand.New(rand.NewPCG(3, 4)),
		Now:          now,
	})

	router := gin.New()
	NewHandler(services, logger, cfg, nil).InitRoutes(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func openSession(t *testing.T, router *gin.Engine) ticket {
	t.Helper()
	w, env := do(t, router, http.MethodPost, "/api/v1/kiosk/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var tk ticket
	require.NoError(t, json.Unmarshal(env.Data, &tk))
	return tk
}

func dataFrame(t *testing.T, env envelope) testFrame {
	t.Helper()
	var f testFrame
	require.NoError(t, json.Unmarshal(env.Data, &f))
	return f
}

func TestOpenSession(t *testing.T) {
	router := newTestRouter(t)

	tk := openSession(t, router)
	assert.NotEmpty(t, tk.Token)
	assert.NotEmpty(t, tk.SessionID)
	assert.Equal(t, string(domain.ScreenWelcome), tk.Frame.Screen)
	assert.Equal(t, "Secretaria Digital Amanhecer", tk.Frame.View["app_name"])
}

func TestSessionAuth(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, http.MethodGet, "/api/v1/kiosk/frame", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/kiosk/frame", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	w, env := do(t, router, http.MethodGet, "/api/v1/kiosk/frame", "invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.ErrSessionNotFound.Error(), env.Message)

	tk := openSession(t, router)
	w, env = do(t, router, http.MethodGet, "/api/v1/kiosk/frame", tk.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tk.SessionID, dataFrame(t, env).SessionID)
}

func TestDispatchEvents(t *testing.T) {
	router := newTestRouter(t)
	tk := openSession(t, router)

	w, env := do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{Action: domain.ActionStartCheckIn})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(domain.ScreenIdentification), dataFrame(t, env).Screen)

	w, env = do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{
		Action:  domain.ActionSubmitIdentification,
		Payload: domain.EventPayload{Name: "jo", BirthDate: "01011990", CPF: "52998224725"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, domain.FieldName, env.Field)
	assert.Equal(t, domain.MessageInvalidName, env.Message)
	require.NotNil(t, env.Frame)
	require.NotNil(t, env.Frame.Notice)
	assert.Equal(t, domain.NoticeField, env.Frame.Notice.Kind)

	w, env = do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{
		Action:  domain.ActionSubmitIdentification,
		Payload: domain.EventPayload{Name: "maria da silva", BirthDate: "01/01/1990", CPF: "529.982.247-25"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	frame := dataFrame(t, env)
	assert.Equal(t, string(domain.ScreenConfirmation), frame.Screen)
	assert.Equal(t, "OLÁ, MARIA!", frame.View["title"])

	w, env = do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{Action: domain.ActionFinish})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Frame)
	assert.Equal(t, string(domain.ScreenConfirmation), env.Frame.Screen)
}

func TestDispatchRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)
	tk := openSession(t, router)

	w, _ := do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{Action: domain.ActionStartScheduling})
	w, env := do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{
		Action:  domain.ActionSelectReason,
		Payload: domain.EventPayload{Reason: "Cardiologia"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrSelectionUnavailable.Error(), env.Message)
}

func TestMissingSelectionIsBlocking(t *testing.T) {
	router := newTestRouter(t)
	tk := openSession(t, router)

	for _, ev := range []domain.Event{
		{Action: domain.ActionStartScheduling},
		{Action: domain.ActionSelectReason, Payload: domain.EventPayload{Reason: "Terapia"}},
		{Action: domain.ActionSelectSpecialist, Payload: domain.EventPayload{SpecialistID: 1}},
	} {
		w, _ := do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, ev)
		require.Equal(t, http.StatusOK, w.Code, ev.Action)
	}

	w, env := do(t, router, http.MethodPost, "/api/v1/kiosk/events", tk.Token, domain.Event{Action: domain.ActionConfirmSchedule})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Frame)
	require.NotNil(t, env.Frame.Notice)
	assert.Equal(t, domain.NoticeBlocking, env.Frame.Notice.Kind)
}

func TestCloseSession(t *testing.T) {
	router := newTestRouter(t)
	tk := openSession(t, router)

	w, _ := do(t, router, http.MethodDelete, "/api/v1/kiosk/sessions", tk.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/kiosk/frame", tk.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSpecialistEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/specialists", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cards []domain.SpecialistCard
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	assert.Len(t, cards, 4)

	w, env = do(t, router, http.MethodGet, "/api/v1/specialists?reason=Nutri%C3%A7%C3%A3o", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, int64(3), cards[0].ID)

	w, env = do(t, router, http.MethodGet, "/api/v1/specialists/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var card domain.SpecialistCard
	require.NoError(t, json.Unmarshal(env.Data, &card))
	assert.Equal(t, "Psicologia", card.Specialty)

	w, _ = do(t, router, http.MethodGet, "/api/v1/specialists/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/specialists/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, router, http.MethodGet, "/api/v1/specialists/4/calendar", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var availability domain.Availability
	require.NoError(t, json.Unmarshal(env.Data, &availability))
	require.Len(t, availability.Days, 14)
	assert.False(t, availability.Days[0].Available)
	assert.True(t, availability.Days[1].Available)
}

func TestHealthAndCORS(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","name":"Secretaria Digital Amanhecer","version":"1.0.0"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/kiosk/events", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.NewValidationError(domain.FieldCPF, domain.MessageInvalidCPF), http.StatusUnprocessableEntity},
		{domain.ErrMissingSelection, http.StatusUnprocessableEntity},
		{domain.ErrVerificationFailed, http.StatusBadGateway},
		{domain.ErrVerificationInFlight, http.StatusConflict},
		{domain.ErrVerificationDiscarded, http.StatusConflict},
		{fmt.Errorf("%w: back em WELCOME", domain.ErrActionNotAvailable), http.StatusConflict},
		{domain.ErrSelectionUnavailable, http.StatusBadRequest},
		{domain.ErrSpecialistNotFound, http.StatusNotFound},
		{domain.ErrSessionNotFound, http.StatusUnauthorized},
		{domain.ErrPrecondition, http.StatusInternalServerError},
		{fmt.Errorf("falha inesperada"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := errorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
		})
	}

	_, message := errorStatus(domain.NewValidationError(domain.FieldCPF, domain.MessageInvalidCPF))
	assert.Equal(t, domain.MessageInvalidCPF, message)
}
