package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atlas/config"
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/validator"
	"atlas/internal/infra/answer"
	"atlas/internal/infra/persistence/memory"
	"atlas/internal/infra/qrcode"
	"atlas/internal/usecase"
	"atlas/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer wires the question and fan routes against real in-memory
// stores, with the production error handler, so the tests exercise the
// actual wire contract.
type testServer struct {
	echo      *echo.Echo
	questions usecase.QuestionUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Seed:     &config.SeedConfig{Enabled: true},
		Resolver: &config.ResolverConfig{DefaultModel: "sophia_lee"},
		QRCode:   &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M", BaseURL: "http://localhost:8080"},
	}

	store := memory.New(cfg, logger)
	fans := memory.NewFanRepository(store)
	questions := memory.NewQuestionRepository(store)
	resolver := answer.NewResolver(cfg, fans, logger)
	qrService := qrcode.NewQRCodeService(cfg)

	fanUC := impl.NewFanService(fans, logger)
	questionUC := impl.NewQuestionService(questions, resolver, qrService, logger)
	statsUC := impl.NewStatsService(fans, questions, logger)

	fanHandler := NewFanHandler(fanUC, logger)
	questionHandler := NewQuestionHandler(questionUC, logger)
	statsHandler := NewStatsHandler(statsUC, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	api := e.Group("/api")
	api.GET("/stats", statsHandler.GetStats)
	api.GET("/fans", fanHandler.ListFans)
	api.GET("/fans/:id", fanHandler.GetFan)
	api.GET("/ai-questions", questionHandler.ListQuestions)
	api.POST("/ai-questions", questionHandler.AskQuestion)
	api.GET("/ai-questions/:id/qr", questionHandler.ShareQR)
	api.POST("/answer", questionHandler.Answer)

	return &testServer{echo: e, questions: questionUC}
}

func (s *testServer) request(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestQuestionHandler_AskQuestion(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodPost, "/api/ai-questions",
		`{"question":"What did we eat yesterday @Tina?","agencyModel":"sophia_lee"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Italian food")
	assert.Contains(t, body, `"fanId":"fan_1"`)
	assert.Contains(t, body, `"confidence":"0.92"`)
}

func TestQuestionHandler_AskQuestion_MissingQuestion(t *testing.T) {
	server := newTestServer(t)

	before, err := server.questions.ListQuestions(t.Context())
	require.NoError(t, err)

	rec := server.request(http.MethodPost, "/api/ai-questions", `{"question":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Invalid request data"`)
	assert.Contains(t, rec.Body.String(), `"details"`)

	// A rejected submission leaves the log untouched.
	after, err := server.questions.ListQuestions(t.Context())
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestQuestionHandler_AskQuestion_BlankQuestion(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodPost, "/api/ai-questions", `{"question":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Invalid request data"`)
}

func TestQuestionHandler_Answer(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodPost, "/api/answer",
		`{"question":"what about @Tina?","origin":"ask-question"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"username":"Tina"`)
	assert.Contains(t, body, `"origin":"ask-question"`)
	assert.Contains(t, body, `"snippet"`)
}

func TestQuestionHandler_ShareQR(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodGet, "/api/ai-questions/q_1/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])

	rec = server.request(http.MethodGet, "/api/ai-questions/q_999/qr", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Question not found"`)
}

func TestFanHandler_GetFan_NotFound(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodGet, "/api/fans/fan_999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Fan not found"}`, rec.Body.String())
}

func TestFanHandler_ListFans_Search(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodGet, "/api/fans?search=jessica", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jessica Milano")
	assert.NotContains(t, rec.Body.String(), "Sarah Cooper")
}

func TestStatsHandler_GetStats(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(http.MethodGet, "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"totalMessages":274,"activeFans":4,"revenue":"503.21","aiQuestions":2}`,
		rec.Body.String())
}
