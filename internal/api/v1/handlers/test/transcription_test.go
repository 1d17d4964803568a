package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"video-transcriber/internal/api/v1/dto"
	"video-transcriber/internal/api/v1/routes"
	"video-transcriber/internal/api/v1/services"
	apperrors "video-transcriber/internal/app/errors"
	"video-transcriber/internal/app/model"
	"video-transcriber/internal/app/pipeline"
	"video-transcriber/internal/app/repository/guard"
	"video-transcriber/internal/app/repository/sqlite"
	"video-transcriber/internal/app/storage"
	"video-transcriber/internal/app/testutil"
	"video-transcriber/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(service services.TranscriptionService) *gin.Engine {
	router := gin.New()
	routes.RegisterRoutes(router, &routes.ServiceContainer{TranscriptionService: service})
	return router
}

func postTranscribe(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/transcribe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTranscriptionHandler_Transcribe(t *testing.T) {
	duration := 12
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testutil.MockTranscriptionService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "success",
			body: `{"videoId":"v1"}`,
			setupMocks: func(ms *testutil.MockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, "v1").Return(&dto.TranscribeResponse{
					Success:       true,
					Transcription: "hello world",
					Status:        "COMPLETED",
					Duration:      &duration,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "hello world", body["transcription"])
				assert.Equal(t, float64(12), body["duration"])
				assert.NotContains(t, body, "cached")
			},
		},
		{
			name:           "missing videoId",
			body:           `{}`,
			setupMocks:     func(ms *testutil.MockTranscriptionService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "videoId is required", body["error"])
			},
		},
		{
			name:           "blank videoId",
			body:           `{"videoId":"  "}`,
			setupMocks:     func(ms *testutil.MockTranscriptionService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "videoId is required", body["error"])
			},
		},
		{
			name: "not found",
			body: `{"videoId":"ghost"}`,
			setupMocks: func(ms *testutil.MockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, "ghost").Return(nil, apperrors.ErrVideoNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Video not found", body["error"])
			},
		},
		{
			name: "missing credential",
			body: `{"videoId":"v1"}`,
			setupMocks: func(ms *testutil.MockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, "v1").Return(nil, apperrors.ErrMissingAPIKey)
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "transcription service credential is not configured", body["error"])
			},
		},
		{
			name: "conflict",
			body: `{"videoId":"v1"}`,
			setupMocks: func(ms *testutil.MockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, "v1").Return(nil, apperrors.ErrAlreadyRunning)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := testutil.NewMockTranscriptionService(t)
			tt.setupMocks(service)

			rec := postTranscribe(setupTestRouter(service), tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, decode(t, rec))
			}
			service.AssertExpectations(t)
		})
	}
}

func TestTranscriptionHandler_GetStatus(t *testing.T) {
	service := testutil.NewMockTranscriptionService(t)
	service.On("GetStatus", mock.Anything, "v1").Return(&dto.TranscriptionStatusResponse{
		VideoID: "v1",
		Status:  "PROCESSING",
	}, nil)
	service.On("GetStatus", mock.Anything, "ghost").Return(nil, apperrors.ErrVideoNotFound)
	router := setupTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/v1/transcription", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "PROCESSING", body["status"])
	assert.NotContains(t, body, "transcription")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/ghost/transcription", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// scenario wires the real service, orchestrator and an in-memory record
// store; only the network and ffmpeg are faked.
type scenario struct {
	dao         *sqlite.SQLiteDB
	store       *testutil.RecordingTempStore
	fetcher     *testutil.MockFetcher
	extractor   *testutil.MockExtractor
	transcriber *testutil.MockTranscriber
	router      *gin.Engine
}

func newScenario(t *testing.T, videos ...model.Video) *scenario {
	s := &scenario{
		dao:         testutil.NewTestVideoDAO(t),
		store:       testutil.NewRecordingTempStore(t),
		fetcher:     testutil.NewMockFetcher(t),
		extractor:   testutil.NewMockExtractor(t),
		transcriber: testutil.NewMockTranscriber(t),
	}
	testutil.SeedVideos(t, s.dao, videos...)

	orch := pipeline.NewOrchestrator(s.store, s.fetcher, s.extractor, s.transcriber, nil)
	resolver := storage.NewPublicResolver(config.StorageConfig{Endpoint: "localhost:9000", Bucket: "videos"})
	service := services.NewTranscriptionService(
		&config.APIKeys{OpenAI: testutil.TestAPIKey},
		s.dao, guard.NewNone(s.dao), resolver, orch, nil, nil,
	)
	s.router = setupTestRouter(service)
	return s
}

func (s *scenario) assertNoExternalCalls(t *testing.T) {
	t.Helper()
	s.fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	s.extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything)
	s.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestScenarioA_FreshTranscription(t *testing.T) {
	s := newScenario(t, testutil.PendingVideo("v1"))
	s.fetcher.On("Fetch", mock.Anything, "http://localhost:9000/videos/uploads/v1.mp4", mock.Anything).Return(nil)
	s.extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return(testutil.Result("hello world", 12.4), nil)

	rec := postTranscribe(s.router, `{"videoId":"v1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "hello world", body["transcription"])
	assert.Equal(t, "COMPLETED", body["status"])
	assert.Equal(t, float64(12), body["duration"])

	v := testutil.MustFindVideo(t, s.dao, "v1")
	assert.Equal(t, "hello world", *v.Transcription)
	assert.Equal(t, model.StatusCompleted, v.TranscriptionStatus)
	assert.Equal(t, 12, *v.Duration)
}

func TestScenarioB_ExtractionFails(t *testing.T) {
	s := newScenario(t, testutil.PendingVideo("v1"))
	s.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrExtractionFailed)

	rec := postTranscribe(s.router, `{"videoId":"v1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "audio extraction failed", decode(t, rec)["error"])

	v := testutil.MustFindVideo(t, s.dao, "v1")
	assert.Equal(t, model.StatusFailed, v.TranscriptionStatus)
	assert.Nil(t, v.Transcription)

	allocated := s.store.Allocated()
	require.NotEmpty(t, allocated)
	for _, p := range allocated {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "temp file %s should be removed", p)
	}
	s.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestScenario_MissingFileKey(t *testing.T) {
	video := testutil.PendingVideo("v1")
	video.FileKey = ""
	s := newScenario(t, video)

	rec := postTranscribe(s.router, `{"videoId":"v1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "video has no file key", decode(t, rec)["error"])
	s.assertNoExternalCalls(t)

	v := testutil.MustFindVideo(t, s.dao, "v1")
	assert.Equal(t, model.StatusFailed, v.TranscriptionStatus)
	assert.Nil(t, v.Transcription)
}

func TestScenarioC_UnknownVideo(t *testing.T) {
	s := newScenario(t, testutil.PendingVideo("v1"))
	before := testutil.MustFindVideo(t, s.dao, "v1")

	rec := postTranscribe(s.router, `{"videoId":"nope"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", decode(t, rec)["error"])
	s.assertNoExternalCalls(t)

	after := testutil.MustFindVideo(t, s.dao, "v1")
	assert.Equal(t, before, after, "no record store mutation")
}

func TestScenarioD_CachedTranscription(t *testing.T) {
	s := newScenario(t, testutil.CompletedVideo("v2", "x", 5))

	rec := postTranscribe(s.router, `{"videoId":"v2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["cached"])
	assert.Equal(t, "x", body["transcription"])
	assert.Equal(t, "COMPLETED", body["status"])
	s.assertNoExternalCalls(t)
	assert.Empty(t, s.store.Allocated())
}
