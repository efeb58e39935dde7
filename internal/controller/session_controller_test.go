package controller

import (
	"errors"
	"net/http"
	"testing"

	"learnsphere_backend/internal/llm"
	"learnsphere_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionReturnsGeneratedLesson(t *testing.T) {
	env := newTestEnv(t)
	id := env.registerLearner(t, "alice")
	env.provider.AddResponse(llm.MockResponse{Text: "A lesson about pointers."})

	w := env.do(t, http.MethodPost, "/api/learners/1/sessions", gin.H{"topic": "Pointers"})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, true, body["success"])
	assert.Greater(t, body["id"].(float64), 0.0)
	assert.Equal(t, "Pointers", body["topic"])
	assert.Equal(t, "A lesson about pointers.", body["content"])
	assert.Equal(t, 0.0, body["progress"])

	var count int64
	require.NoError(t, env.db.Model(&model.LearningSession{}).Where("learner_id = ?", id).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateSessionWithoutBodyUsesDefaultTopic(t *testing.T) {
	env := newTestEnv(t)
	env.registerLearner(t, "alice")
	env.provider.AddResponse(llm.MockResponse{Text: "An introductory lesson."})

	w := env.do(t, http.MethodPost, "/api/learners/1/sessions", nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Introduction to Programming", decodeObject(t, w)["topic"])
}

func TestCreateSessionUnknownLearner(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/learners/999/sessions", gin.H{"topic": "Pointers"})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Learner not found", decodeObject(t, w)["error"])

	var count int64
	require.NoError(t, env.db.Model(&model.LearningSession{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Zero(t, env.provider.CallCount())
}

func TestCreateSessionInvalidLearnerID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/learners/abc/sessions", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid learner id", decodeObject(t, w)["error"])
}

func TestCreateSessionFallsBackWhenProviderFails(t *testing.T) {
	env := newTestEnv(t)
	env.registerLearner(t, "dana")
	env.provider.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}})

	w := env.do(t, http.MethodPost, "/api/learners/1/sessions", gin.H{"topic": "Slices"})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeObject(t, w)
	content := body["content"].(string)
	assert.NotEmpty(t, content)
	assert.Contains(t, content, "dana")
	assert.Contains(t, content, "Slices")
}

func TestListSessionsEmptyArray(t *testing.T) {
	env := newTestEnv(t)
	env.registerLearner(t, "alice")

	w := env.do(t, http.MethodGet, "/api/learners/1/sessions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestListSessionsUnknownLearnerEmptyArray(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/learners/42/sessions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestListSessionsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.registerLearner(t, "alice")
	env.provider.AddResponse(llm.MockResponse{Text: "Lesson one."})

	created := decodeObject(t, env.do(t, http.MethodPost, "/api/learners/1/sessions", gin.H{"topic": "Maps"}))

	w := env.do(t, http.MethodGet, "/api/learners/1/sessions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeArray(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, created["id"], rows[0]["id"])
	assert.Equal(t, "Maps", rows[0]["topic"])
	assert.Equal(t, "Lesson one.", rows[0]["content"])
	assert.Equal(t, 0.0, rows[0]["progress"])
	assert.NotEmpty(t, rows[0]["created_at"])
	assert.NotContains(t, rows[0], "learner_id")
}

func TestListSessionsInvalidLearnerID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/learners/-1/sessions", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid learner id", decodeObject(t, w)["error"])
}

func TestCreateSessionMalformedBody(t *testing.T) {
	env := newTestEnv(t)
	env.registerLearner(t, "alice")

	w := env.doRaw(t, http.MethodPost, "/api/learners/1/sessions", "{not json")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeObject(t, w), "error")
}
