package controller

import (
	"net/http"
	"testing"

	"learnsphere_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsStoredLearner(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/learners", gin.H{
		"username":         "alice",
		"learning_goals":   "Learn Go",
		"experience_level": "advanced",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeObject(t, w)
	assert.Greater(t, body["id"].(float64), 0.0)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "Learn Go", body["learning_goals"])
	assert.Equal(t, "advanced", body["experience_level"])
	assert.NotContains(t, body, "sessions")
	assert.NotContains(t, body, "knowledge_gaps")
}

func TestRegisterDefaultsExperienceLevel(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/learners", gin.H{"username": "bob"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "beginner", decodeObject(t, w)["experience_level"])
}

func TestRegisterRequiresUsername(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/learners", gin.H{"learning_goals": "anything"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeObject(t, w), "error")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.registerLearner(t, "carol")

	w := env.do(t, http.MethodPost, "/api/learners", gin.H{"username": "carol"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", decodeObject(t, w)["error"])

	var count int64
	require.NoError(t, env.db.Model(&model.Learner{}).Where("username = ?", "carol").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
