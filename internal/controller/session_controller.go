package controller

import (
	"errors"
	"io"

	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// CreateSessionRequest carries the optional lesson topic.
// swagger:model CreateSessionRequest
type CreateSessionRequest struct {
	Topic string `json:"topic"`
}

// Create godoc
// @Summary Generate a learning session
// @Description Generates lesson content for the learner and persists it as a session. Provider outages degrade to fallback content, never to an error.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Learner id"
// @Param body body CreateSessionRequest false "Lesson topic (defaults to a generic label)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid learner id or malformed body"
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 500 {object} map[string]string
// @Router /api/learners/{id}/sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	learnerID, ok := learnerIDParam(ctx)
	if !ok {
		return
	}

	// Topic is optional; an absent body means the default topic.
	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.CreateSession(ctx.Request.Context(), learnerID, req.Topic)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, "Learner not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"success":  true,
		"id":       session.ID,
		"topic":    session.Topic,
		"content":  session.Content,
		"progress": session.Progress,
	})
}

// List godoc
// @Summary List a learner's sessions
// @Description Returns every session owned by the learner in insertion order. Unknown learner ids yield an empty array, not a 404.
// @Tags sessions
// @Produce json
// @Param id path int true "Learner id"
// @Success 200 {array} model.LearningSession
// @Failure 400 {object} map[string]string "Invalid learner id"
// @Failure 500 {object} map[string]string
// @Router /api/learners/{id}/sessions [get]
func (c *SessionController) List(ctx *gin.Context) {
	learnerID, ok := learnerIDParam(ctx)
	if !ok {
		return
	}

	sessions, err := c.SessionService.ListSessions(learnerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if sessions == nil {
		sessions = []model.LearningSession{}
	}
	util.Success(ctx, sessions)
}
