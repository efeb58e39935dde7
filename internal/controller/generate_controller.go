package controller

import (
	"errors"
	"io"

	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GenerateController struct {
	SessionService *service.SessionService
}

func NewGenerateController(sessionService *service.SessionService) *GenerateController {
	return &GenerateController{SessionService: sessionService}
}

// GenerateContentRequest optionally targets a learner; zero means the
// configured demo learner.
// swagger:model GenerateContentRequest
type GenerateContentRequest struct {
	LearnerID uint `json:"learner_id"`
}

// Generate godoc
// @Summary Generate standalone practice content
// @Description Demo endpoint: generates practice exercises without prior registration, creating the demo learner on first use.
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body GenerateContentRequest false "Optional learner id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 500 {object} map[string]string
// @Router /api/generate-content [post]
func (c *GenerateController) Generate(ctx *gin.Context) {
	var req GenerateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.GeneratePractice(ctx.Request.Context(), req.LearnerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"success":    true,
		"content":    session.Content,
		"session_id": session.ID,
	})
}
