package controller

import (
	"errors"

	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	LearnerService *service.LearnerService
}

func NewLearnerController(learnerService *service.LearnerService) *LearnerController {
	return &LearnerController{LearnerService: learnerService}
}

// RegisterLearnerRequest is the registration payload.
// swagger:model RegisterLearnerRequest
type RegisterLearnerRequest struct {
	Username        string `json:"username" binding:"required"`
	LearningGoals   string `json:"learning_goals"`
	ExperienceLevel string `json:"experience_level"`
}

// Register godoc
// @Summary Register a learner
// @Description Creates a learner profile with learning goals and experience level
// @Tags learners
// @Accept json
// @Produce json
// @Param body body RegisterLearnerRequest true "Learner profile"
// @Success 201 {object} model.Learner
// @Failure 400 {object} map[string]string "Missing or duplicate username"
// @Failure 500 {object} map[string]string
// @Router /api/learners [post]
func (c *LearnerController) Register(ctx *gin.Context) {
	var req RegisterLearnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, err := c.LearnerService.Register(req.Username, req.LearningGoals, req.ExperienceLevel)
	if err != nil {
		if errors.Is(err, util.ErrUsernameTaken) {
			util.BadRequest(ctx, "Username already exists")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, learner)
}
