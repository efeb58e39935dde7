package controller

import (
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KnowledgeGapController struct {
	KnowledgeGapService *service.KnowledgeGapService
}

func NewKnowledgeGapController(gapService *service.KnowledgeGapService) *KnowledgeGapController {
	return &KnowledgeGapController{KnowledgeGapService: gapService}
}

// List godoc
// @Summary List a learner's knowledge gaps
// @Description Returns recorded knowledge gaps for the learner. No endpoint writes gaps yet, so the array is empty until gap identification ships.
// @Tags knowledge-gaps
// @Produce json
// @Param id path int true "Learner id"
// @Success 200 {array} model.KnowledgeGap
// @Failure 400 {object} map[string]string "Invalid learner id"
// @Failure 500 {object} map[string]string
// @Router /api/learners/{id}/knowledge-gaps [get]
func (c *KnowledgeGapController) List(ctx *gin.Context) {
	learnerID, ok := learnerIDParam(ctx)
	if !ok {
		return
	}

	gaps, err := c.KnowledgeGapService.ListGaps(learnerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if gaps == nil {
		gaps = []model.KnowledgeGap{}
	}
	util.Success(ctx, gaps)
}
