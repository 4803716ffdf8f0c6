package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourabh020820033/learning-path/internal/application/usecase/analysis"
	"github.com/sourabh020820033/learning-path/pkg/apperror"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

type AnalysisHandler struct {
	analyzeUseCase *analysis.AnalyzeUseCase
	logger         logger.Logger
}

func NewAnalysisHandler(uc *analysis.AnalyzeUseCase, log logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzeUseCase: uc, logger: log}
}

func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for analysis", err))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill priority", err))
		return
	}

	output, err := h.analyzeUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAnalysisResponse(output))
}
