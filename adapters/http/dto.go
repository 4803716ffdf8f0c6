package http

import (
	"fmt"

	"github.com/sourabh020820033/learning-path/internal/application/usecase/analysis"
	catalogUC "github.com/sourabh020820033/learning-path/internal/application/usecase/catalog"
	domain "github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
)

// Analysis DTOs

type UserSkillRequest struct {
	Name         string `json:"name" binding:"required"`
	CurrentLevel int    `json:"current_level" binding:"min=0,max=100"`
	TargetLevel  int    `json:"target_level" binding:"min=0,max=100"`
	Priority     string `json:"priority" binding:"required"`
}

type AnalyzeRequest struct {
	Goals     []string           `json:"goals" binding:"required,min=1"`
	Skills    []UserSkillRequest `json:"skills" binding:"required,min=1,dive"`
	Timeframe string             `json:"timeframe" binding:"required"`
}

func (r *AnalyzeRequest) ToInput() (analysis.AnalyzeInput, error) {
	skills := make([]domain.UserSkill, len(r.Skills))
	for i, s := range r.Skills {
		p, err := catalog.ParsePriority(s.Priority)
		if err != nil {
			return analysis.AnalyzeInput{}, fmt.Errorf("skills[%d]: %w", i, err)
		}
		skills[i] = domain.UserSkill{
			Name:         s.Name,
			CurrentLevel: s.CurrentLevel,
			TargetLevel:  s.TargetLevel,
			Priority:     p,
		}
	}
	return analysis.AnalyzeInput{
		Goals:     r.Goals,
		Skills:    skills,
		Timeframe: r.Timeframe,
	}, nil
}

type AnalysisResponse struct {
	AnalysisID string           `json:"analysis_id"`
	Cached     bool             `json:"cached"`
	Result     domain.Result    `json:"result"`
	Dashboard  domain.Dashboard `json:"dashboard"`
}

func ToAnalysisResponse(out *analysis.AnalyzeOutput) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID: out.AnalysisID.String(),
		Cached:     out.Cached,
		Result:     out.Result,
		Dashboard:  out.Dashboard,
	}
}

// Catalog DTOs

type RoleSummaryDTO struct {
	Key              string `json:"key"`
	RequirementCount int    `json:"requirement_count"`
}

type RoleDTO struct {
	Key          string                     `json:"key"`
	Requirements []catalog.SkillRequirement `json:"requirements"`
}

func ToRoleSummaryDTOs(roles []catalogUC.RoleSummary) []RoleSummaryDTO {
	dtos := make([]RoleSummaryDTO, len(roles))
	for i, r := range roles {
		dtos[i] = RoleSummaryDTO{Key: r.Key, RequirementCount: r.RequirementCount}
	}
	return dtos
}

func ToRoleDTO(r *catalog.Role) RoleDTO {
	return RoleDTO{Key: r.Key, Requirements: r.Requirements}
}
