package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	analysisUC "github.com/sourabh020820033/learning-path/internal/application/usecase/analysis"
	catalogUC "github.com/sourabh020820033/learning-path/internal/application/usecase/catalog"
	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

type RouterTestSuite struct {
	suite.Suite
	Router *gin.Engine
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()
	cat := catalog.Default()

	analyzeUseCase := analysisUC.NewAnalyzeUseCase(analysis.NewAnalyzer(cat), nil, nil, log)
	s.Router = NewRouter(
		NewAnalysisHandler(analyzeUseCase, log),
		NewCatalogHandler(catalogUC.NewCatalogUseCase(cat)),
		log,
	)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"status":"UP"}`, rr.Body.String())
}

func (s *RouterTestSuite) Test_CreateAnalysis() {
	rr := s.do(http.MethodPost, "/api/analyses", gin.H{
		"goals":     []string{"Software Engineer"},
		"skills":    []gin.H{{"name": "React", "current_level": 50, "target_level": 90, "priority": "High"}},
		"timeframe": "3-months",
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var resp AnalysisResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.NotEmpty(resp.AnalysisID)
	s.Len(resp.Result.SkillGaps, 8)
	s.Len(resp.Result.LearningPath, 3)
	s.Equal(25, resp.Result.SkillGaps[2].Gap)
	s.Equal(9, resp.Result.CompletionRate)
	s.Equal("3-months", resp.Dashboard.Timeframe)
}

func (s *RouterTestSuite) Test_CreateAnalysis_Invalid() {
	cases := map[string]any{
		"missing timeframe": gin.H{"goals": []string{"x"}, "skills": []gin.H{{"name": "Go", "priority": "low"}}},
		"no skills":         gin.H{"goals": []string{"x"}, "skills": []gin.H{}, "timeframe": "1-year"},
		"level too high":    gin.H{"goals": []string{"x"}, "skills": []gin.H{{"name": "Go", "current_level": 101, "priority": "low"}}, "timeframe": "1-year"},
		"bad priority":      gin.H{"goals": []string{"x"}, "skills": []gin.H{{"name": "Go", "priority": "urgent"}}, "timeframe": "1-year"},
		"blank goal":        gin.H{"goals": []string{" "}, "skills": []gin.H{{"name": "Go", "priority": "low"}}, "timeframe": "1-year"},
	}
	for name, body := range cases {
		rr := s.do(http.MethodPost, "/api/analyses", body)
		s.Equal(http.StatusBadRequest, rr.Code, name)

		var payload map[string]any
		s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &payload), name)
		s.Equal("invalid input", payload["error"], name)
	}
}

func (s *RouterTestSuite) Test_Roles() {
	rr := s.do(http.MethodGet, "/api/roles", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var roles []RoleSummaryDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &roles))
	s.Len(roles, 3)
	s.Equal("software engineer", roles[0].Key)

	rr = s.do(http.MethodGet, "/api/roles/data%20scientist", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var role RoleDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &role))
	s.Len(role.Requirements, 7)

	rr = s.do(http.MethodGet, "/api/roles/astronaut", nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *RouterTestSuite) Test_Resources() {
	rr := s.do(http.MethodGet, "/api/resources/React", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var res []catalog.LearningResource
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &res))
	s.Len(res, 2)

	rr = s.do(http.MethodGet, "/api/resources/Git", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())
}
