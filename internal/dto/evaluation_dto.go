package dto

import "github.com/fadilmartias/interview-evaluator/internal/model"

// EvaluationRequest is the body of POST /evaluate. Question and Answer are
// pointers so that "key present" can be told apart from "empty string".
type EvaluationRequest struct {
	Question       *string `json:"question" validate:"required"`
	Answer         *string `json:"answer" validate:"required"`
	JobDescription *string `json:"job_description"`
	Model          *string `json:"model"`
	APIKey         *string `json:"api_key"`
}

func (r EvaluationRequest) GetQuestion() string       { return deref(r.Question) }
func (r EvaluationRequest) GetAnswer() string         { return deref(r.Answer) }
func (r EvaluationRequest) GetJobDescription() string { return deref(r.JobDescription) }
func (r EvaluationRequest) GetModel() string          { return deref(r.Model) }
func (r EvaluationRequest) GetAPIKey() string         { return deref(r.APIKey) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type CriteriaBreakdownDTO struct {
	Relevance    int  `json:"relevance"`
	Clarity      int  `json:"clarity"`
	Depth        int  `json:"depth"`
	Impact       int  `json:"impact"`
	JobAlignment *int `json:"job_alignment"`
}

type EvaluationResponse struct {
	Score                  int                  `json:"score"`
	CriteriaBreakdown      CriteriaBreakdownDTO `json:"criteria_breakdown"`
	Summary                string               `json:"summary"`
	Strengths              []string             `json:"strengths"`
	Weaknesses             []string             `json:"weaknesses"`
	ImprovementSuggestions []string             `json:"improvement_suggestions"`
}

func NewEvaluationResponse(e *model.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		Score: e.Score,
		CriteriaBreakdown: CriteriaBreakdownDTO{
			Relevance:    e.CriteriaBreakdown.Relevance,
			Clarity:      e.CriteriaBreakdown.Clarity,
			Depth:        e.CriteriaBreakdown.Depth,
			Impact:       e.CriteriaBreakdown.Impact,
			JobAlignment: e.CriteriaBreakdown.JobAlignment,
		},
		Summary:                e.Summary,
		Strengths:              nonNil(e.Strengths),
		Weaknesses:             nonNil(e.Weaknesses),
		ImprovementSuggestions: nonNil(e.ImprovementSuggestions),
	}
}

// nonNil keeps empty lists serialised as [] rather than null.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

type ModelCatalogResponse struct {
	DefaultModel string   `json:"default_model"`
	GeminiModels []string `json:"gemini_models"`
	ClaudeModels []string `json:"claude_models"`
}
