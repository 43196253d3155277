package model

// CriteriaBreakdown holds the per-criterion sub-scores returned by the LLM.
// JobAlignment is nil when no job description was supplied or the model
// answered null.
type CriteriaBreakdown struct {
	Relevance    int  `json:"relevance"`
	Clarity      int  `json:"clarity"`
	Depth        int  `json:"depth"`
	Impact       int  `json:"impact"`
	JobAlignment *int `json:"job_alignment"`
}

// Evaluation is the canonical result of one evaluation. It lives for a single
// request only. Scores are copied as the model produced them, without range
// checks.
type Evaluation struct {
	Score                  int               `json:"score"`
	CriteriaBreakdown      CriteriaBreakdown `json:"criteria_breakdown"`
	Summary                string            `json:"summary"`
	Strengths              []string          `json:"strengths"`
	Weaknesses             []string          `json:"weaknesses"`
	ImprovementSuggestions []string          `json:"improvement_suggestions"`
}
