package service_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/interview-evaluator/internal/service"
)

const fullEvaluation = `{
  "score": 82,
  "criteria_breakdown": {"relevance": 22, "clarity": 17, "depth": 19, "impact": 12, "job_alignment": 12},
  "summary": "Solid answer with a concrete example.",
  "strengths": ["Specific example", "Clear outcome"],
  "weaknesses": ["Little reflection"],
  "improvement_suggestions": ["Quantify the result"]
}`

func TestParseEvaluationFullObject(t *testing.T) {
	eval, err := service.ParseEvaluation(fullEvaluation)
	require.NoError(t, err)

	require.Equal(t, 82, eval.Score)
	require.Equal(t, 22, eval.CriteriaBreakdown.Relevance)
	require.Equal(t, 17, eval.CriteriaBreakdown.Clarity)
	require.Equal(t, 19, eval.CriteriaBreakdown.Depth)
	require.Equal(t, 12, eval.CriteriaBreakdown.Impact)
	require.NotNil(t, eval.CriteriaBreakdown.JobAlignment)
	require.Equal(t, 12, *eval.CriteriaBreakdown.JobAlignment)
	require.Equal(t, "Solid answer with a concrete example.", eval.Summary)
	require.Equal(t, []string{"Specific example", "Clear outcome"}, eval.Strengths)
	require.Equal(t, []string{"Little reflection"}, eval.Weaknesses)
	require.Equal(t, []string{"Quantify the result"}, eval.ImprovementSuggestions)
}

func TestParseEvaluationStripsFence(t *testing.T) {
	plain, err := service.ParseEvaluation(fullEvaluation)
	require.NoError(t, err)

	fenced, err := service.ParseEvaluation("```json\n" + fullEvaluation + "\n```")
	require.NoError(t, err)
	require.Equal(t, plain, fenced)

	padded, err := service.ParseEvaluation("\n  ```\n" + fullEvaluation + "\n```\n\n")
	require.NoError(t, err)
	require.Equal(t, plain, padded)

	unclosed, err := service.ParseEvaluation("```json\n" + fullEvaluation)
	require.NoError(t, err)
	require.Equal(t, plain, unclosed)
}

func TestStripCodeFence(t *testing.T) {
	require.Equal(t, `{"a":1}`, service.StripCodeFence(`{"a":1}`))
	require.Equal(t, `{"a":1}`, service.StripCodeFence("```json\n{\"a\":1}\n```"))
	require.Equal(t, "{\"a\":1}\n``` trailing", service.StripCodeFence("```\n{\"a\":1}\n``` trailing"))
	require.Equal(t, "", service.StripCodeFence("```"))

	once := service.StripCodeFence(fullEvaluation)
	require.Equal(t, once, service.StripCodeFence(once))
}

func TestParseEvaluationDefaultsOptionalLists(t *testing.T) {
	eval, err := service.ParseEvaluation(`{"score": 70, "criteria_breakdown": {"relevance": 20, "clarity": 15, "depth": 20, "impact": 15}, "summary": "ok", "weaknesses": null}`)
	require.NoError(t, err)

	require.NotNil(t, eval.Strengths)
	require.Empty(t, eval.Strengths)
	require.NotNil(t, eval.Weaknesses)
	require.Empty(t, eval.Weaknesses)
	require.NotNil(t, eval.ImprovementSuggestions)
	require.Empty(t, eval.ImprovementSuggestions)
	require.Nil(t, eval.CriteriaBreakdown.JobAlignment)
}

func TestParseEvaluationNullJobAlignment(t *testing.T) {
	eval, err := service.ParseEvaluation(`{"score": 70, "criteria_breakdown": {"relevance": 20, "clarity": 15, "depth": 20, "impact": 15, "job_alignment": null}, "summary": "ok"}`)
	require.NoError(t, err)
	require.Nil(t, eval.CriteriaBreakdown.JobAlignment)
}

func TestParseEvaluationIntegralFloats(t *testing.T) {
	eval, err := service.ParseEvaluation(`{"score": 85.0, "criteria_breakdown": {"relevance": 25.0, "clarity": 20, "depth": 25, "impact": 15}, "summary": "ok"}`)
	require.NoError(t, err)
	require.Equal(t, 85, eval.Score)
	require.Equal(t, 25, eval.CriteriaBreakdown.Relevance)

	_, err = service.ParseEvaluation(`{"score": 85.5, "criteria_breakdown": {"relevance": 25, "clarity": 20, "depth": 25, "impact": 15}, "summary": "ok"}`)
	requireParseError(t, err)
	require.Contains(t, err.Error(), `field "score" is not an integer`)
}

func TestParseEvaluationOutOfRangePassesThrough(t *testing.T) {
	eval, err := service.ParseEvaluation(`{"score": 150, "criteria_breakdown": {"relevance": 40, "clarity": -1, "depth": 25, "impact": 15}, "summary": "ok"}`)
	require.NoError(t, err)
	require.Equal(t, 150, eval.Score)
	require.Equal(t, 40, eval.CriteriaBreakdown.Relevance)
	require.Equal(t, -1, eval.CriteriaBreakdown.Clarity)
}

func TestParseEvaluationMissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"score":                        `{"criteria_breakdown": {"relevance": 1, "clarity": 1, "depth": 1, "impact": 1}, "summary": "s"}`,
		"criteria_breakdown":           `{"score": 4, "summary": "s"}`,
		"criteria_breakdown.depth":     `{"score": 4, "criteria_breakdown": {"relevance": 1, "clarity": 1, "impact": 1}, "summary": "s"}`,
		"criteria_breakdown.relevance": `{"score": 4, "criteria_breakdown": {"relevance": null, "clarity": 1, "depth": 1, "impact": 1}, "summary": "s"}`,
		"summary":                      `{"score": 4, "criteria_breakdown": {"relevance": 1, "clarity": 1, "depth": 1, "impact": 1}}`,
	}
	for field, raw := range cases {
		eval, err := service.ParseEvaluation(raw)
		require.Nil(t, eval, field)
		requireParseError(t, err)
		require.Contains(t, err.Error(), `missing required field "`+field+`"`)
	}
}

func TestParseEvaluationWrongTypes(t *testing.T) {
	_, err := service.ParseEvaluation(`{"score": "90", "criteria_breakdown": {"relevance": 1, "clarity": 1, "depth": 1, "impact": 1}, "summary": "s"}`)
	requireParseError(t, err)

	_, err = service.ParseEvaluation(`{"score": 90, "criteria_breakdown": {"relevance": 1, "clarity": 1, "depth": 1, "impact": 1}, "summary": "s", "strengths": "one"}`)
	requireParseError(t, err)
	require.Contains(t, err.Error(), `field "strengths" is not a list`)
}

func TestParseEvaluationInvalidJSON(t *testing.T) {
	for _, raw := range []string{"", "I think the answer is good.", "null", "[1, 2]", "```json\n{\"score\": \n```"} {
		eval, err := service.ParseEvaluation(raw)
		require.Nil(t, eval, raw)
		requireParseError(t, err)
		require.Contains(t, err.Error(), "Failed to parse LLM response")
	}
}

func TestParseErrorCarriesFragment(t *testing.T) {
	_, err := service.ParseEvaluation("Sorry, I cannot evaluate this.")

	var parseErr *service.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, "Sorry, I cannot evaluate this.", parseErr.Raw)
	require.Contains(t, err.Error(), "Sorry, I cannot evaluate this.")
	require.Error(t, parseErr.Unwrap())
}

func requireParseError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var parseErr *service.ParseError
	require.True(t, errors.As(err, &parseErr), "expected *service.ParseError, got %T", err)
}

func TestParseEvaluationKeepsLargeIntegersExact(t *testing.T) {
	eval, err := service.ParseEvaluation(`{"score": 9007199254740993, "criteria_breakdown": {"relevance": -9223372036854775808, "clarity": 1e2, "depth": 1, "impact": 1}, "summary": "s"}`)
	require.NoError(t, err)
	require.Equal(t, int64(9007199254740993), int64(eval.Score))
	require.Equal(t, int64(math.MinInt64), int64(eval.CriteriaBreakdown.Relevance))
	require.Equal(t, 100, eval.CriteriaBreakdown.Clarity)
}

func TestParseEvaluationRejectsIntegersBeyondInt64(t *testing.T) {
	cases := map[string]string{
		"score":                        `{"score": 1e20, "criteria_breakdown": {"relevance": 1, "clarity": 1, "depth": 1, "impact": 1}, "summary": "s"}`,
		"criteria_breakdown.relevance": `{"score": 1, "criteria_breakdown": {"relevance": 99999999999999999999, "clarity": 1, "depth": 1, "impact": 1}, "summary": "s"}`,
		"criteria_breakdown.impact":    `{"score": 1, "criteria_breakdown": {"relevance": 1, "clarity": 1, "depth": 1, "impact": -1e19}, "summary": "s"}`,
	}
	for field, raw := range cases {
		eval, err := service.ParseEvaluation(raw)
		require.Nil(t, eval, field)
		requireParseError(t, err)
		require.Contains(t, err.Error(), `field "`+field+`" is out of range`)
	}
}

func TestParseEvaluationDuplicateKeysLastWins(t *testing.T) {
	eval, err := service.ParseEvaluation(`{"score": 10, "criteria_breakdown": {"relevance": 1, "clarity": 2, "depth": 3, "impact": 4, "impact": 14}, "summary": "first", "summary": "second", "score": 90}`)
	require.NoError(t, err)
	require.Equal(t, 90, eval.Score)
	require.Equal(t, 14, eval.CriteriaBreakdown.Impact)
	require.Equal(t, "second", eval.Summary)
}
