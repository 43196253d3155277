package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fadilmartias/interview-evaluator/internal/model"
	"github.com/tidwall/gjson"
)

const codeFence = "```"

// StripCodeFence removes a markdown fence around the model output. When the
// text starts with a fence the first line is always dropped; the last line is
// dropped only if it is exactly a closing fence.
func StripCodeFence(text string) string {
	if !strings.HasPrefix(text, codeFence) {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == codeFence {
		return strings.Join(lines[1:len(lines)-1], "\n")
	}
	return strings.Join(lines[1:], "\n")
}

// ParseEvaluation turns raw model output into an Evaluation. score,
// criteria_breakdown (relevance, clarity, depth, impact) and summary are
// required. Missing or null lists become empty. Numbers are not range checked.
// When a key repeats, the last occurrence wins.
func ParseEvaluation(raw string) (*model.Evaluation, error) {
	text := StripCodeFence(strings.TrimSpace(raw))

	var doc jsonObject
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	if doc == nil {
		return nil, &ParseError{Raw: text, Err: errors.New("expected a JSON object")}
	}

	eval, err := mapEvaluation(doc)
	if err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	return eval, nil
}

// jsonObject keeps the decoder's last-wins handling of duplicate keys; values
// are inspected with gjson.
type jsonObject map[string]json.RawMessage

func (o jsonObject) get(key string) gjson.Result {
	raw, ok := o[key]
	if !ok {
		return gjson.Result{}
	}
	return gjson.ParseBytes(raw)
}

func mapEvaluation(doc jsonObject) (*model.Evaluation, error) {
	var (
		eval model.Evaluation
		err  error
	)

	if eval.Score, err = requiredInt(doc, "", "score"); err != nil {
		return nil, err
	}

	if !present(doc.get("criteria_breakdown")) {
		return nil, missingField("criteria_breakdown")
	}
	var breakdown jsonObject
	if err := json.Unmarshal(doc["criteria_breakdown"], &breakdown); err != nil {
		return nil, fmt.Errorf("field %q is not an object", "criteria_breakdown")
	}
	const prefix = "criteria_breakdown."
	if eval.CriteriaBreakdown.Relevance, err = requiredInt(breakdown, prefix, "relevance"); err != nil {
		return nil, err
	}
	if eval.CriteriaBreakdown.Clarity, err = requiredInt(breakdown, prefix, "clarity"); err != nil {
		return nil, err
	}
	if eval.CriteriaBreakdown.Depth, err = requiredInt(breakdown, prefix, "depth"); err != nil {
		return nil, err
	}
	if eval.CriteriaBreakdown.Impact, err = requiredInt(breakdown, prefix, "impact"); err != nil {
		return nil, err
	}
	if jobAlignment := breakdown.get("job_alignment"); present(jobAlignment) {
		v, err := toInt(jobAlignment, prefix+"job_alignment")
		if err != nil {
			return nil, err
		}
		eval.CriteriaBreakdown.JobAlignment = &v
	}

	summary := doc.get("summary")
	if !present(summary) {
		return nil, missingField("summary")
	}
	if summary.Type != gjson.String {
		return nil, fmt.Errorf("field %q is not a string", "summary")
	}
	eval.Summary = summary.Str

	if eval.Strengths, err = stringList(doc, "strengths"); err != nil {
		return nil, err
	}
	if eval.Weaknesses, err = stringList(doc, "weaknesses"); err != nil {
		return nil, err
	}
	if eval.ImprovementSuggestions, err = stringList(doc, "improvement_suggestions"); err != nil {
		return nil, err
	}

	return &eval, nil
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

func missingField(path string) error {
	return fmt.Errorf("missing required field %q", path)
}

func requiredInt(obj jsonObject, prefix, key string) (int, error) {
	r := obj.get(key)
	if !present(r) {
		return 0, missingField(prefix + key)
	}
	return toInt(r, prefix+key)
}

// toInt keeps integers exact and accepts integral floats such as 85.0.
// Values outside the int64 range are rejected rather than wrapped.
func toInt(r gjson.Result, path string) (int, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("field %q is not a number: %s", path, r.Raw)
	}
	n, err := strconv.ParseInt(r.Raw, 10, 64)
	if err == nil {
		return int(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("field %q is out of range: %s", path, r.Raw)
	}

	f, err := strconv.ParseFloat(r.Raw, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not a number: %s", path, r.Raw)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("field %q is not an integer: %s", path, r.Raw)
	}
	// 2^63 is exact in float64; anything at or beyond it does not fit.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("field %q is out of range: %s", path, r.Raw)
	}
	return int(int64(f)), nil
}

func stringList(doc jsonObject, key string) ([]string, error) {
	r := doc.get(key)
	if !present(r) {
		return []string{}, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("field %q is not a list", key)
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("field %q item %d is not a string", key, i)
		}
		out = append(out, item.Str)
	}
	return out, nil
}
