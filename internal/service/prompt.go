package service

import "strings"

const rubricPrompt = `You are an Interview Answer Evaluation Agent that evaluates candidate interview answers using concise reasoning and structured scoring.

Evaluation Criteria:
- Relevance (0-25): Directly answers the question
- Clarity & Structure (0-20): Logical, concise, easy to follow
- Depth & Evidence (0-25): Uses examples, results, or concrete reasoning
- Impact & Professionalism (0-15): Demonstrates value, ownership, confidence
- Job Alignment (0-15): Matches required skills (only if a job description is provided)

Scoring: 0-100 (90-100 Excellent, 75-89 Good, 60-74 Average, 40-59 Weak, 0-39 Very weak)
The score is the sum of the criteria scores.`

const jobAlignmentInstruction = `A job description is provided: score job_alignment from 0 to 15.`

const redistributeInstruction = `No job description is provided: set job_alignment to null and redistribute its weight proportionally among relevance, clarity, depth and impact.`

const outputInstruction = `Return ONLY valid JSON:
{"score": 0, "criteria_breakdown": {"relevance": 0, "clarity": 0, "depth": 0, "impact": 0, "job_alignment": null}, "summary": "", "strengths": [], "weaknesses": [], "improvement_suggestions": []}

No markdown, no explanation. Only valid JSON.`

// BuildPrompt returns the full evaluation prompt: the rubric followed by the
// question, the answer and the job description. Inputs are used verbatim.
func BuildPrompt(question, answer, jobDescription string) string {
	var b strings.Builder
	b.WriteString(rubricPrompt)
	b.WriteString("\n\n")
	if jobDescription != "" {
		b.WriteString(jobAlignmentInstruction)
	} else {
		b.WriteString(redistributeInstruction)
	}
	b.WriteString("\n\n")
	b.WriteString(outputInstruction)

	b.WriteString("\n\nEvaluate:\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\nAnswer: ")
	b.WriteString(answer)
	b.WriteString("\nJob Description: ")
	if jobDescription != "" {
		b.WriteString(jobDescription)
	} else {
		b.WriteString("Not provided")
	}
	return b.String()
}
