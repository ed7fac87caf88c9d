package services

import "strings"

const scorePromptWithContext = `You are a judge in a debate between two opposing sides whose job is to return a score between 0 and 100 for the following argument: {{argument}}. Consider the previous argument: {{previous_argument}} along with following attributes: relevance, clarity, evidence, and persuasiveness. Return your answer as a JSON object with the following format: { "score": 0 }. Do not include any other information in your response other than the JSON object.`

const scorePromptNoContext = `You are a judge in a debate between two opposing sides whose job is to return a score between 0 and 100 for the following argument: {{argument}}. Consider the following attributes: relevance, clarity, evidence, and persuasiveness. Return your answer as a JSON object with the following format: { "score": 0 }. Do not include any other information in your response other than the JSON object.`

// scoreArgumentPrompt builds the judging prompt, using the with-context
// variant when a previous argument exists.
func scoreArgumentPrompt(content, previous string) string {
	if previous == "" {
		return strings.NewReplacer("{{argument}}", content).Replace(scorePromptNoContext)
	}
	return strings.NewReplacer(
		"{{argument}}", content,
		"{{previous_argument}}", previous,
	).Replace(scorePromptWithContext)
}
