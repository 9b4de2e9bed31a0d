package wordgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert English tutor preparing students for university entrance exams at advanced IELTS/SAT/TOEFL academic levels. Your persona is encouraging and precise.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d advanced English vocabulary word(s) suitable for academic success at university level.\n\n", input.Count)

	b.WriteString("Rules:\n")
	b.WriteString("1. Words must be distinct and not in the list of already learned words below.\n")
	b.WriteString("2. Words should be challenging but useful for academic writing (verbs, adjectives, abstract nouns).\n")
	b.WriteString("3. Include a quiz_sentence: a new sentence using the word, with the target word replaced by '_______'.\n")
	b.WriteString("4. Include an options array with 4 entries: the correct word and 3 plausible distractors (similar spelling or meaning).\n")
	b.WriteString("5. Return purely JSON.\n")

	b.WriteString("\nAlready learned words:\n")
	b.WriteString(buildExclusions(input.Exclude, cfg.MaxExclude))

	return b.String()
}

// buildExclusions formats seen words for the prompt, keeping only the
// most recent max entries. Returns "None" for an empty list.
func buildExclusions(seen []string, max int) string {
	if len(seen) == 0 {
		return "None"
	}
	if max > 0 && len(seen) > max {
		seen = seen[len(seen)-max:]
	}
	return strings.Join(seen, ", ")
}
