package assistant

import (
	"fmt"

	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
)

// maxPromptTranscriptChars caps the timestamped transcript inserted into the
// summary prompt.
const maxPromptTranscriptChars = 3000

const summaryPromptFormat = `
Summarize this YouTube transcript in under 150 words.

Respond strictly in %s.

Format:

🎥 Video Title:
📌 5 Key Points:
⏱ Important Timestamps (3–5 major moments):
🧠 Core Takeaway:

Transcript with timestamps:
%s
`

const answerPromptFormat = `
Answer strictly using the context below.
Respond in %s.
If answer is not present, say:
"This topic is not covered in the video."

Context:
%s

Question:
%s
`

const actionPointsPromptFormat = `
Extract actionable insights from the video context below.

Respond in %s.

Format:
📌 Actionable Insights:
- ...
- ...
- ...

Context:
%s
`

func buildSummaryPrompt(timestampedText string, language entities.Language) string {
	return fmt.Sprintf(summaryPromptFormat, language, truncateRunes(timestampedText, maxPromptTranscriptChars))
}

func buildAnswerPrompt(question, context string, language entities.Language) string {
	return fmt.Sprintf(answerPromptFormat, language, context, question)
}

func buildActionPointsPrompt(context string, language entities.Language) string {
	return fmt.Sprintf(actionPointsPromptFormat, language, context)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
