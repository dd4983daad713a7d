package assistant

import (
	"sort"
	"strings"
)

const (
	// DefaultChunkSize is the maximum word count per transcript chunk.
	DefaultChunkSize = 250

	// answerChunkCount chunks (highest lexical overlap) form the Q&A context.
	answerChunkCount = 2

	// actionChunkCount chunks (original order, unscored) form the
	// action-point context.
	actionChunkCount = 3
)

// ChunkText splits text on whitespace and groups the words into consecutive
// runs of chunkSize, each rejoined with single spaces. The last chunk may be
// shorter. Empty input yields no chunks.
func ChunkText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+chunkSize-1)/chunkSize)
	for i := 0; i < len(words); i += chunkSize {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// Score computes the lexical overlap between a question and a chunk:
// |unique shared words| / (|unique question words| + 1), both lower-cased and
// whitespace-split. The +1 keeps the score strictly below 1 and defined for
// an empty question. Always in [0, 1).
func Score(question, chunk string) float64 {
	questionWords := wordSet(question)
	chunkWords := wordSet(chunk)

	overlap := 0
	for word := range questionWords {
		if _, ok := chunkWords[word]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(questionWords)+1)
}

// AnswerContext ranks chunks by descending overlap with the question (stable,
// so equal scores keep transcript order) and joins the top two with a blank
// line.
func AnswerContext(question string, chunks []string) string {
	scores := make([]float64, len(chunks))
	for i, chunk := range chunks {
		scores[i] = Score(question, chunk)
	}

	order := make([]int, len(chunks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	n := answerChunkCount
	if len(chunks) < n {
		n = len(chunks)
	}
	top := make([]string, 0, n)
	for _, idx := range order[:n] {
		top = append(top, chunks[idx])
	}
	return strings.Join(top, "\n\n")
}

// ActionContext joins the first three chunks in original order with blank
// lines. Action points summarize the video's opening content, so no scoring
// is applied.
func ActionContext(chunks []string) string {
	n := actionChunkCount
	if len(chunks) < n {
		n = len(chunks)
	}
	return strings.Join(chunks[:n], "\n\n")
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
