package summary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
)

// Fixed contract values, not configuration.
const (
	maxKeyPoints        = 10
	maxActionItems      = 5
	maxKeywords         = 15
	maxSummarySentences = 3
	// candidateSentences bounds how far into the text summary sentences
	// are drawn from.
	candidateSentences = 5
	// minSentenceLen filters out fragments that are too short to carry
	// a point on their own.
	minSentenceLen = 20
	// minKeywordLen filters out short tokens before frequency counting.
	minKeywordLen = 3
)

var (
	reSentence = regexp.MustCompile(`[.!?]+`)
	reWord     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// actionVerbs are the literal substrings that mark a segment as a potential
// action item.
var actionVerbs = []string{"todo", "need to", "should", "will", "action"}

// stopWords is the fixed set of function words excluded from keyword
// frequency counting. The exact set is part of the contract.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "can": true, "shall": true,
}

// Data is the derived summary view of a transcript. It is recomputed fresh
// on every extraction and never cached or mutated in place.
type Data struct {
	Speakers      []string
	TotalSegments int
	KeyPoints     []string
	ActionItems   []string
	Keywords      []string
	SummaryText   string
}

// Extract derives summary data from transcript segments. It is a pure
// function: identical input yields identical output.
func Extract(segments []transcript.Segment) Data {
	var (
		allText     []string
		speakers    []string
		seenSpeaker = map[string]bool{}
		keyPoints   []string
		actionItems []string
	)

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		allText = append(allText, text)

		if !seenSpeaker[seg.Speaker] {
			seenSpeaker[seg.Speaker] = true
			speakers = append(speakers, seg.Speaker)
		}

		lower := strings.ToLower(text)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				actionItems = append(actionItems, fmt.Sprintf("%s: %s", seg.Speaker, text))
				break
			}
		}

		for _, sentence := range splitSentences(text) {
			if utf8.RuneCountInString(sentence) > minSentenceLen {
				keyPoints = append(keyPoints, sentence)
			}
		}
	}

	fullText := strings.Join(allText, " ")

	return Data{
		Speakers:      speakers,
		TotalSegments: len(segments),
		KeyPoints:     truncate(keyPoints, maxKeyPoints),
		ActionItems:   truncate(actionItems, maxActionItems),
		Keywords:      truncate(extractKeywords(fullText), maxKeywords),
		SummaryText:   summaryText(fullText),
	}
}

// extractKeywords counts word frequencies over the case-folded corpus and
// keeps tokens that appear more than once, most frequent first. Ties keep
// first-occurrence order, so output is deterministic.
func extractKeywords(text string) []string {
	words := reWord.FindAllString(strings.ToLower(text), -1)

	freq := map[string]int{}
	var order []string
	for _, w := range words {
		if utf8.RuneCountInString(w) <= minKeywordLen || stopWords[w] {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	var keywords []string
	for _, w := range order {
		if freq[w] > 1 {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// summaryText joins up to three substantial sentences drawn from the first
// five found in the corpus, in original order.
func summaryText(fullText string) string {
	var substantial []string
	for _, sentence := range splitSentences(fullText) {
		if utf8.RuneCountInString(sentence) > minSentenceLen {
			substantial = append(substantial, sentence)
		}
	}
	substantial = truncate(substantial, candidateSentences)
	substantial = truncate(substantial, maxSummarySentences)
	return strings.Join(substantial, " ")
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range reSentence.Split(text, -1) {
		sentences = append(sentences, strings.TrimSpace(s))
	}
	return sentences
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
