package sentiment

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	_ "embed"

	"github.com/pscheid92/dreamjournal/internal/domain"
)

//go:embed lexicon.txt
var lexiconData []byte

var (
	lexiconOnce sync.Once
	lexicon     map[string]int
	lexiconErr  error
)

// Classifier scores text against the embedded valence lexicon and maps the
// sign of the total score onto a sentiment label.
type Classifier struct {
	lexicon map[string]int
}

// NewClassifier parses the embedded lexicon (once per process) and returns a
// ready classifier. The lexicon is part of the binary, so a parse failure is
// a build defect and panics rather than returning an error.
func NewClassifier() *Classifier {
	lexiconOnce.Do(func() {
		lexicon, lexiconErr = parseLexicon(lexiconData)
	})
	if lexiconErr != nil {
		panic(fmt.Sprintf("sentiment: embedded lexicon is malformed: %v", lexiconErr))
	}
	return &Classifier{lexicon: lexicon}
}

// Classify maps text onto a sentiment label: score > 0 is Positive,
// score < 0 is Negative, score == 0 (including empty text) is Neutral.
func (c *Classifier) Classify(text string) domain.Sentiment {
	score := c.Score(text)
	switch {
	case score > 0:
		return domain.SentimentPositive
	case score < 0:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// Score returns the summed valence of all lexicon tokens in text.
// Tokenization lowercases and splits on anything that is not a letter
// or an apostrophe, so punctuation never influences the score.
func (c *Classifier) Score(text string) int {
	total := 0
	for _, token := range tokenize(text) {
		total += c.lexicon[token]
	}
	return total
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func parseLexicon(data []byte) (map[string]int, error) {
	words := make(map[string]int)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		word, value, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected <word>\\t<score>, got %q", line, text)
		}

		score, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid score for %q: %w", line, word, err)
		}
		words[word] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	return words, nil
}
