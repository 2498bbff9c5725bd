package text

import (
	"iter"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// splitter breaks paragraph into sentences. Only English training data is
// available, for other languages splitter is not created.
type splitter struct {
	*sentences.DefaultSentenceTokenizer
}

func newSplitter(lang language.Tag, log *zap.Logger) *splitter {
	base, confidence := lang.Base()
	if confidence == language.No || base.String() != "en" {
		log.Warn("No sentence tokenizer data for language, paragraphs will be wrapped", zap.Stringer("tag", lang))
		return nil
	}
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentence tokenizer", zap.Stringer("tag", lang), zap.Error(err))
		return nil
	}
	return &splitter{tokenizer}
}

// Sentences returns trimmed non-empty sentences of the text.
func (s *splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, sentence := range s.Tokenize(in) {
			text := strings.TrimSpace(sentence.Text)
			if len(text) == 0 {
				continue
			}
			if !yield(text) {
				return
			}
		}
	}
}
