package extraction

// Annotator is an optional NLP capability exposing named entities and noun
// phrases for a text. Implementations may be backed by any annotation
// service; the engine only branches on whether an Annotator was supplied,
// never on the concrete backend.
type Annotator interface {
	// Entities returns the named entities recognized in text.
	Entities(text string) []string
	// NounPhrases returns the noun phrases recognized in text.
	NounPhrases(text string) []string
}

// scanAnnotations checks named entities and noun phrases against the
// vocabulary. With no annotator configured the strategy contributes
// nothing; extraction degrades gracefully rather than failing.
func (e *Engine) scanAnnotations(text string, found map[string]struct{}) {
	if e.annotator == nil {
		return
	}
	for _, entity := range e.annotator.Entities(text) {
		e.checkToken(entity, found)
	}
	for _, phrase := range e.annotator.NounPhrases(text) {
		e.checkToken(phrase, found)
	}
}
