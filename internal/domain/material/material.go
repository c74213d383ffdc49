// Package material defines the learning-material shapes produced by the
// generation features. Field tags mirror the JSON the web UI consumes.
package material

// VocabItem is a vocabulary word or phrase with its Vietnamese meaning.
// Example and Explanation are filled by some features only.
type VocabItem struct {
	English     string `json:"english"`
	Vietnamese  string `json:"vietnamese"`
	Example     string `json:"example,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// BandAnswer is a speaking answer generated for one target band.
type BandAnswer struct {
	Band       string      `json:"band"`
	Answer     string      `json:"answer"`
	Vocabulary []VocabItem `json:"vocabulary"`
	Structures []VocabItem `json:"structures"`
}

// BandResponse is a writing response generated for one target band.
type BandResponse struct {
	Band       string      `json:"band"`
	Response   string      `json:"response"`
	Vocabulary []VocabItem `json:"vocabulary"`
	Structures []VocabItem `json:"structures"`
}

// PhraseSets groups the two phrase lists of the vocabulary feature.
type PhraseSets struct {
	Vocabulary []VocabItem `json:"vocabulary"`
	Structures []VocabItem `json:"structures"`
}

// WritingError is one mistake found in a learner's writing.
type WritingError struct {
	Location      string `json:"location"`
	OriginalText  string `json:"originalText"`
	ErrorType     string `json:"errorType"` // grammar, typo, or spelling
	Explanation   string `json:"explanation"`
	CorrectedText string `json:"correctedText"`
}

// WritingFixReport is the full feedback for a writing submission.
type WritingFixReport struct {
	Score            float64        `json:"score"`
	ScoreExplanation string         `json:"scoreExplanation"`
	Errors           []WritingError `json:"errors"`
	CorrectedAnswer  string         `json:"correctedAnswer"`
}

// Idiom is an idiomatic expression with a usage example.
type Idiom struct {
	English    string `json:"english"`
	Vietnamese string `json:"vietnamese"`
	Usage      string `json:"usage"`
}

// GrammarPoint explains a grammar structure found in a speech.
type GrammarPoint struct {
	Structure   string   `json:"structure"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
}

// SentencePattern is a reusable spoken-English sentence frame.
type SentencePattern struct {
	Pattern     string   `json:"pattern"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
}

// PracticeMaterials bundles a practice speech with its study aids.
type PracticeMaterials struct {
	Speech           string            `json:"speech"`
	Vocabulary       []VocabItem       `json:"vocabulary"`
	Idioms           []Idiom           `json:"idioms"`
	Grammar          []GrammarPoint    `json:"grammar"`
	SentencePatterns []SentencePattern `json:"sentencePatterns"`
}

// RelatedVerb is the base verb form behind a studied word.
type RelatedVerb struct {
	Verb          string `json:"verb"`
	Pronunciation string `json:"pronunciation"`
	Meaning       string `json:"meaning"`
}

// VerbPhrase is a verb pattern or collocation.
type VerbPhrase struct {
	Phrase  string `json:"phrase"`
	Meaning string `json:"meaning"`
}

// WordBreakdown is the detailed study entry for one vocabulary word.
type WordBreakdown struct {
	Word          string       `json:"word"`
	WordType      string       `json:"word_type"`
	Pronunciation string       `json:"pronunciation"`
	Meaning       string       `json:"meaning"`
	RelatedVerb   *RelatedVerb `json:"related_verb,omitempty"`
	VerbPhrases   []VerbPhrase `json:"verb_phrases"`
	Synonyms      []string     `json:"synonyms"`
}

// GameCard is a word/meaning pair for the flashcard game.
type GameCard struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}
