// Package prompt builds the prompts sent to the completion provider.
//
// Conventions, kept consistent across builders:
//   - State the role and the task first.
//   - List concrete requirements the model must satisfy.
//   - Always end with the JSON schema so it's the last thing the model sees.
package prompt

import (
	"fmt"
	"strings"
)

// SystemExaminer is the system instruction for IELTS examiner features.
const SystemExaminer = "You are an expert IELTS examiner. Always respond with valid JSON only, no additional text or markdown."

// SystemTeacher is the system instruction for vocabulary/teaching features.
const SystemTeacher = "You are an expert IELTS teacher. Always respond with valid JSON only, no additional text or markdown."

// SystemCoach is the system instruction for the speaking-practice features.
const SystemCoach = "You are an expert English communication coach. Always respond with valid JSON only, no additional text or markdown."

// Speaking builds the prompt for one band of a speaking question.
func Speaking(question, part, band string) string {
	return fmt.Sprintf(`You are an expert IELTS speaking examiner. Generate a high-quality answer for IELTS Speaking Part %s that would score Band %s.

Question: %s

Requirements:
1. Provide a natural, fluent answer appropriate for Band %s level
2. Include advanced vocabulary (at least 8-10 words/phrases) that would impress examiners for Band %s
3. Include sophisticated grammatical structures (at least 5-6 structures) appropriate for Band %s
4. All vocabulary and structures must appear in the answer text
5. Vietnamese translations must be accurate and clear

Respond with ONLY this JSON, no explanation, no markdown:
{"answer": "the full answer text in English", "vocabulary": [{"english": "word or phrase", "vietnamese": "Vietnamese meaning"}], "structures": [{"english": "grammatical structure", "vietnamese": "Vietnamese explanation"}]}`,
		part, band, question, band, band, band)
}

// Writing builds the prompt for one band of a writing task.
// Task "1" describes visual data or letters; anything else is the essay task.
func Writing(input, taskType, band string) string {
	taskDescription := "Task 2 (essay writing)"
	taskRules := `- Address all parts of the question
- Present a clear position and support ideas with relevant examples
- Write at least 250 words`
	if taskType == "1" {
		taskDescription = "Task 1 (Academic: describe graph/chart/diagram, or General: write a letter)"
		taskRules = `- Describe the visual information accurately and highlight key features and trends
- Use appropriate vocabulary for describing data and processes
- Write at least 150 words`
	}

	return fmt.Sprintf(`You are an expert IELTS writing examiner. Generate a high-quality %s response that would score Band %s.

%s

Input: %s

Requirements:
1. Provide a natural, fluent response appropriate for Band %s level
2. Include advanced vocabulary (at least 10-15 words/phrases) appropriate for Band %s
3. Include sophisticated grammatical structures (at least 8-10 structures) appropriate for Band %s
4. All vocabulary and structures must appear in the response text

Respond with ONLY this JSON, no explanation, no markdown:
{"response": "the full writing response text in English", "vocabulary": [{"english": "word or phrase", "vietnamese": "Vietnamese meaning"}], "structures": [{"english": "grammatical structure", "vietnamese": "Vietnamese explanation"}]}`,
		taskDescription, band, taskRules, input, band, band, band)
}

// WritingFix builds the error-analysis prompt for a learner's writing.
// When the question arrives as an image, hasImage makes the prompt refer
// to the attached picture instead of inline text.
func WritingFix(question string, hasImage bool, answer string) string {
	questionLine := "Question: " + question
	if hasImage {
		questionLine = "Question (see attached image):"
	}

	return fmt.Sprintf(`You are an expert IELTS writing examiner. Analyze the following IELTS writing task and provide detailed feedback.

%s

Student's Answer:
%s

Provide:
1. An overall band score (0-9) with brief justification
2. A list of ALL grammatical errors, typos, spelling, and punctuation mistakes, ordered by appearance
3. For each error: the location/context, what is wrong, and a corrected version that keeps the original meaning
4. The complete corrected answer with all errors fixed but meaning preserved

Respond with ONLY this JSON, no explanation, no markdown:
{"score": 7.5, "scoreExplanation": "brief explanation of the score", "errors": [{"location": "Sentence 2, word 5", "originalText": "the incorrect text", "errorType": "grammar|typo|spelling", "explanation": "what is wrong", "correctedText": "the corrected text"}], "correctedAnswer": "the full corrected version"}`,
		questionLine, answer)
}

// Vocabulary builds the topic phrase-list prompt. taskType is "speaking"
// or "writing" and steers register and guidance.
func Vocabulary(topic, taskType string) string {
	isSpeaking := taskType == "speaking"

	taskDescription := "IELTS Writing"
	guidance := `Focus on academic and formal phrases: linking words, transition phrases, formal expressions for essays and reports, academic collocations, phrases for introducing ideas, contrasting, and concluding.`
	style := "Formal and suitable for academic writing"
	if isSpeaking {
		taskDescription = "IELTS Speaking"
		guidance = `Focus on conversational phrases and expressions: discourse markers ("Well, I think...", "To be honest..."), idiomatic expressions, collocations common in spoken English, and phrases for expressing opinions, agreeing, disagreeing, and giving examples.`
		style = "Conversational and suitable for spoken English"
	}

	return fmt.Sprintf(`You are an expert IELTS teacher. Generate comprehensive PHRASES and IDIOMS specifically for %s related to the topic: "%s"

%s

Requirements:
1. "vocabulary": 20-25 useful phrases/idioms (not single words) specific to "%s", natural and impressive for Band 7-9. %s.
2. "structures": 15-20 additional phrases/idioms related to "%s", different from the first set for variety.
3. Every item needs a Vietnamese meaning and an example sentence showing practical usage related to "%s".

Respond with ONLY this JSON, no explanation, no markdown:
{"vocabulary": [{"english": "phrase or idiom", "vietnamese": "Vietnamese meaning", "example": "example sentence in context"}], "structures": [{"english": "phrase or idiom", "vietnamese": "Vietnamese meaning", "example": "example sentence in context"}]}`,
		taskDescription, topic, guidance, topic, style, topic, topic)
}

// VocabularyLearn builds the word-breakdown prompt for a list of words.
func VocabularyLearn(words []string) string {
	return fmt.Sprintf(`You are an expert English teacher. For each of the following words, provide a detailed breakdown in Vietnamese and English.
Words: %s

Requirements:
1. Identify the base verb form for each word (e.g., "contribution" -> "contribute").
2. "verb_phrases" MUST include the basic verb pattern (e.g., "contribute to something") plus common phrasal verbs and collocations (e.g., "make a contribution to").
3. Include word type, IPA pronunciation, Vietnamese meaning, and synonyms.

Respond with ONLY this JSON, no explanation, no markdown:
{"results": [{"word": "the input word", "word_type": "noun|verb|adjective", "pronunciation": "/.../", "meaning": "Vietnamese meaning", "related_verb": {"verb": "base verb form", "pronunciation": "/.../", "meaning": "Vietnamese meaning of the verb"}, "verb_phrases": [{"phrase": "verb pattern or collocation", "meaning": "Vietnamese meaning"}], "synonyms": ["synonym 1", "synonym 2"]}]}`,
		strings.Join(words, ", "))
}

// SpeakingPractice builds the practice-generation prompt. format is
// "speech" (monologue) or "conversation" (two-person dialogue).
func SpeakingPractice(topic, format string) string {
	formatDescription := "single-person speech/monologue"
	formatRules := `- A natural, conversational speech a software engineer would use in this scenario
- Native-speaker style, not formal or academic; 200-300 words`
	if format == "conversation" {
		formatDescription = "two-person conversation/dialogue"
		formatRules = `- A realistic back-and-forth dialogue between two people, labelled "Person A:" and "Person B:"
- Natural interruptions, agreements, and responses; 6-10 exchanges; 200-300 words`
	}

	return fmt.Sprintf(`You are an expert English communication coach helping software engineers speak naturally with native English speakers at work.

The user wants to practice speaking English for this work scenario: "%s"

Generate a practice %s and learning materials:
1. "speech": the full text. %s
2. "vocabulary" (8-12 items): professional words/phrases from tech/work contexts, with Vietnamese meanings.
3. "idioms" (5-8 items): expressions native speakers use at work, with Vietnamese meanings and usage examples.
4. "grammar" (4-6 items): structures used in the speech, explained in Vietnamese with 2-3 examples each.
5. "sentencePatterns" (5-7 items): frames like "I'd like to...", "The way I see it...", explained in Vietnamese with 2-3 examples each.

Style: natural conversational English with contractions and discourse markers ("Well...", "Actually...", "You know..."), like real workplace talk.

Respond with ONLY this JSON, no explanation, no markdown:
{"speech": "the full text", "vocabulary": [{"english": "...", "vietnamese": "...", "explanation": "optional context"}], "idioms": [{"english": "...", "vietnamese": "...", "usage": "example sentence"}], "grammar": [{"structure": "...", "explanation": "...", "examples": ["...", "..."]}], "sentencePatterns": [{"pattern": "...", "explanation": "...", "examples": ["...", "..."]}]}`,
		topic, formatDescription, formatRules)
}

// AnalyzeSpeech builds the prompt that extracts learning materials from
// an existing speech or conversation.
func AnalyzeSpeech(speech string) string {
	return fmt.Sprintf(`You are an expert English communication coach. Analyze the following speech or conversation text and extract learning materials.

Speech/Conversation:
"%s"

Extract (items must actually appear in the text):
1. "vocabulary" (8-15 items): useful words and phrases with Vietnamese meanings.
2. "idioms" (5-10 items): idioms and natural expressions with Vietnamese meanings and usage examples.
3. "grammar" (4-8 items): structures used in the text, explained in Vietnamese with 2-3 examples each.
4. "sentencePatterns" (5-10 items): sentence frames used, explained in Vietnamese with 2-3 examples each.

Keep the original text as "speech" in the output.

Respond with ONLY this JSON, no explanation, no markdown:
{"speech": "the original text", "vocabulary": [{"english": "...", "vietnamese": "...", "explanation": "optional context"}], "idioms": [{"english": "...", "vietnamese": "...", "usage": "example sentence"}], "grammar": [{"structure": "...", "explanation": "...", "examples": ["...", "..."]}], "sentencePatterns": [{"pattern": "...", "explanation": "...", "examples": ["...", "..."]}]}`,
		speech)
}

// SessionName builds the prompt for naming a practice session. Plain
// text response, not JSON.
func SessionName(topic string) string {
	return fmt.Sprintf(`Generate a concise, professional conversation name for a speaking practice session about: "%s"

Requirements:
- 3-8 words maximum, title case, specific to the topic
- Include context if relevant (e.g., "Sprint Planning Discussion", "API Architecture Explanation Session")

Return ONLY the conversation name, no additional text or explanation.`, topic)
}

// GameCards builds the prompt that turns lesson content into flashcards.
func GameCards(content string) string {
	return fmt.Sprintf(`You are an IELTS expert. Based on the following lesson content, extract or generate 8 key vocabulary words or phrases and their Vietnamese meanings for a matching game.

Content:
%s

Requirements:
1. Select the most important and useful vocabulary for IELTS.
2. Provide a clear, concise Vietnamese meaning for each.

Respond with ONLY this JSON, no explanation, no markdown:
{"cards": [{"word": "vocabulary 1", "meaning": "meaning 1"}]}`, content)
}
