package learn

import "fmt"

type template struct {
	description string
	build       func(text string) string
}

// templates is read-only after init; Compile is safe for concurrent use.
var templates = map[Task]template{
	TaskGrammarCorrection: {
		description: "Correct the grammar of a sentence.",
		build:       grammarCorrectionPrompt,
	},
	TaskFluentRephrase: {
		description: "Suggest 2-3 clearer, more professional rephrasings.",
		build:       fluentRephrasePrompt,
	},
	TaskConceptExplanation: {
		description: "Explain a concept with summary, key points, analogy and significance.",
		build:       conceptExplanationPrompt,
	},
	TaskTranslateToBengali: {
		description: "Translate English text to Bengali script plus a romanized version.",
		build:       translateToBengaliPrompt,
	},
	TaskVocabularyDefinition: {
		description: "Define a word with part of speech and an example sentence.",
		build:       vocabularyDefinitionPrompt,
	},
	TaskSentenceImprovement: {
		description: "Make a sentence sound natural and explain the change in one line.",
		build:       sentenceImprovementPrompt,
	},
}

// Compile builds the model instruction for task with text embedded verbatim.
// The text is not escaped.
func Compile(task Task, text string) (string, error) {
	t, ok := ParseTask(string(task))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTask, task)
	}
	return templates[t].build(text), nil
}

func grammarCorrectionPrompt(text string) string {
	return fmt.Sprintf(`You are an expert English grammar teacher. Correct the grammar of the sentence below.
Reply with the corrected sentence only, without explanations.
If the sentence has no mistakes, reply exactly: "The sentence is grammatically correct."

Sentence: "%s"`, text)
}

func fluentRephrasePrompt(text string) string {
	return fmt.Sprintf(`You are an expert writer and editor. Rephrase the text below so it reads more fluently, clearly and professionally.

Goals:
- Keep the original meaning.
- Improve sentence structure and word choice.
- Give 2-3 distinct improved versions.

Original text: "%s"`, text)
}

func conceptExplanationPrompt(text string) string {
	return fmt.Sprintf(`You are a communicator who makes complex topics simple. Explain the text or concept below clearly.

Use these sections:
- **Simple Summary:** a short, high-level summary of what it is.
- **Key Points:** the main ideas as a few bullet points.
- **Analogy or Example:** a simple analogy or real-world example.
- **Why it Matters:** its significance or common use.

Assume the reader is smart but new to the topic.

Topic to explain: "%s"`, text)
}

func translateToBengaliPrompt(text string) string {
	return fmt.Sprintf(`You are an expert English to Bengali translator.

1. Translate the text below into natural, fluent Bengali, keeping its meaning and tone.
2. Write the translation in **Bengali script**.
3. Then give a **romanized version** for pronunciation.

Put the Bengali script first and the romanized version after it.

Original text: "%s"`, text)
}

func vocabularyDefinitionPrompt(text string) string {
	return fmt.Sprintf(`You are a helpful dictionary for English learners. Explain the English word "%s" for a beginner.
Give its definition, its part of speech and one clear example sentence. Format the answer in markdown.`, text)
}

func sentenceImprovementPrompt(text string) string {
	return fmt.Sprintf(`You are an English writing coach. Improve the sentence below so it sounds fluent and natural to a native speaker.
Give the improved sentence, then a brief one-line explanation of what you changed.

Sentence: "%s"`, text)
}
