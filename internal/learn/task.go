package learn

import "sort"

type Task string

const (
	TaskGrammarCorrection    Task = "grammar-correction"
	TaskFluentRephrase       Task = "fluent-rephrase"
	TaskConceptExplanation   Task = "concept-explanation"
	TaskTranslateToBengali   Task = "translate-to-bengali"
	TaskVocabularyDefinition Task = "vocabulary-definition"
	TaskSentenceImprovement  Task = "sentence-improvement"
)

// Identifiers sent by the first frontend release, plus the generic
// "translation" for the single translation task.
var taskAliases = map[string]Task{
	"correct-grammar":    TaskGrammarCorrection,
	"rephrase-fluently":  TaskFluentRephrase,
	"explain-this":       TaskConceptExplanation,
	"translation":        TaskTranslateToBengali,
	"explain-vocabulary": TaskVocabularyDefinition,
	"improve-sentence":   TaskSentenceImprovement,
}

type TaskInfo struct {
	Task        Task     `json:"task"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
}

// ParseTask resolves a canonical identifier or one of its aliases.
func ParseTask(s string) (Task, bool) {
	if _, ok := templates[Task(s)]; ok {
		return Task(s), true
	}
	if t, ok := taskAliases[s]; ok {
		return t, true
	}
	return "", false
}

func (t Task) IsValid() bool {
	_, ok := ParseTask(string(t))
	return ok
}

// Tasks lists every supported task sorted by identifier.
func Tasks() []TaskInfo {
	aliases := make(map[Task][]string)
	for alias, t := range taskAliases {
		aliases[t] = append(aliases[t], alias)
	}

	infos := make([]TaskInfo, 0, len(templates))
	for t, tmpl := range templates {
		a := aliases[t]
		sort.Strings(a)
		infos = append(infos, TaskInfo{
			Task:        t,
			Aliases:     a,
			Description: tmpl.description,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Task < infos[j].Task })
	return infos
}
