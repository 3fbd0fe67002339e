// Package quiz steps through the introductory questions.
package quiz

import "github.com/vovakirdan/tui-fenetres/internal/content"

// Labels of the button under an explanation.
const (
	LabelNext   = "Question suivante →"
	LabelFinish = "Découvrir la VM Windows →"
)

// Dot is the state of a progress dot.
type Dot int

const (
	DotPending Dot = iota
	DotActive
	DotCompleted
)

// Result summarizes a finished quiz.
type Result struct {
	Correct int
	Total   int
	// Answers holds the chosen option per question.
	Answers []int
}

// Quiz is the state of one run through the questions.
type Quiz struct {
	questions []content.Question
	index     int
	selected  int
	answers   []int
	correct   int
	done      bool
}

// New starts a quiz at the first question.
func New(questions []content.Question) *Quiz {
	return &Quiz{
		questions: questions,
		selected:  -1,
		answers:   make([]int, 0, len(questions)),
	}
}

// Total returns the number of questions.
func (q *Quiz) Total() int {
	return len(q.questions)
}

// Index returns the zero-based current question index.
func (q *Quiz) Index() int {
	return q.index
}

// Progress returns the one-based position and the total.
func (q *Quiz) Progress() (int, int) {
	return min(q.index+1, len(q.questions)), len(q.questions)
}

// Current returns the question on screen.
func (q *Quiz) Current() content.Question {
	if q.index >= len(q.questions) {
		return content.Question{}
	}
	return q.questions[q.index]
}

// Select answers the current question. It is ignored once an answer shows
// its explanation, after the end, or for an out-of-range option.
func (q *Quiz) Select(option int) bool {
	if q.done || q.selected >= 0 || q.index >= len(q.questions) {
		return false
	}
	opts := q.questions[q.index].Options
	if option < 0 || option >= len(opts) {
		return false
	}
	q.selected = option
	q.answers = append(q.answers, option)
	if opts[option].Correct {
		q.correct++
	}
	return true
}

// Answered reports whether the explanation is showing.
func (q *Quiz) Answered() bool {
	return q.selected >= 0
}

// Selected returns the chosen option of the current question, or -1.
func (q *Quiz) Selected() int {
	return q.selected
}

// Explanation returns the explanation of the chosen option.
func (q *Quiz) Explanation() string {
	if q.selected < 0 {
		return ""
	}
	return q.Current().Options[q.selected].Explanation
}

// SelectedCorrect reports whether the chosen option is the right one.
func (q *Quiz) SelectedCorrect() bool {
	if q.selected < 0 {
		return false
	}
	return q.Current().Options[q.selected].Correct
}

// IsLast reports whether the current question is the final one.
func (q *Quiz) IsLast() bool {
	return q.index >= len(q.questions)-1
}

// NextLabel returns the label of the button under the explanation.
func (q *Quiz) NextLabel() string {
	if q.IsLast() {
		return LabelFinish
	}
	return LabelNext
}

// Next moves to the following question once the current one is answered.
// On the last question it finishes the quiz.
func (q *Quiz) Next() bool {
	if q.done || q.selected < 0 {
		return false
	}
	if q.IsLast() {
		q.done = true
		return true
	}
	q.index++
	q.selected = -1
	return true
}

// Done reports whether the quiz is finished.
func (q *Quiz) Done() bool {
	return q.done
}

// Dots returns the progress dot states.
func (q *Quiz) Dots() []Dot {
	dots := make([]Dot, len(q.questions))
	for i := range dots {
		switch {
		case i < q.index || (q.done && i == q.index):
			dots[i] = DotCompleted
		case i == q.index:
			dots[i] = DotActive
		}
	}
	return dots
}

// Result returns the summary so far.
func (q *Quiz) Result() Result {
	answers := make([]int, len(q.answers))
	copy(answers, q.answers)
	return Result{Correct: q.correct, Total: len(q.questions), Answers: answers}
}
