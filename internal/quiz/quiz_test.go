package quiz

import (
	"testing"

	"github.com/vovakirdan/tui-fenetres/internal/content"
)

func questions() []content.Question {
	return []content.Question{
		{Question: "A ?", Options: []content.Option{
			{Text: "oui", Correct: true, Explanation: "bien"},
			{Text: "non", Explanation: "raté"},
		}},
		{Question: "B ?", Options: []content.Option{
			{Text: "oui", Explanation: "raté"},
			{Text: "non", Correct: true, Explanation: "bien"},
		}},
	}
}

func TestSelectLocksAfterAnswer(t *testing.T) {
	q := New(questions())

	if !q.Select(1) {
		t.Fatal("first selection should be accepted")
	}
	if q.Select(0) {
		t.Error("second selection should be ignored")
	}
	if q.Explanation() != "raté" {
		t.Errorf("Explanation = %q", q.Explanation())
	}
	if q.SelectedCorrect() {
		t.Error("option 1 is wrong")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	q := New(questions())
	if q.Select(5) || q.Select(-1) {
		t.Error("out-of-range selection accepted")
	}
	if q.Answered() {
		t.Error("quiz should not be answered")
	}
}

func TestNextRequiresAnswer(t *testing.T) {
	q := New(questions())
	if q.Next() {
		t.Error("Next before answering should be ignored")
	}
	if q.NextLabel() != LabelNext {
		t.Errorf("label = %q", q.NextLabel())
	}
}

func TestFullRun(t *testing.T) {
	q := New(questions())

	q.Select(0)
	q.Next()
	if cur, total := q.Progress(); cur != 2 || total != 2 {
		t.Errorf("Progress = %d/%d, want 2/2", cur, total)
	}
	if q.NextLabel() != LabelFinish {
		t.Errorf("label on last question = %q", q.NextLabel())
	}
	if got := q.Dots(); got[0] != DotCompleted || got[1] != DotActive {
		t.Errorf("Dots = %v", got)
	}

	q.Select(1)
	if !q.Next() || !q.Done() {
		t.Fatal("last Next should finish the quiz")
	}
	if q.Select(0) || q.Next() {
		t.Error("finished quiz should ignore input")
	}

	res := q.Result()
	if res.Correct != 2 || res.Total != 2 || len(res.Answers) != 2 {
		t.Errorf("Result = %+v", res)
	}
	if got := q.Dots(); got[1] != DotCompleted {
		t.Errorf("final Dots = %v", got)
	}
}

func TestEmbeddedQuiz(t *testing.T) {
	q := New(content.MustDefault().Quiz.Questions)
	if q.Total() != 6 {
		t.Errorf("Total = %d, want 6", q.Total())
	}
	if q.Current().Question == "" {
		t.Error("first question empty")
	}
}
