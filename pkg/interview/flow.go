package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrFlowFinished is returned by Advance and Skip once every question has
// been answered. Callers should check IsFinished before feeding more input.
var ErrFlowFinished = errors.New("interview flow is already finished")

// ProfileStore persists one completed profile. Append is all-or-nothing for
// a single profile; the flow never retries a failed append.
type ProfileStore interface {
	Append(ctx context.Context, userID string, answers map[string]Answer) error
}

// State is the resumable snapshot of a flow. It round-trips through JSON so
// a session can survive a process restart.
type State struct {
	UserID     string            `json:"user_id,omitempty"`
	Answers    map[string]Answer `json:"answers"`
	Cursor     int               `json:"cursor"`
	LastAnswer string            `json:"last_answer,omitempty"`
	Finished   bool              `json:"finished"`
}

// Flow walks one user through a question bank, in order, exactly once per
// completed profile. A Flow is owned by a single conversation session and
// performs no internal locking; the session layer above guarantees at most
// one live flow per conversation.
type Flow struct {
	bank  QuestionBank
	store ProfileStore
	state State
}

// NewFlow creates a flow over the given bank. store may be nil for
// anonymous flows that are never persisted.
func NewFlow(bank QuestionBank, store ProfileStore) *Flow {
	return &Flow{
		bank:  bank,
		store: store,
		state: State{Answers: make(map[string]Answer)},
	}
}

// StartNew restarts the interview from the first question. Restarting is
// destructive to in-progress answers; use Resume to continue a saved state.
func (f *Flow) StartNew(userID string) string {
	f.state = State{
		UserID:  userID,
		Answers: make(map[string]Answer),
	}

	intro := "👋 Hello! I'm your Learning Path Assistant. I'll help build a personalized learning journey for you.\n" +
		"Let's start by getting to know a bit about you and your goals.\n"
	return intro + "\n" + f.formatCurrent()
}

// Resume replaces the flow state with a previously captured snapshot.
func (f *Flow) Resume(state State) {
	if state.Answers == nil {
		state.Answers = make(map[string]Answer)
	}
	f.state = state
}

// Snapshot returns a deep copy of the current state.
func (f *Flow) Snapshot() State {
	answers := make(map[string]Answer, len(f.state.Answers))
	for k, v := range f.state.Answers {
		answers[k] = v
	}
	s := f.state
	s.Answers = answers
	return s
}

// IsFinished reports whether every question has been answered.
func (f *Flow) IsFinished() bool {
	return f.state.Finished
}

// UserID returns the identifier the flow was started with.
func (f *Flow) UserID() string {
	return f.state.UserID
}

// Answers returns a copy of the collected answers.
func (f *Flow) Answers() map[string]Answer {
	answers := make(map[string]Answer, len(f.state.Answers))
	for k, v := range f.state.Answers {
		answers[k] = v
	}
	return answers
}

// CurrentQuestion returns the question at the cursor without mutating any
// state, or a completion notice when the flow is finished.
func (f *Flow) CurrentQuestion() string {
	if f.state.Finished {
		return "All questions have been answered. Say 'summary' to review your profile."
	}
	return f.formatCurrent()
}

// Advance stores the raw input as the answer to the current question and
// moves to the next one. Multi-select input is split on commas with each
// item trimmed; every other type stores the trimmed string verbatim, with
// no validation against the declared options.
func (f *Flow) Advance(ctx context.Context, raw string) (string, error) {
	if f.state.Finished {
		return "", ErrFlowFinished
	}

	q := f.bank[f.state.Cursor]
	if q.InputType == InputMultiSelect {
		parts := strings.Split(raw, ",")
		items := make([]string, len(parts))
		for i, p := range parts {
			items[i] = strings.TrimSpace(p)
		}
		f.state.Answers[q.Key] = ListAnswer(items)
		// The acknowledgment echoes the raw input for multi-select answers.
		f.state.LastAnswer = raw
	} else {
		trimmed := strings.TrimSpace(raw)
		f.state.Answers[q.Key] = TextAnswer(trimmed)
		f.state.LastAnswer = trimmed
	}

	f.state.Cursor++

	if f.state.Cursor >= len(f.bank) {
		if err := f.complete(ctx); err != nil {
			return "", err
		}
		return "🎉 Great! I have all the information I need. Your learning profile has been saved.", nil
	}

	return f.ackAndNext(), nil
}

// Skip records the literal string "Skipped" for the current question. The
// multi-select parsing path is intentionally bypassed, so a skipped
// multi-select answer keeps the plain string shape.
func (f *Flow) Skip(ctx context.Context) (string, error) {
	if f.state.Finished {
		return "", ErrFlowFinished
	}

	q := f.bank[f.state.Cursor]
	f.state.Answers[q.Key] = TextAnswer("Skipped")
	f.state.LastAnswer = "Skipped"
	f.state.Cursor++

	if f.state.Cursor >= len(f.bank) {
		if err := f.complete(ctx); err != nil {
			return "", err
		}
		return "🎉 All questions completed! Your learning profile has been saved.", nil
	}

	return "Question skipped. Let's move on:\n\n" + f.formatCurrent(), nil
}

// GoBack moves the cursor to the previous question. The answer already
// stored there is kept; a subsequent Advance overwrites it.
func (f *Flow) GoBack() string {
	if f.state.Cursor == 0 {
		return "You're already at the first question."
	}
	f.state.Cursor--
	f.state.Finished = false
	return "Let's go back to:\n\n" + f.formatCurrent()
}

// Summary renders every answered question so far.
func (f *Flow) Summary() string {
	if len(f.state.Answers) == 0 {
		return "No profile information has been collected yet."
	}

	var b strings.Builder
	b.WriteString("📋 Your Profile Summary:\n\n")
	for i, q := range f.bank {
		if i >= f.state.Cursor {
			break
		}
		if ans, ok := f.state.Answers[q.Key]; ok {
			b.WriteString(fmt.Sprintf("• %s\n   %s\n\n", q.Prompt, ans.Display()))
		}
	}
	return b.String()
}

// Reset clears all state and returns the first question, without the
// greeting StartNew prepends.
func (f *Flow) Reset() string {
	f.state = State{
		UserID:  f.state.UserID,
		Answers: make(map[string]Answer),
	}
	return "Profile has been reset. Let's start again:\n\n" + f.formatCurrent()
}

func (f *Flow) complete(ctx context.Context) error {
	f.state.Finished = true
	if f.store == nil {
		return nil
	}
	if err := f.store.Append(ctx, f.state.UserID, f.Answers()); err != nil {
		return fmt.Errorf("persist completed profile: %w", err)
	}
	return nil
}

func (f *Flow) formatCurrent() string {
	return f.bank[f.state.Cursor].Format()
}

func (f *Flow) ackAndNext() string {
	confirmation := fmt.Sprintf("✅ Response saved: '%s'.\n", f.state.LastAnswer)
	progress := fmt.Sprintf("Question %d/%d", f.state.Cursor, len(f.bank))
	return fmt.Sprintf("%s\n%s\n\n%s", confirmation, progress, f.formatCurrent())
}
