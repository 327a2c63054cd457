package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBank() QuestionBank {
	return QuestionBank{
		{
			Key:         "name",
			Prompt:      "What's your name?",
			InputType:   InputText,
			Placeholder: "Enter your full name",
		},
		{
			Key:       "style",
			Prompt:    "How do you prefer to learn?",
			InputType: InputMultiSelect,
			Options:   []string{"Video", "Books", "Mentoring"},
		},
		{
			Key:       "level",
			Prompt:    "What's your experience level?",
			InputType: InputSelect,
			Options:   []string{"Beginner", "Intermediate", "Advanced"},
		},
	}
}

type fakeStore struct {
	calls   int
	userID  string
	answers map[string]Answer
	err     error
}

func (s *fakeStore) Append(ctx context.Context, userID string, answers map[string]Answer) error {
	s.calls++
	s.userID = userID
	s.answers = answers
	return s.err
}

func TestFlowCompletesAndPersists(t *testing.T) {
	store := &fakeStore{}
	flow := NewFlow(testBank(), store)

	greeting := flow.StartNew("user-1")
	assert.Contains(t, greeting, "Learning Path Assistant")
	assert.Contains(t, greeting, "What's your name?")

	reply, err := flow.Advance(context.Background(), "Alice")
	assert.NoError(t, err)
	assert.Contains(t, reply, "Question 1/3")
	assert.Contains(t, reply, "How do you prefer to learn?")

	reply, err = flow.Advance(context.Background(), "Video, Books")
	assert.NoError(t, err)
	assert.Contains(t, reply, "Question 2/3")

	reply, err = flow.Advance(context.Background(), "Beginner")
	assert.NoError(t, err)
	assert.Contains(t, reply, "learning profile has been saved")
	assert.True(t, flow.IsFinished())

	// Exactly one persisted profile covering every question
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "user-1", store.userID)
	assert.Len(t, store.answers, 3)
	assert.Equal(t, TextAnswer("Alice"), store.answers["name"])
	assert.Equal(t, ListAnswer([]string{"Video", "Books"}), store.answers["style"])

	// Further input is rejected with the typed error
	_, err = flow.Advance(context.Background(), "more")
	assert.ErrorIs(t, err, ErrFlowFinished)
	_, err = flow.Skip(context.Background())
	assert.ErrorIs(t, err, ErrFlowFinished)
}

func TestAdvanceTrimsSingleAnswers(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("u")

	reply, err := flow.Advance(context.Background(), "   Alice   ")
	assert.NoError(t, err)
	assert.Contains(t, reply, "✅ Response saved: 'Alice'.")
	assert.Equal(t, TextAnswer("Alice"), flow.Answers()["name"])
}

func TestAdvanceSplitsMultiSelect(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("u")
	_, err := flow.Advance(context.Background(), "Alice")
	assert.NoError(t, err)

	raw := " Video ,Books ,  Mentoring"
	reply, err := flow.Advance(context.Background(), raw)
	assert.NoError(t, err)

	// Items are split on commas and trimmed individually
	assert.Equal(t, ListAnswer([]string{"Video", "Books", "Mentoring"}), flow.Answers()["style"])

	// The acknowledgment echoes the raw multi-select input
	assert.Contains(t, reply, "✅ Response saved: ' Video ,Books ,  Mentoring'.")
}

func TestSkipStoresPlainString(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("u")
	_, err := flow.Advance(context.Background(), "Alice")
	assert.NoError(t, err)

	// Skipping the multi-select question must keep the string shape
	reply, err := flow.Skip(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, reply, "Question skipped")

	ans := flow.Answers()["style"]
	assert.False(t, ans.Multi)
	assert.Equal(t, "Skipped", ans.Value)

	data, err := json.Marshal(ans)
	assert.NoError(t, err)
	assert.Equal(t, `"Skipped"`, string(data))
}

func TestSkipCompletesFlow(t *testing.T) {
	store := &fakeStore{}
	flow := NewFlow(testBank(), store)
	flow.StartNew("u")

	for i := 0; i < 2; i++ {
		_, err := flow.Skip(context.Background())
		assert.NoError(t, err)
	}
	reply, err := flow.Skip(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, reply, "All questions completed")
	assert.True(t, flow.IsFinished())
	assert.Equal(t, 1, store.calls)
}

func TestGoBackKeepsAnswerAndClearsFinished(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("u")
	_, _ = flow.Advance(context.Background(), "Alice")
	_, _ = flow.Advance(context.Background(), "Video")
	_, _ = flow.Advance(context.Background(), "Beginner")
	assert.True(t, flow.IsFinished())

	reply := flow.GoBack()
	assert.Contains(t, reply, "What's your experience level?")
	assert.False(t, flow.IsFinished())

	// The previous answer survives until it is overwritten
	assert.Equal(t, TextAnswer("Beginner"), flow.Answers()["level"])

	_, err := flow.Advance(context.Background(), "Advanced")
	assert.NoError(t, err)
	assert.Equal(t, TextAnswer("Advanced"), flow.Answers()["level"])
}

func TestGoBackAtFirstQuestion(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("u")
	assert.Equal(t, "You're already at the first question.", flow.GoBack())
}

func TestSummary(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("u")

	assert.Equal(t, "No profile information has been collected yet.", flow.Summary())

	_, _ = flow.Advance(context.Background(), "Alice")
	_, _ = flow.Advance(context.Background(), "Video, Books")

	summary := flow.Summary()
	assert.Contains(t, summary, "📋 Your Profile Summary:")
	assert.Contains(t, summary, "• What's your name?\n   Alice")
	assert.Contains(t, summary, "• How do you prefer to learn?\n   Video, Books")
	// The unanswered question is not listed
	assert.NotContains(t, summary, "experience level")
}

func TestReset(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("user-9")
	_, _ = flow.Advance(context.Background(), "Alice")

	reply := flow.Reset()
	assert.Contains(t, reply, "Profile has been reset")
	assert.Contains(t, reply, "What's your name?")
	assert.Empty(t, flow.Answers())
	assert.Equal(t, "user-9", flow.UserID())
}

func TestAnswerIsolation(t *testing.T) {
	a := NewFlow(testBank(), nil)
	b := NewFlow(testBank(), nil)
	a.StartNew("user-a")
	b.StartNew("user-b")

	_, _ = a.Advance(context.Background(), "Alice")
	_, _ = b.Advance(context.Background(), "Bob")

	assert.Equal(t, TextAnswer("Alice"), a.Answers()["name"])
	assert.Equal(t, TextAnswer("Bob"), b.Answers()["name"])
}

func TestStateRoundTrip(t *testing.T) {
	flow := NewFlow(testBank(), nil)
	flow.StartNew("user-1")
	_, _ = flow.Advance(context.Background(), "Alice")
	_, _ = flow.Advance(context.Background(), "Video, Books")

	data, err := json.Marshal(flow.Snapshot())
	assert.NoError(t, err)

	// Answers serialize as bare strings or arrays
	assert.Contains(t, string(data), `"name":"Alice"`)
	assert.Contains(t, string(data), `"style":["Video","Books"]`)

	var restored State
	assert.NoError(t, json.Unmarshal(data, &restored))

	resumed := NewFlow(testBank(), nil)
	resumed.Resume(restored)

	assert.Equal(t, flow.Answers(), resumed.Answers())
	assert.Contains(t, resumed.CurrentQuestion(), "What's your experience level?")

	_, err = resumed.Advance(context.Background(), "Beginner")
	assert.NoError(t, err)
	assert.True(t, resumed.IsFinished())
}

func TestPersistenceErrorPropagates(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	flow := NewFlow(testBank(), store)
	flow.StartNew("u")
	_, _ = flow.Advance(context.Background(), "Alice")
	_, _ = flow.Advance(context.Background(), "Video")

	_, err := flow.Advance(context.Background(), "Beginner")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "persist completed profile")
}

func TestDefaultQuestionBankOrder(t *testing.T) {
	bank := DefaultQuestionBank()
	assert.Len(t, bank, 14)

	wantKeys := []string{
		"name", "age", "current_domain", "current_role", "tech_experience",
		"target_role", "target_skills", "motivation", "learning_obstacles",
		"time_limit", "daily_availability", "preferred_learning_style",
		"background_strengths", "learning_resources",
	}
	for i, q := range bank {
		assert.Equal(t, wantKeys[i], q.Key)
	}
}

func TestDefaultQuestionBankReturnsFreshCopy(t *testing.T) {
	first := DefaultQuestionBank()
	first[0].Prompt = "mutated"
	first[0].Options = append(first[0].Options, "mutated option")

	second := DefaultQuestionBank()
	assert.Equal(t, "What's your name?", second[0].Prompt)
	assert.Empty(t, second[0].Options)
}

func TestQuestionFormat(t *testing.T) {
	bank := testBank()

	text := bank[0].Format()
	assert.True(t, strings.HasPrefix(text, "What's your name?"))
	assert.Contains(t, text, "(Hint: Enter your full name)")

	multi := bank[1].Format()
	assert.Contains(t, multi, "Select one or more (separate with commas):")
	assert.Contains(t, multi, "\n1. Video")
	assert.Contains(t, multi, "\n3. Mentoring")

	sel := bank[2].Format()
	assert.Contains(t, sel, "Options:")
	assert.Contains(t, sel, "\n2. Intermediate")
}
