package interview

import (
	"encoding/json"
	"strings"
)

// Answer holds one stored response. It is either a single string or an
// ordered list of strings (multi-select questions). The two shapes are kept
// distinct: skipping a multi-select question stores the plain string
// "Skipped", not a one-element list, and downstream consumers rely on the
// shape to tell the cases apart.
type Answer struct {
	Value  string
	Values []string
	Multi  bool
}

// TextAnswer wraps a single-string response.
func TextAnswer(v string) Answer {
	return Answer{Value: v}
}

// ListAnswer wraps an ordered multi-select response.
func ListAnswer(vs []string) Answer {
	return Answer{Values: vs, Multi: true}
}

// Display renders the answer for summaries. Lists are joined with ", ".
func (a Answer) Display() string {
	if a.Multi {
		return strings.Join(a.Values, ", ")
	}
	return a.Value
}

// MarshalJSON emits a bare string or a string array so persisted profiles
// look like {"name": "Alice", "style": ["Video", "Books"]}.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Multi {
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts both shapes.
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var vs []string
		if err := json.Unmarshal(data, &vs); err != nil {
			return err
		}
		*a = ListAnswer(vs)
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = TextAnswer(v)
	return nil
}
