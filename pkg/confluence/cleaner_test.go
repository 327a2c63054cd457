package confluence

import (
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "Just plain text",
			want: "Just plain text",
		},
		{
			name: "tags stripped",
			in:   "<p>Hello <strong>world</strong></p>",
			want: "Hello world",
		},
		{
			name: "entities unescaped",
			in:   "Tom &amp; Jerry &lt;3",
			want: "Tom & Jerry <3",
		},
		{
			name: "whitespace collapsed",
			in:   "<p>line one</p>\n\n   <p>line   two</p>",
			want: "line one line two",
		},
		{
			// Emoji removal happens after the whitespace collapse, so the
			// separator in front of a trailing emoji survives.
			name: "emoji stripped",
			in:   "Deploy guide 🚀🎉",
			want: "Deploy guide ",
		},
		{
			// Tags are removed with no replacement, so adjacent block
			// elements concatenate without a separator.
			name: "storage format page",
			in:   `<h1>Setup</h1><ac:structured-macro ac:name="info"><ac:rich-text-body><p>Read me first ✅</p></ac:rich-text-body></ac:structured-macro>`,
			want: "SetupRead me first ",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
