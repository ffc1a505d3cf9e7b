package client

import "testing"

func TestToSlackMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold-only",
			input: "This is **bold** text.",
			want:  "This is *bold* text.",
		},
		{
			name:  "inline-code-protected",
			input: "Use `2 ** 3` and **bold**.",
			want:  "Use `2 ** 3` and *bold*.",
		},
		{
			name:  "code-block-protected",
			input: "```python\n2 ** 3\n```\n**bold**",
			want:  "```python\n2 ** 3\n```\n*bold*",
		},
		{
			name:  "mixed-inline-and-bold",
			input: "**Bold** and `code **`",
			want:  "*Bold* and `code **`",
		},
		{
			name:  "heading-converted",
			input: "### Service health\n- HTTP 500 spike",
			want:  "*Service health*\n- HTTP 500 spike",
		},
		{
			name:  "heading-protected-in-code-block",
			input: "```\n### Service health\n```\n**bold**",
			want:  "```\n### Service health\n```\n*bold*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toSlackMarkdown(tt.input); got != tt.want {
				t.Fatalf("toSlackMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorBySeverity(t *testing.T) {
	if colorBySeverity("P1") != "#dc3545" {
		t.Fatalf("P1 should map to red")
	}
	if colorBySeverity("P2") != "#ffc107" {
		t.Fatalf("P2 should map to yellow")
	}
	if colorBySeverity("P3") != "#36a64f" {
		t.Fatalf("P3 should map to green")
	}
}
