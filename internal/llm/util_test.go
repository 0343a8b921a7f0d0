package llm

import "testing"

func TestCleanFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "generic fence",
			input:    "```\nJane Doe\nSoftware Engineer\n```",
			expected: "Jane Doe\nSoftware Engineer",
		},
		{
			name:     "fence with language identifier",
			input:    "```markdown\n# Resume\n```",
			expected: "# Resume",
		},
		{
			name:     "plain text untouched",
			input:    "Jane Doe\nSoftware Engineer",
			expected: "Jane Doe\nSoftware Engineer",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n```\ntext\n```\n  ",
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFences(tt.input); got != tt.expected {
				t.Errorf("CleanFences() = %q, want %q", got, tt.expected)
			}
		})
	}
}
