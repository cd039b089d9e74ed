package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the JSON:\n{\"company\": \"Acme\"}",
			expected: `{"company": "Acme"}`,
		},
		{
			name:     "JSON with trailing text",
			input:    "{\"key\": \"value\"}\n\nLet me know if you need anything else!",
			expected: `{"key": "value"}`,
		},
		{
			name:     "preamble before JSON array",
			input:    "Here are the items:\n[\"item1\", \"item2\"]",
			expected: `["item1", "item2"]`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"outer\": {\"inner\": \"value\"}}",
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "JSON with escaped quotes",
			input:    "Result: {\"message\": \"He said \\\"hello\\\"\"}",
			expected: `{"message": "He said \"hello\""}`,
		},
		{
			name:     "braces inside string literal",
			input:    `{"template": "Hello {name}!"} trailing`,
			expected: `{"template": "Hello {name}!"}`,
		},
		{
			name:     "no JSON at all",
			input:    "sorry, I cannot help with that",
			expected: "sorry, I cannot help with that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple object",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "nested objects",
			input:    `{"outer": {"inner": "value"}}`,
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "object with trailing text",
			input:    `{"key": "value"} and some more text`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "unterminated object",
			input:    `{"key": "value"`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with brace",
			input:    "not json",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractJSONObject(tt.input)
			if result != tt.expected {
				t.Errorf("ExtractJSONObject() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple array",
			input:    `["a", "b", "c"]`,
			expected: `["a", "b", "c"]`,
		},
		{
			name:     "array of objects",
			input:    `[{"id": 1}, {"id": 2}]`,
			expected: `[{"id": 1}, {"id": 2}]`,
		},
		{
			name:     "array with trailing text",
			input:    `[1, 2, 3] extra stuff`,
			expected: `[1, 2, 3]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractJSONArray(tt.input)
			if result != tt.expected {
				t.Errorf("ExtractJSONArray() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDecodeLenient_StrictJSON(t *testing.T) {
	var out map[string]any
	if err := DecodeLenient(`{"compatibility": 72.5, "reason": "good fit"}`, &out); err != nil {
		t.Fatalf("DecodeLenient() error = %v", err)
	}
	if out["compatibility"] != 72.5 {
		t.Errorf("compatibility = %v, want 72.5", out["compatibility"])
	}
}

func TestDecodeLenient_PythonLiteral(t *testing.T) {
	var out map[string]any
	input := `{'compatibility': 80, 'remote': True, 'notes': None, 'reason': 'it\'s a match'}`
	if err := DecodeLenient(input, &out); err != nil {
		t.Fatalf("DecodeLenient() error = %v", err)
	}
	if out["compatibility"] != 80.0 {
		t.Errorf("compatibility = %v, want 80", out["compatibility"])
	}
	if out["remote"] != true {
		t.Errorf("remote = %v, want true", out["remote"])
	}
	if out["notes"] != nil {
		t.Errorf("notes = %v, want nil", out["notes"])
	}
	if out["reason"] != "it's a match" {
		t.Errorf("reason = %v, want it's a match", out["reason"])
	}
}

func TestDecodeLenient_DoubleQuotesInsideSingle(t *testing.T) {
	var out map[string]any
	if err := DecodeLenient(`{'reason': 'said "hello" twice'}`, &out); err != nil {
		t.Fatalf("DecodeLenient() error = %v", err)
	}
	if out["reason"] != `said "hello" twice` {
		t.Errorf("reason = %v", out["reason"])
	}
}

func TestDecodeLenient_Garbage(t *testing.T) {
	var out map[string]any
	if err := DecodeLenient("not a payload", &out); err == nil {
		t.Fatal("DecodeLenient() expected error")
	}
}
