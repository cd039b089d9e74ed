package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned responses for prompt-driven tests.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GetModel(ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func TestExtractResume_MapsGeminiFieldNames(t *testing.T) {
	client := &fakeClient{response: `{
		"Name": "Jane Doe",
		"Emails": ["jane@example.com"],
		"Phones": ["+1 555 123 4567"],
		"Skills": ["Python", "SQL"],
		"Work Experience": [
			{"title": "Data Engineer", "company": "Acme", "dates": "2019 - 2023", "details": "Built pipelines"}
		],
		"Education": [
			{"degree": "BSc Computer Science", "institution": "State University"}
		],
		"Important URLs": ["https://github.com/janedoe"]
	}`}

	fields, links, err := ExtractResume(context.Background(), client, "resume text", []string{"https://github.com/janedoe"})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", fields.Name)
	assert.Equal(t, []string{"jane@example.com"}, fields.Emails)
	assert.Equal(t, []string{"Python", "SQL"}, fields.Skills)
	require.Len(t, fields.Experience, 1)
	assert.Equal(t, "Data Engineer", fields.Experience[0].Title)
	assert.Equal(t, "Acme", fields.Experience[0].Company)
	require.Len(t, fields.Education, 1)
	assert.Equal(t, "BSc Computer Science", fields.Education[0].Degree)
	assert.Equal(t, []string{"https://github.com/janedoe"}, links)

	// Both the resume text and the recovered URLs are in the prompt.
	assert.Contains(t, client.prompt, "resume text")
	assert.Contains(t, client.prompt, "https://github.com/janedoe")
}

func TestExtractResume_ScalarEmailAndStringEntries(t *testing.T) {
	client := &fakeClient{response: `{
		"Email": "jane@example.com",
		"Skills": ["go"],
		"Experience": ["Backend developer at Acme"],
		"Education": ["BSc Computer Science"]
	}`}

	fields, _, err := ExtractResume(context.Background(), client, "resume text", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"jane@example.com"}, fields.Emails)
	require.Len(t, fields.Experience, 1)
	assert.Equal(t, "Backend developer at Acme", fields.Experience[0].Title)
	require.Len(t, fields.Education, 1)
	assert.Equal(t, "BSc Computer Science", fields.Education[0].Degree)
}

func TestExtractResume_EmptyFieldsDropped(t *testing.T) {
	client := &fakeClient{response: `{"Name": "  ", "Skills": [], "Emails": ["jane@example.com"]}`}

	fields, _, err := ExtractResume(context.Background(), client, "resume text", nil)
	require.NoError(t, err)

	assert.Empty(t, fields.Name)
	assert.Empty(t, fields.Skills)
	assert.Equal(t, []string{"jane@example.com"}, fields.Emails)
}

func TestExtractResume_MarkdownWrappedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"Name\": \"Jane Doe\"}\n```"}

	fields, _, err := ExtractResume(context.Background(), client, "resume text", nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", fields.Name)
}

func TestExtractResume_SchemaViolation(t *testing.T) {
	client := &fakeClient{response: `{"Skills": [1, 2, 3]}`}

	_, _, err := ExtractResume(context.Background(), client, "resume text", nil)

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestExtractResume_ClientError(t *testing.T) {
	client := &fakeClient{err: &APICallError{Message: "quota exceeded"}}

	_, _, err := ExtractResume(context.Background(), client, "resume text", nil)

	var ae *APICallError
	assert.True(t, errors.As(err, &ae))
}

func TestExtractResume_NonJSONResponse(t *testing.T) {
	client := &fakeClient{response: "I could not parse this resume."}

	_, _, err := ExtractResume(context.Background(), client, "resume text", nil)
	assert.Error(t, err)
}
