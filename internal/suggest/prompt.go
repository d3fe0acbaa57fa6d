package suggest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const promptTemplate = `You are a helpful assistant that generates concise and relevant names for URLs based on their content. Given a URL, provide a short, descriptive name that captures the essence of the webpage.
For example, for the URL "https://www.example.com/articles/how-to-learn-python", a suitable name could be "learn-python", "learn-python-tutorial", or "python-basics". Include the reference from the webpage to ensure relevance.
Provide %d suggestive names for the following URL: %s
Ensure that the names are unique, easy to remember, and do not contain special characters or spaces.
Keep the text length of each name under 15 characters.
The names must be URL-friendly (only alphanumeric characters and hyphens).

The contents of the page linked by the URL is provided below for your reference.
%s
`

var (
	ErrEmptyResponse   = errors.New("empty model response")
	ErrMalformedOutput = errors.New("malformed model output")
)

type namesPayload struct {
	SuggestedNames []string `json:"suggested_names"`
}

// Prompt renders the instruction sent to the model.
func Prompt(longURL, pageText string, n int) string {
	return fmt.Sprintf(promptTemplate, n, longURL, pageText)
}

// ParseNames decodes the structured model output. A payload with no names is
// not an error here; callers decide what an empty batch means.
func ParseNames(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var p namesPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	return p.SuggestedNames, nil
}
