package gemini

import "context"

// stubGenerator substitutes the live model in tests.
type stubGenerator struct {
	response string
	err      error

	gotPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string { return "stub-model" }
