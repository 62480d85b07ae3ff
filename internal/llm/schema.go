package llm

// BuildCompletionJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// chat/completions envelope. Only the path we read is constrained.
func BuildCompletionJSONSchema() map[string]any {
	message := map[string]any{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]any{
			"role":    map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
		},
	}
	choice := map[string]any{
		"type":     "object",
		"required": []string{"message"},
		"properties": map[string]any{
			"message": message,
		},
	}
	return map[string]any{
		"type":     "object",
		"required": []string{"choices"},
		"properties": map[string]any{
			"choices": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    choice,
			},
		},
	}
}
