package response

// Error builds the failure envelope shared by all services.
func Error(kind, message string) map[string]any {
	return map[string]any{
		"error":   kind,
		"message": message,
	}
}

// Validation builds the failure envelope for schema violations, carrying
// every violated field.
func Validation(messages map[string][]string) map[string]any {
	return map[string]any{
		"error":    "Validation Error",
		"messages": messages,
	}
}
