package metrics

// DefaultVocabulary returns the built-in domain keyword set: generic
// backend/API/auth terms matched as substrings of a function's name and
// body. Callers may pass an alternate set to NewEnricher; the scoring
// formula is unchanged either way.
func DefaultVocabulary() []string {
	return []string{
		"db", "database", "user", "auth", "token", "order", "payment",
		"item", "items", "create", "read", "update", "delete", "openapi",
		"route", "request", "response", "router", "http", "status", "oauth",
		"login", "logout", "session", "validate", "schema", "serialize",
	}
}
