package openai

import "strings"

// GetFullRequestURL joins baseURL and requestURL, avoiding a doubled /v1
// segment when the configured base already ends with it (OpenRouter-style
// gateways are usually configured as https://host/api/v1).
func GetFullRequestURL(baseURL string, requestURL string) string {
	trimmedBase := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBase == "" {
		trimmedBase = DefaultBaseURL
	}

	path := requestURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if strings.HasSuffix(trimmedBase, "/v1") {
		path = strings.TrimPrefix(path, "/v1")
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
	}
	return trimmedBase + path
}
