package api

import "strings"

// sanitizeMessage strips HTML-significant characters and control runes
// from the incoming message. The reply text is assembled from templates,
// so this only guards log output and echoed fragments like the user name.
func sanitizeMessage(message string) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range message {
		switch {
		case r == '<' || r == '>' || r == '&':
			continue
		case r < 32 && r != '\n' && r != '\t':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
