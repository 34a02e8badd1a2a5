package web

import "github.com/sahilm/fuzzy"

const maxSuggestions = 3

// Suggest returns the keywords that fuzzily match command, best first.
func Suggest(command string) []string {
	if command == "" {
		return nil
	}

	var out []string
	for _, m := range fuzzy.Find(command, Keywords) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
