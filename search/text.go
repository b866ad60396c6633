package search

import (
	"strings"
	"unicode"
)

// Stop words dropped from name tokens before fuzzy matching
var stopWords = map[string]bool{
	"the": true, "of": true, "for": true, "at": true,
	"in": true, "on": true, "and": true, "or": true,
}

// tokenSynonyms folds common school-name abbreviations onto one spelling.
// An empty value drops the token.
var tokenSynonyms = map[string]string{
	"elem":       "elementary",
	"elementary": "elementary",
	"middle":     "middle",
	"jr":         "middle",
	"junior":     "middle",
	"high":       "high",
	"sr":         "high",
	"senior":     "high",
	"st":         "saint",
	"mt":         "mount",
	"sch":        "",
	"school":     "",
}

// normalizeTokens lowercases text, turns punctuation into separators,
// applies tokenSynonyms, and removes stop words and single characters.
func normalizeTokens(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	words := strings.Fields(cleaned)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if mapped, ok := tokenSynonyms[word]; ok {
			word = mapped
		}
		if len([]rune(word)) <= 1 || stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// normalizeSpace collapses runs of whitespace and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstWord returns the lowercased first whitespace token of s.
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func runeLen(s string) int {
	return len([]rune(s))
}
