package service

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// capitalize upper-cases the first letter of text and leaves the rest untouched.
func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// joinList joins a phrase list into a single answer with only its first letter capitalized.
func joinList(items []string) string {
	return capitalize(strings.Join(items, ", "))
}

// ordinalSuffix returns the English ordinal suffix for n ("st", "nd", "rd" or "th").
func ordinalSuffix(n int) string {
	j, k := n%10, n%100
	switch {
	case j == 1 && k != 11:
		return "st"
	case j == 2 && k != 12:
		return "nd"
	case j == 3 && k != 13:
		return "rd"
	default:
		return "th"
	}
}

func ordinal(n int) string {
	return strconv.Itoa(n) + ordinalSuffix(n)
}

// planetRef names a planet inside a sentence: "the Sun", "the Moon", "Mars".
func planetRef(p entities.Planet) string {
	if p.IsLuminary() {
		return "the " + p.Name
	}
	return p.Name
}

func houseRef(h entities.House) string {
	return "the " + ordinal(h.Number) + " House"
}
