package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var blockedWords = regexp.MustCompile(`\b(damn|hell|crap|shit|fuck|bitch|ass|bastard)\b`)

var (
	promoPhrases = regexp.MustCompile(`\b(buy now|click here|order now|free shipping|limited offer|act now|visit our)\b|https?://|www\.|\b[a-z0-9-]+\.(com|net|org|io|shop)\b`)
	promoWords   = regexp.MustCompile(`\b(buy|sale|discount|free|click|visit|deal|offer|cheap|promo)\b`)
	symbolRuns   = regexp.MustCompile(`!{2,}|\${2,}`)
)

const (
	strongRepeat = 8
	weakRepeat   = 5
	strongCaps   = 20
	weakCaps     = 10
)

// ContainsBlockedWord reports whether text contains a blocked word as a whole
// word, case-insensitively.
func ContainsBlockedWord(text string) bool {
	return blockedWords.MatchString(strings.ToLower(text))
}

// IsSpam classifies text as spam when it carries one strong signal or at
// least two different weak ones.
func IsSpam(text string) bool {
	lower := strings.ToLower(text)
	strong, weak := 0, 0

	if promoPhrases.MatchString(lower) {
		strong++
	}

	switch run := longestRepeat(lower); {
	case run >= strongRepeat:
		strong++
	case run >= weakRepeat:
		weak++
	}

	// Capitalized packaging text is common; shouting needs ! or $ as well.
	if strings.ContainsAny(text, "!$") {
		switch caps := longestCapsRun(text); {
		case caps >= strongCaps:
			strong++
		case caps >= weakCaps:
			weak++
		}
	}

	if symbolRuns.MatchString(text) {
		weak++
	}
	if promoWords.MatchString(lower) {
		weak++
	}

	return strong > 0 || weak >= 2
}

// longestRepeat returns the longest run of one repeated non-space rune.
func longestRepeat(s string) int {
	best, run := 0, 0
	var prev rune = -1
	for _, r := range s {
		if r == prev && !unicode.IsSpace(r) {
			run++
		} else {
			run = 1
		}
		prev = r
		if run > best {
			best = run
		}
	}
	return best
}

// longestCapsRun counts the upper-case letters in the longest stretch made of
// upper-case letters, spaces and punctuation.
func longestCapsRun(s string) int {
	best, letters := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			letters++
		case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsDigit(r):
		default:
			letters = 0
		}
		if letters > best {
			best = letters
		}
	}
	return best
}
