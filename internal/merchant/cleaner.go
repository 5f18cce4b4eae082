// Package merchant canonicalizes transaction descriptions. Two levels are
// exposed: Clean is the conservative form stored on the transaction, and
// Canonical is the aggressive merchant-name normalization the classifier
// works from.
package merchant

import (
	"regexp"
	"strings"
	"unicode"
)

// Clean trims a raw description and, when the whole string is shouted in
// upper case, converts it to title case. Mixed-case input passes through
// untouched because the institution's own casing is usually right.
func Clean(raw string) string {
	name := strings.TrimSpace(raw)
	if isUpper(name) && len(name) > 1 {
		name = titleCase(name)
	}
	return name
}

// chainRule pairs a merchant matcher with its transform. Rules are
// evaluated in order and the first match short-circuits, so more specific
// chains must come before generic cleanup.
type chainRule struct {
	matcher   *regexp.Regexp
	transform func(groups []string) string
}

var chainRules = []chainRule{
	{
		// Amazon keeps its .Com capitalization.
		matcher:   regexp.MustCompile(`(?i)^amazon\.com$`),
		transform: func([]string) string { return "Amazon.Com" },
	},
	{
		// Walmart variants collapse to the brand, keeping a store number.
		matcher: regexp.MustCompile(`(?i)^(walmart)\s*(?:supercenter|neighborhood market|store)?\s*(#\d+)?$`),
		transform: func(groups []string) string {
			return strings.TrimSpace("Walmart " + groups[2])
		},
	},
	{
		// Target keeps its location suffix.
		matcher: regexp.MustCompile(`(?i)^(target)\s*(store)?\s*(.*)$`),
		transform: func(groups []string) string {
			if groups[3] != "" {
				return strings.TrimSpace("Target Store " + titleCase(groups[3]))
			}
			return "Target"
		},
	},
	{
		matcher: regexp.MustCompile(`(?i)^(shell)\s*(oil)?\s*(.*)$`),
		transform: func(groups []string) string {
			if groups[2] != "" {
				return "Shell Oil"
			}
			return "Shell"
		},
	},
	{
		matcher: regexp.MustCompile(`(?i)^(starbucks)\s*(card)?\s*(.*)$`),
		transform: func(groups []string) string {
			if groups[2] != "" {
				return "Starbucks Card"
			}
			return "Starbucks"
		},
	},
}

// Legal-entity and storefront suffixes stripped from unrecognized merchants.
var entitySuffixes = []string{
	"llc", "inc", "ltd", "corp", "llp", "plc", "lp", "l.p.", "company", "co",
	"corporation", "incorporated", "limited", "holdings", "group", "enterprises",
	"store", "market", "shop", "outlet",
}

var (
	suffixRegex    = buildSuffixRegex()
	standaloneNum  = regexp.MustCompile(`\b\d+\b`)
	specialChars   = regexp.MustCompile(`[^\w\s&#']`)
	lowercaseWords = map[string]bool{
		"a": true, "an": true, "and": true, "as": true, "at": true, "by": true,
		"for": true, "in": true, "of": true, "or": true, "the": true, "to": true,
		"with": true,
	}
)

func buildSuffixRegex() *regexp.Regexp {
	quoted := make([]string, len(entitySuffixes))
	for i, s := range entitySuffixes {
		quoted[i] = regexp.QuoteMeta(s) + `\b\.?`
	}
	return regexp.MustCompile(`(?i)(?:\s*[,-]?\s*(?:` + strings.Join(quoted, "|") + `))+`)
}

// Canonical normalizes a merchant description for classification: collapse
// whitespace, apply the chain rules, and failing those strip entity
// suffixes, store numbers and stray punctuation before title-casing.
// Unusable input comes back as "Unknown".
func Canonical(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "Unknown"
	}

	for _, rule := range chainRules {
		if groups := rule.matcher.FindStringSubmatch(name); groups != nil {
			return rule.transform(groups)
		}
	}

	name = suffixRegex.ReplaceAllString(name, "")
	name = standaloneNum.ReplaceAllString(name, "")
	name = specialChars.ReplaceAllString(name, " ")
	name = strings.Join(strings.Fields(name), " ")

	words := strings.Split(name, " ")
	if len(words) == 0 || words[0] == "" {
		return "Unknown"
	}

	// Merchants like Amazon.Com keep the dot-separated capitalization.
	if strings.Contains(words[0], ".") {
		parts := strings.SplitN(words[0], ".", 2)
		head := capitalize(parts[0])
		if len(parts) > 1 {
			head += "." + capitalize(parts[1])
		}
		words[0] = head
	}

	for i, word := range words {
		if i == 0 || !lowercaseWords[strings.ToLower(word)] {
			words[i] = capitalize(word)
		}
	}

	return strings.TrimSpace(strings.Join(words, " "))
}

// capitalize uppercases the first letter and lowercases the rest; single
// letters are uppercased whole.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	if len(runes) == 1 {
		return strings.ToUpper(word)
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// titleCase reproduces shout-case cleanup: a letter starts a new word after
// any non-letter, gets uppercased, and everything else is lowered.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// isUpper reports whether s contains at least one letter and no lowercase
// letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
