// Package refine tidies informal text with a fixed, ordered rule table.
package refine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is one substitution step. Exactly one of Replacement or Func is used.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
	Func        func(match string) string
}

func (r Rule) apply(s string) string {
	if r.Func != nil {
		return r.Pattern.ReplaceAllStringFunc(s, r.Func)
	}
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

// contractions maps informal spellings to their apostrophe forms.
// Order is irrelevant: every entry matches a whole word.
var contractions = [][2]string{
	{"cant", "can't"},
	{"dont", "don't"},
	{"wont", "won't"},
	{"isnt", "isn't"},
	{"arent", "aren't"},
	{"wasnt", "wasn't"},
	{"werent", "weren't"},
	{"doesnt", "doesn't"},
	{"didnt", "didn't"},
	{"havent", "haven't"},
	{"hasnt", "hasn't"},
	{"couldnt", "couldn't"},
	{"wouldnt", "wouldn't"},
	{"shouldnt", "shouldn't"},
	{"im", "I'm"},
	{"ive", "I've"},
	{"youre", "you're"},
	{"theyre", "they're"},
	{"thats", "that's"},
	{"whats", "what's"},
}

var rules = buildRules()

func buildRules() []Rule {
	out := []Rule{
		{Name: "collapse-whitespace", Pattern: regexp.MustCompile(`[^\S\n]+`), Replacement: " "},
		{Name: "trim-lines", Pattern: regexp.MustCompile(`(?m)^ | $`), Replacement: ""},
		{Name: "trim", Pattern: regexp.MustCompile(`^\s+|\s+$`), Replacement: ""},
		// A blank line separates paragraphs; a single line break is a soft wrap.
		{Name: "join-lines", Pattern: regexp.MustCompile(`\n+`), Func: joinLines},
		{Name: "no-space-before-punctuation", Pattern: regexp.MustCompile(` +([,.!?;:])`), Replacement: "$1"},
		{Name: "space-after-punctuation", Pattern: regexp.MustCompile(`([,!?;:])([A-Za-z])`), Replacement: "$1 $2"},
		// Lowercase after a dot is left alone so host names and file names survive.
		{Name: "space-after-period", Pattern: regexp.MustCompile(`\.([A-Z])`), Replacement: ". $1"},
	}

	for _, pair := range contractions {
		formal := pair[1]
		out = append(out, Rule{
			Name:    "contraction-" + pair[0],
			Pattern: regexp.MustCompile(`(?i)\b` + pair[0] + `\b`),
			Func: func(match string) string {
				return matchCase(match, formal)
			},
		})
	}

	return append(out,
		Rule{Name: "pronoun-i", Pattern: regexp.MustCompile(`\bi\b`), Replacement: "I"},
		Rule{Name: "capitalize-paragraphs", Pattern: regexp.MustCompile(`(?m)^[a-z]`), Func: strings.ToUpper},
		Rule{Name: "capitalize-sentences", Pattern: regexp.MustCompile(`[.!?] [a-z]`), Func: strings.ToUpper},
	)
}

func joinLines(match string) string {
	if len(match) > 1 {
		return "\n\n"
	}
	return " "
}

// matchCase capitalizes replacement when the matched word was capitalized.
func matchCase(match, replacement string) string {
	first, _ := utf8.DecodeRuneInString(match)
	if !unicode.IsUpper(first) {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}

// Rules returns a copy of the rule table in application order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Refine applies every rule in order and returns the result. It never fails.
func Refine(text string) string {
	for _, r := range rules {
		text = r.apply(text)
	}
	return text
}
