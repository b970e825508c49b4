package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	keyReplacer = strings.NewReplacer(
		" ", " ", " ", " ",
		"–", "-", "—", "-", "−", "-", "―", "-", "－", "-",
	)
	reHyphenGap = regexp.MustCompile(`[\s\p{Zs}]+-[\s\p{Zs}]*|[\s\p{Zs}]*-[\s\p{Zs}]+`)
	reSpaceRun  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// NormalizeText flattens the line break spellings that show up in hand
// edited cells: CRLF, lone CR and a literally typed backslash-n all
// become LF. Safe to apply twice.
func NormalizeText(input string) string {
	s := strings.ReplaceAll(input, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	return s
}

// NormalizeKey canonicalizes a section label so variants typed with NBSP,
// unicode dashes or uneven spacing group into the same section. A hyphen
// with whitespace on either side becomes " - "; bare hyphens as in
// "2024-01-01" are left alone.
func NormalizeKey(input string) string {
	s := norm.NFC.String(input)
	s = keyReplacer.Replace(s)
	s = reHyphenGap.ReplaceAllString(s, " - ")
	s = reSpaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

var affirmativeTokens = map[string]struct{}{
	"y": {}, "yes": {}, "true": {}, "1": {}, "o": {},
	"✓": {}, "✔": {}, "✅": {}, "new": {},
}

// ParseFlag reads the free-form NEW marker. Only an exact token from the
// affirmative set counts as true; anything else, including a missing
// cell, is false.
func ParseFlag(input string) bool {
	token := strings.ToLower(strings.TrimSpace(input))
	_, ok := affirmativeTokens[token]
	return ok
}
