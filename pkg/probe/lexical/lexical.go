// Package lexical flags local parts that look machine generated.
package lexical

import (
	"math"
	"strings"
	"unicode"
)

const (
	// EntropyThreshold is the Shannon entropy in bits per character above
	// which a local part is considered random.
	EntropyThreshold = 4.0
	// RunThreshold is the length of a run of identical characters that flags
	// a local part as random.
	RunThreshold = 5
	// DigitRatioThreshold is the digit share above which an alphanumeric
	// local part is considered random.
	DigitRatioThreshold = 0.3
)

// IsRandom reports whether localPart looks randomly generated. The checks run
// in order (entropy, repeated run, digit ratio) and the first hit wins.
func IsRandom(localPart string) bool {
	if localPart == "" {
		return false
	}

	return Entropy(localPart) > EntropyThreshold ||
		LongestRun(localPart) >= RunThreshold ||
		(isAlphanumeric(localPart) && DigitRatio(localPart) > DigitRatioThreshold)
}

// IsRandomAddress applies IsRandom to the local part of address. Anything
// without exactly one @ is not random.
func IsRandomAddress(address string) bool {
	local, _, ok := strings.Cut(address, "@")
	if !ok || strings.Contains(address[len(local)+1:], "@") {
		return false
	}

	return IsRandom(local)
}

// Entropy returns the Shannon entropy of s in bits per character.
func Entropy(s string) float64 {
	counts := map[rune]int{}
	n := 0
	for _, r := range s {
		counts[r]++
		n++
	}
	if n == 0 {
		return 0
	}

	var h float64
	for _, c := range counts {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}

	return h
}

// LongestRun returns the length of the longest run of one repeated letter or
// digit in s.
func LongestRun(s string) int {
	var (
		longest, run int
		prev         rune = -1
	)
	for _, r := range s {
		if r == prev && isLetterOrDigit(r) {
			run++
		} else {
			run = 1
		}
		if !isLetterOrDigit(r) {
			run = 0
		}
		longest = max(longest, run)
		prev = r
	}

	return longest
}

// DigitRatio returns the share of decimal digits in s.
func DigitRatio(s string) float64 {
	var digits, n int
	for _, r := range s {
		n++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if n == 0 {
		return 0
	}

	return float64(digits) / float64(n)
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !isLetterOrDigit(r) {
			return false
		}
	}

	return s != ""
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
