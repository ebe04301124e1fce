// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package match

import "strings"

// Thresholds for accepting a match. The whole-string threshold is looser
// than the per-word one because short words produce noisier bigram scores.
const (
	similarityThreshold     = 0.75
	wordSimilarityThreshold = 0.8
)

// IsMatch decides whether a player's guess is close enough to the correct
// answer to count. Rules are applied in order; the first success wins:
//
//  1. exact match after normalization (lowercase, trim)
//  2. containment in either direction ("cake" vs "birthday cake")
//  3. whole-string bigram similarity >= 0.75
//  4. simple plural forms ("cat" vs "cats", both directions)
//  5. for multi-word answers, any answer word longer than 3 characters
//     with similarity > 0.8 against any guess word
//
// Pure and deterministic: same inputs always yield the same verdict.
func IsMatch(correctAnswer, guess string) bool {
	if correctAnswer == "" || guess == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(correctAnswer))
	candidate := strings.ToLower(strings.TrimSpace(guess))

	if candidate == answer {
		return true
	}

	if strings.Contains(candidate, answer) || strings.Contains(answer, candidate) {
		return true
	}

	if Similarity(answer, candidate) >= similarityThreshold {
		return true
	}

	if answer+"s" == candidate || candidate+"s" == answer {
		return true
	}

	answerWords := strings.Fields(answer)
	if len(answerWords) > 1 {
		guessWords := strings.Fields(candidate)
		for _, word := range answerWords {
			if len(word) <= 3 {
				continue
			}
			for _, guessWord := range guessWords {
				if Similarity(word, guessWord) > wordSimilarityThreshold {
					return true
				}
			}
		}
	}

	return false
}

// Similarity computes a bigram Dice coefficient between two strings,
// case-insensitive, in [0, 1]. Overlapping rune bigrams of a are counted
// into a multiset and consumed by the bigrams of b:
//
//	2 * matches / (len(a) + len(b) - 2)
//
// Strings shorter than two runes score 0 against everything.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	matches := 0
	for i := 0; i < len(rb)-1; i++ {
		key := string(rb[i : i+2])
		if bigrams[key] > 0 {
			bigrams[key]--
			matches++
		}
	}

	return float64(2*matches) / float64(len(ra)+len(rb)-2)
}
