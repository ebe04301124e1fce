// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package match implements the fuzzy answer judge.

The judge tolerates the ways people actually type: case differences,
extra words around the answer, near-miss spellings, plural forms, and
partial credit on multi-word answers.

	match.IsMatch("Statue of Liberty", "liberty") // true
	match.IsMatch("dog", "xyz")                   // false

Similarity is a bigram Dice coefficient: no semantic understanding,
only lexical closeness. Both functions are pure.
*/
package match
