// Package sentiment classifies free text into a Positive/Negative/Neutral
// label using an AFINN-style valence lexicon embedded in the binary.
//
// Classification is pure and deterministic: the same text always yields the
// same label, and there is no error path. Empty text scores zero and is
// therefore Neutral.
package sentiment
