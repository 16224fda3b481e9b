// Package textutil processes diagnostic text emitted by external verifier
// tools.
//
// The primary use cases are:
//   - Reducing raw tool output to the lines worth showing a user
//   - Fuzzy similarity between messages, used to suppress near-duplicate
//     warnings that describe the same underlying problem
//
// Extraction is pure and order preserving; similarity is a normalized
// longest-common-subsequence ratio over case-folded, whitespace-collapsed
// text.
package textutil
