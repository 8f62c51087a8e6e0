// Package address provides the hierarchical Address value type used to
// identify scoring entities throughout the pipeline.
//
// An Address is an immutable ordered sequence of opaque tokens, written in
// text form with "/" between tokens (e.g. "forge/repo/alice"). Addresses
// form a hierarchy through the prefix relation: "forge/repo" is a prefix of
// "forge/repo/alice", every address is a prefix of itself, and the empty
// (root) address is a prefix of everything.
//
// The prefix test compares token sequences, never raw strings, so "forge/re"
// is not a prefix of "forge/repo".
package address
