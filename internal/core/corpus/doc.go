// Package corpus holds the immutable, in-memory collection of videos that
// search runs against.
//
// A Corpus is built once from a decoded snapshot and never modified. Title
// analysis and comparison folding are done at build time so that searching
// only compares prepared strings. Reloading means building a new Corpus and
// swapping the reference held by the corpus service.
package corpus
