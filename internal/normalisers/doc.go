// Package normalisers holds the text normalisation used to make video
// titles searchable. The title subpackage turns decorated music-video
// titles into a clean title, a main title and a list of search terms.
package normalisers
