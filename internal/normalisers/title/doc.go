// Package title turns decorated YouTube titles into comparison strings.
//
// Japanese music-video titles carry a lot of decoration: lenticular
// brackets around channel names, promotional words, artist markers made
// of symbols and trailing "／artist" suffixes. None of it helps a spoken
// query find the video, so the package provides:
//
//   - Normalise: strips decorative markup into a comparison-friendly string
//   - SearchableTerms: the candidate keywords a title can be found by
//   - MainTitle: the best guess at the song or video name
//   - Fold: case and width folding applied before any comparison
//
// All functions are pure and safe for concurrent use.
package title
