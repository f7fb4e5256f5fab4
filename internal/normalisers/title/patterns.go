package title

import "regexp"

// markerGlyphs are the symbols used to decorate artist names, as in ▽▲TRiNITY▲▽.
const markerGlyphs = `▽▼△▲◇◆○●◎□■☆★♪♫♬♡♥✦✧`

var (
	// decorativeBrackets matches bracket pairs whose contents are decoration.
	decorativeBrackets = regexp.MustCompile(`【[^】]*】|\[[^\]]*\]|〈[^〉]*〉|《[^》]*》|「[^」]*」`)

	// promoTokens matches promotional words. ASCII words only match whole words.
	promoTokens = regexp.MustCompile(
		`(?i)music\s*video|ｍｕｓｉｃ\s*ｖｉｄｅｏ|ミュージック\s*ビデオ|\bofficial\b|ｏｆｆｉｃｉａｌ|オフィシャル|\bmv\b|ｍｖ`,
	)

	// artistMarker matches a name wrapped in one to three marker glyphs on each side.
	artistMarker = regexp.MustCompile(`[` + markerGlyphs + `]{1,3}([^` + markerGlyphs + `]+?)[` + markerGlyphs + `]{1,3}`)

	quoteBrackets = regexp.MustCompile(`[『』]`)
	parentheses   = regexp.MustCompile(`[()（）]`)
	delimiters    = regexp.MustCompile(`[・･|｜]`)

	doubleQuoted = regexp.MustCompile(`『([^』]*)』`)
	cornerQuoted = regexp.MustCompile(`「([^」]*)」`)
	lenticular   = regexp.MustCompile(`【([^】]*)】`)

	leadingLenticular = regexp.MustCompile(`^\s*【[^】]*】`)

	katakanaRun = regexp.MustCompile(`[\p{Katakana}ー]{2,}`)
	asciiWord   = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]+`)

	// phrase matches a run of ASCII words or a katakana run, whichever comes first.
	phrase = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*(?:[ '&.-][A-Za-z0-9]+)*|[\p{Katakana}ー]{2,}`)

	// titleBoundary marks where a song title usually ends.
	titleBoundary = regexp.MustCompile(`(?i)music\s*video|\bmv\b| - |／`)

	officialWord = regexp.MustCompile(`(?i)official|オフィシャル`)
)

// truncationMarks end the comparable part of a title; whatever follows is
// usually the artist or channel.
var truncationMarks = []string{"／", " - "}

// suffixWords disqualify a 【…】 segment from being the main title.
var suffixWords = []string{
	"cover", "covered", "original", "オリジナル", "歌ってみた", "弾いてみた", "踊ってみた",
	"mv", "official", "公式", "切り抜き", "収録曲",
}

// genericWords carry no identifying information on their own.
var genericWords = map[string]bool{
	"music":    true,
	"video":    true,
	"cover":    true,
	"feat":     true,
	"ft":       true,
	"official": true,
	"mv":       true,
	"ミュージック":   true,
	"ビデオ":      true,
	"オフィシャル":   true,
}
