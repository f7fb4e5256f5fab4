package title

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const trinityTitle = "▽▲TRiNITY▲▽『XOXO』Music Video【ホロライブ/収録曲】"

func TestNormalise(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"artist marker and quotes", trinityTitle, "TRiNITY XOXO"},
		{"fullwidth slash truncates", "夜に駆ける／YOASOBI", "夜に駆ける"},
		{"dash truncates", "Song Title - Artist Name (Official Video)", "Song Title"},
		{"lenticular brackets removed", "【歌ってみた】シャルル【にじさんじ】", "シャルル"},
		{"square brackets removed", "[MV] Blue Bird", "Blue Bird"},
		{"fullwidth promo removed", "ＭＶ 群青", "群青"},
		{"katakana promo removed", "アイドル オフィシャル ミュージックビデオ", "アイドル"},
		{"mv only as whole word", "MVP Highlights", "MVP Highlights"},
		{"delimiters become spaces", "Lemon・米津玄師", "Lemon 米津玄師"},
		{"pipe becomes space", "Song|Artist", "Song Artist"},
		{"ideographic space collapses", "夜に駆ける　 YOASOBI", "夜に駆ける YOASOBI"},
		{"all markup", "【公式】ＭＶ", ""},
		{"empty", "", ""},
		{"whitespace only", "  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalise(tt.raw))
		})
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	titles := []string{
		trinityTitle,
		"Music Music Video Video",
		"夜に駆ける／YOASOBI",
		"★A★B★ official",
		"「」『』（）",
		"Song Title - Artist Name (Official Video)",
		"ＭＶ ｍｕｓｉｃ ｖｉｄｅｏ",
	}

	for _, raw := range titles {
		once := Normalise(raw)
		assert.Equal(t, once, Normalise(once), "raw %q", raw)
	}
}

func TestNormalise_RepeatsUntilStable(t *testing.T) {
	// Removing the inner tokens exposes a second "Music Video".
	assert.Equal(t, "", Normalise("Music Music Video Video"))
}

func TestNormalise_IdempotentUnderDeepNesting(t *testing.T) {
	titles := []string{
		strings.Repeat("music ", 20) + strings.Repeat("video ", 20) + "song",
		strings.Repeat("▽", 60) + "name" + strings.Repeat("▽", 60),
		strings.Repeat("★☆", 25) + "星" + strings.Repeat("☆★", 25) + " official",
		strings.Repeat("ミュージック ", 12) + strings.Repeat("ビデオ ", 12) + "夜",
		strings.Repeat("【", 30) + "x" + strings.Repeat("】", 30),
	}

	for _, raw := range titles {
		once := Normalise(raw)
		assert.Equal(t, once, Normalise(once), "raw %q", raw)
	}

	assert.Equal(t, "song", Normalise(titles[0]))
	assert.Equal(t, "name", Normalise(titles[1]))
	assert.Equal(t, "星", Normalise(titles[2]))
	assert.Equal(t, "夜", Normalise(titles[3]))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a", truncate("a - b／c"))
	assert.Equal(t, "a", truncate("a／b - c"))
	assert.Equal(t, "a-b", truncate("a-b"))
}
