package cli

import (
	"bytes"
	"context"

	"github.com/hibiki-labs/kioku/internal/adapters/driven/storage/memory"
	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/services"
)

const trinityTitle = "▽▲TRiNITY▲▽『XOXO』Music Video【ホロライブ/収録曲】"

func fixtureRecords() []domain.VideoRecord {
	return []domain.VideoRecord{
		{
			ID:           "trinity01",
			Title:        trinityTitle,
			ChannelTitle: "にじさんじ",
			ViewCount:    1200,
			Override: &domain.CustomOverride{
				ManualTitle:            "XOXO",
				ManualArtist:           "TRiNITY",
				JapanesePronunciations: []string{"エックスオーエックスオー"},
				ArtistPronunciations:   []string{"トリニティ"},
				SearchKeywords:         []string{"ばちゃうた"},
			},
		},
		{
			ID:           "yoru01",
			Title:        "夜に駆ける／YOASOBI",
			ChannelTitle: "Ayase / YOASOBI",
			Insight:      &domain.CreativeInsight{Creators: []string{"Ayase", "ikura"}},
		},
		{
			ID:           "generic01",
			Title:        "XOXO dance practice",
			ChannelTitle: "Dance Studio",
		},
	}
}

// setupTestServices injects in-memory services built over the fixture
// records. The returned function restores the previous state.
func setupTestServices() func() {
	oldSettings, oldSearch, oldCorpus := settingsService, searchService, corpusService
	oldAppSettings, oldPath := appSettings, snapshotPath

	settingsService = services.NewSettingsService(memory.NewConfigStore())
	corpus := services.NewCorpusService(memory.NewSnapshotSource(fixtureRecords()...))
	corpus.Bootstrap(context.Background())
	corpusService = corpus
	searchService = services.NewSearchService(corpus, domain.DefaultAppSettings().Search)
	snapshotPath = ""

	return func() {
		settingsService, searchService, corpusService = oldSettings, oldSearch, oldCorpus
		appSettings, snapshotPath = oldAppSettings, oldPath
		closeServices()
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

// resetFlags restores flag variables, which cobra keeps between executions.
func resetFlags() {
	verbose, configDirFlag, snapshotFlag, driverFlag = false, "", "", ""
	searchLimit, searchJSON, searchExplain = 0, false, false
	termsJSON, configInitForce, importDB = false, false, ""
	mcpPort, mcpWatch, tuiWatch = 0, false, false
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
