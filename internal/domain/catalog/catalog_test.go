package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
)

func TestProverbs_NonEmptyAndComplete(t *testing.T) {
	ps := catalog.Proverbs()
	require.NotEmpty(t, ps)
	for i, p := range ps {
		assert.NotEmpty(t, p.Text, "proverb %d text", i)
		assert.NotEmpty(t, p.Category, "proverb %d category", i)
	}
}

func TestProverbs_ReturnsCopy(t *testing.T) {
	ps := catalog.Proverbs()
	ps[0].Text = "mutated"
	assert.NotEqual(t, "mutated", catalog.Proverbs()[0].Text)
}

func TestMovies(t *testing.T) {
	ms := catalog.Movies()
	require.Len(t, ms, 3)
	for _, m := range ms {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Quote)
	}
}

func TestBackupHotTopics(t *testing.T) {
	for _, src := range []string{catalog.SourceZhihu, catalog.SourceWeibo, catalog.SourceToutiao} {
		items := catalog.BackupHotTopics(src)
		require.Len(t, items, entity.HotTopicLimit, src)
		for i, it := range items {
			assert.Equal(t, i+1, it.Index)
		}
	}
	assert.Nil(t, catalog.BackupHotTopics("unknown"))
}

func TestGradients_ReturnsDeepCopy(t *testing.T) {
	gs := catalog.Gradients()
	require.NotEmpty(t, gs)
	gs[0].Colors[0] = "#000000"
	assert.NotEqual(t, "#000000", catalog.Gradients()[0].Colors[0])
}

func TestGames(t *testing.T) {
	assert.Len(t, catalog.Games(), 6)
}

func TestWallpaperURLs(t *testing.T) {
	ts := time.UnixMilli(1700000000123)

	assert.Equal(t, "https://source.unsplash.com/1920x1080/?nature&t=1700000000123", catalog.UnsplashURL("", ts))
	assert.Equal(t, "https://source.unsplash.com/1920x1080/?city+night&t=1700000000123", catalog.UnsplashURL("city night", ts))
	assert.Equal(t, "https://picsum.photos/1920/1080?t=1700000000123", catalog.PicsumURL(ts))
	assert.ElementsMatch(t, []string{"unsplash", "picsum", "bing"}, catalog.WallpaperSources())
}
