package evaluation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "Jane_Doe_Software_Engineer_20260830_140509.json",
		fileName("Jane Doe", "Software Engineer", ts))
	assert.Equal(t, "A-B-C_UI-UX_Designer_20260830_140509.json",
		fileName(`A/B\C`, "UI/UX Designer", ts))
}

func TestSanitizeNeverEmitsSeparators(t *testing.T) {
	out := sanitize(`../etc passwd\..`)
	assert.NotContains(t, out, "/")
	assert.NotContains(t, out, `\`)
	assert.NotContains(t, out, " ")
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	result := &Result{
		Metadata: Metadata{
			CandidateName: "Jane Doe",
			Position:      "AI Developer",
		},
		Ratings:        map[string]int{"overall_score": 7},
		Strengths:      []string{"concise answers"},
		Recommendation: Recommendation{Decision: "Hire", RoleFitPercentage: 80},
	}

	path, err := store.Save(result)
	require.NoError(t, err)
	assert.Equal(t, path, result.Metadata.SavedTo)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "Jane_Doe_AI_Developer_"))
	assert.True(t, strings.HasSuffix(base, ".json"))

	loaded, err := store.Load(base)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.Metadata.CandidateName)
	assert.Equal(t, 7, loaded.Ratings["overall_score"])
	assert.Equal(t, "Hire", loaded.Recommendation.Decision)
	assert.Equal(t, path, loaded.Metadata.SavedTo)
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "evaluations")
	store := NewStore(dir)

	_, err := store.Save(&Result{Metadata: Metadata{CandidateName: "X", Position: "Y"}})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	store.now = func() time.Time { return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC) }
	_, err = store.Save(&Result{Metadata: Metadata{CandidateName: "B", Position: "Dev"}})
	require.NoError(t, err)

	store.now = func() time.Time { return time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC) }
	_, err = store.Save(&Result{Metadata: Metadata{CandidateName: "A", Position: "Dev"}})
	require.NoError(t, err)

	names, err = store.List()
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "A_Dev_20260830_110000.json", names[0])
	assert.Equal(t, "B_Dev_20260830_100000.json", names[1])
}
