package locale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_English(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, "en", Language())
	assert.Equal(t, "Mission Accomplished!", Get("MISSION_ACCOMPLISHED"))
	assert.Equal(t, "Level 3", fmt.Sprintf(Get("HUD_LEVEL"), 3))
	assert.Equal(t, "Volume 30%", fmt.Sprintf(Get("HUD_VOLUME"), 30))
}

func TestInit_German(t *testing.T) {
	require.NoError(t, Init("de"))
	t.Cleanup(func() { _ = Init("en") })
	assert.Equal(t, "Mission erfüllt!", Get("MISSION_ACCOMPLISHED"))
	assert.Equal(t, "Sektor: Kommandobunker", fmt.Sprintf(Get("HUD_SECTOR"), Get("SECTOR_COMMAND")))
}

func TestInit_DefaultAndUnknown(t *testing.T) {
	require.NoError(t, Init(""))
	assert.Equal(t, DefaultLanguage, Language())

	err := Init("xx")
	assert.Error(t, err)
	// a failed Init keeps the previous catalog
	assert.Equal(t, DefaultLanguage, Language())
}

func TestGet_UnknownKeyFallsBack(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, "NOT_A_KEY", Get("NOT_A_KEY"))
}

func TestGet_PlaceholdersLeftForCaller(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, "Level %d", Get("HUD_LEVEL"))
	assert.Equal(t, "Volume %d%%", Get("HUD_VOLUME"))
}

func TestLanguages(t *testing.T) {
	assert.ElementsMatch(t, []string{"de", "en"}, Languages())
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	keys := []string{
		"TITLE", "START_PROMPT", "MISSION_ACCOMPLISHED", "MISSION_DEBRIEF",
		"NEW_CAMPAIGN_PROMPT", "LEVEL_COMPLETE", "NEXT_LEVEL_PROMPT", "HUD_MUTED",
		"HUD_CONTROLS", "MSG_LEVEL_RESET", "SECTOR_PERIMETER", "SECTOR_COMMAND",
	}
	for _, l := range Languages() {
		require.NoError(t, Init(l))
		for _, k := range keys {
			assert.NotEqual(t, k, Get(k), "language %s missing %s", l, k)
		}
	}
	require.NoError(t, Init("en"))
}
