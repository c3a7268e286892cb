package renderer

import (
	"fmt"
	"math"

	"extraction/pkg/game/locale"
	"extraction/pkg/game/state"
)

// CenterFraction is the share of the view a maze may fill on both axes and
// still be drawn centred instead of following the avatar
const CenterFraction = 0.8

// CameraOffset returns the translation to apply to maze pixel coordinates so
// that a maze of mazeW x mazeH fits a view of viewW x viewH. Small mazes are
// centred. Larger ones follow the avatar at (px, py), clamped so no space shows
// past the maze edges.
func CameraOffset(viewW, viewH, mazeW, mazeH, px, py float64) (offsetX, offsetY float64) {
	if mazeW <= viewW*CenterFraction && mazeH <= viewH*CenterFraction {
		return (viewW - mazeW) / 2, (viewH - mazeH) / 2
	}
	return follow(viewW, mazeW, px), follow(viewH, mazeH, py)
}

// follow computes one camera axis. An axis that fits the view is centred.
func follow(view, maze, p float64) float64 {
	if maze <= view {
		return (view - maze) / 2
	}
	return math.Min(0, math.Max(view-maze, view/2-p))
}

// HUDLines returns the heads-up display text for a level in progress
func HUDLines(s state.Snapshot) []string {
	status := fmt.Sprintf(locale.Get("HUD_LEVEL"), s.Level) + "  " + fmt.Sprintf(locale.Get("HUD_SECTOR"), s.Sector.Name())

	audio := locale.Get("HUD_MUTED")
	if !s.Muted {
		audio = fmt.Sprintf(locale.Get("HUD_VOLUME"), int(math.Round(s.Volume*100)))
	}

	return []string{status, audio, locale.Get("HUD_CONTROLS")}
}

// ScreenLines returns the text for the full-screen phases: the start screen
// (or mission accomplished after a finished campaign) and the level complete
// screen. It returns nil while playing.
func ScreenLines(s state.Snapshot) []string {
	switch s.Phase {
	case state.PhaseStart:
		if s.CampaignsCompleted > 0 {
			return []string{
				locale.Get("MISSION_ACCOMPLISHED"),
				locale.Get("MISSION_DEBRIEF"),
				"",
				locale.Get("NEW_CAMPAIGN_PROMPT"),
			}
		}
		return []string{
			locale.Get("TITLE"),
			locale.Get("SUBTITLE"),
			"",
			locale.Get("START_BRIEFING"),
			locale.Get("START_PROMPT"),
		}
	case state.PhaseLevelComplete:
		return []string{
			locale.Get("LEVEL_COMPLETE"),
			fmt.Sprintf(locale.Get("LEVEL_COMPLETE_DETAIL"), s.Level),
			"",
			locale.Get("NEXT_LEVEL_PROMPT"),
		}
	default:
		return nil
	}
}
