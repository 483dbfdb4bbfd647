package model

// SwipeSound is the sound played when an item is swiped.
type SwipeSound string

const (
	SwipeSoundNone      SwipeSound = "none"
	SwipeSoundSoftClick SwipeSound = "soft_click"
	SwipeSoundBeep      SwipeSound = "beep"
	SwipeSoundPop       SwipeSound = "pop"
)

// CompletionSound is the sound played when a checklist is completed.
type CompletionSound string

const (
	CompletionSoundNone         CompletionSound = "none"
	CompletionSoundNotification CompletionSound = "notification"
	CompletionSoundSuccessChime CompletionSound = "success_chime"
	CompletionSoundTada         CompletionSound = "tada"
)

// SwipeSounds lists the swipe sound options in menu order.
func SwipeSounds() []SwipeSound {
	return []SwipeSound{SwipeSoundNone, SwipeSoundSoftClick, SwipeSoundBeep, SwipeSoundPop}
}

// CompletionSounds lists the completion sound options in menu order.
func CompletionSounds() []CompletionSound {
	return []CompletionSound{
		CompletionSoundNone, CompletionSoundNotification,
		CompletionSoundSuccessChime, CompletionSoundTada,
	}
}

// Font scale bounds; values outside are clamped, not rejected.
const (
	MinFontScale = 0.7
	MaxFontScale = 1.5
)

// AppSettings holds user preferences consumed by the presentation layer.
// It is configuration, not part of the checklist domain.
type AppSettings struct {
	SwipeSound           SwipeSound      `json:"swipeSound" mapstructure:"swipeSound"`
	CompletionSound      CompletionSound `json:"completionSound" mapstructure:"completionSound"`
	EnableHapticFeedback bool            `json:"enableHapticFeedback" mapstructure:"enableHapticFeedback"`
	FontName             string          `json:"fontName" mapstructure:"fontName"`
	FontScale            float64         `json:"fontScale" mapstructure:"fontScale"`
}

// DefaultAppSettings returns the out-of-the-box preferences.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		SwipeSound:           SwipeSoundSoftClick,
		CompletionSound:      CompletionSoundNotification,
		EnableHapticFeedback: true,
		FontName:             "default",
		FontScale:            1.0,
	}
}

// Normalized returns the settings with FontScale clamped into
// [MinFontScale, MaxFontScale].
func (s AppSettings) Normalized() AppSettings {
	if s.FontScale < MinFontScale {
		s.FontScale = MinFontScale
	}
	if s.FontScale > MaxFontScale {
		s.FontScale = MaxFontScale
	}
	return s
}
