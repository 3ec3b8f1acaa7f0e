package messaging

import (
	"github.com/KirkDiggler/pourlog/internal/common/picker"
	"github.com/KirkDiggler/pourlog/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType categorises the failures a user can be told about
type ErrorType string

const (
	ErrorTypeForm     ErrorType = "form"
	ErrorTypeNotFound ErrorType = "not_found"
	ErrorTypeInternal ErrorType = "internal"
)

// ServiceConfig holds the dependencies of the messaging service
type ServiceConfig struct {
	// Picker chooses between message variants. Optional.
	Picker picker.Picker
}

// GetRecordLoggedMessageInput describes the logged record
type GetRecordLoggedMessageInput struct {
	Brand  string
	Type   models.DrinkType
	Volume float64

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRecordLoggedMessageOutput contains the generated message
type GetRecordLoggedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetAchievementMessageInput describes the unlocked achievement
type GetAchievementMessageInput struct {
	Name string
	Icon string
}

// GetAchievementMessageOutput contains the generated message
type GetAchievementMessageOutput struct {
	Title   string
	Message string
}

// GetCheckInMessageInput describes the toggled venue
type GetCheckInMessageInput struct {
	VenueName string

	// CheckedIn is the state after the toggle
	CheckedIn bool
}

// GetCheckInMessageOutput contains the generated message
type GetCheckInMessageOutput struct {
	Message string
}

// GetRecommendationMessageInput describes today's recommendation
type GetRecommendationMessageInput struct {
	DrinkName string
	Reason    string
}

// GetRecommendationMessageOutput contains the generated message
type GetRecommendationMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Detail is shown verbatim after the friendly message, e.g. a form error
	Detail string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
