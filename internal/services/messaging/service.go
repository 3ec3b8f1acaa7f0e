package messaging

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pourlog/internal/common/picker"
)

// service implements the Service interface
type service struct {
	// picker selects a random message variant
	picker picker.Picker
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var p picker.Picker
	if config != nil && config.Picker != nil {
		p = config.Picker
	} else {
		p = picker.New(nil)
	}

	return &service{
		picker: p,
	}, nil
}

// pick returns one of messages
func (s *service) pick(messages []string) string {
	i := s.picker.Pick(len(messages))
	if i < 0 || i >= len(messages) {
		i = 0
	}
	return messages[i]
}

// GetRecordLoggedMessage returns a message for a freshly logged drink
func (s *service) GetRecordLoggedMessage(ctx context.Context, input *GetRecordLoggedMessageInput) (*GetRecordLoggedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	drink := input.Brand
	if drink == "" {
		drink = input.Type.Label()
	}

	var messages []string
	switch tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("Logged %s (%gml).", drink, input.Volume),
			fmt.Sprintf("%s has been added to your journal.", drink),
		}
	case ToneEncouraging:
		messages = []string{
			fmt.Sprintf("Nice pick! %s is in the book. Remember to pace yourself.", drink),
			fmt.Sprintf("%s logged. Every sip tells a story, keep writing yours.", drink),
			fmt.Sprintf("Good call on the %s. Have a glass of water for the road.", drink),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s, noted. Your liver has been informed.", drink),
			fmt.Sprintf("Another %s for the archives! Historians will thank you.", drink),
			fmt.Sprintf("%gml of %s? Science demands we write this down.", input.Volume, drink),
			fmt.Sprintf("%s logged. The bartender would be proud.", drink),
			fmt.Sprintf("Cheers to %s! It's in the journal now, no take-backs.", drink),
		}
	}

	return &GetRecordLoggedMessageOutput{
		Title:   fmt.Sprintf("%s Drink Logged", input.Type.Emoji()),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetAchievementMessage returns a message for an unlocked achievement
func (s *service) GetAchievementMessage(ctx context.Context, input *GetAchievementMessageInput) (*GetAchievementMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := []string{
		fmt.Sprintf("You unlocked **%s**! Raise a glass.", input.Name),
		fmt.Sprintf("Achievement get: **%s**. Frame it, toast it, brag about it.", input.Name),
		fmt.Sprintf("**%s** is yours. The trophy shelf grows!", input.Name),
	}

	return &GetAchievementMessageOutput{
		Title:   fmt.Sprintf("%s Achievement Unlocked", input.Icon),
		Message: s.pick(messages),
	}, nil
}

// GetCheckInMessage returns a message for a venue check-in toggle
func (s *service) GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	if input.CheckedIn {
		messages = []string{
			fmt.Sprintf("Checked in at %s. First round's on... someone.", input.VenueName),
			fmt.Sprintf("You're at %s! Pull up a stool.", input.VenueName),
			fmt.Sprintf("%s has a new regular in the making.", input.VenueName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("Checked out of %s. Get home safe!", input.VenueName),
			fmt.Sprintf("Leaving %s already? The night was young.", input.VenueName),
		}
	}

	return &GetCheckInMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetRecommendationMessage returns a message introducing today's recommendation
func (s *service) GetRecommendationMessage(ctx context.Context, input *GetRecommendationMessageInput) (*GetRecommendationMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := []string{
		fmt.Sprintf("Today's pour: **%s**.", input.DrinkName),
		fmt.Sprintf("If you're drinking anything today, make it **%s**.", input.DrinkName),
		fmt.Sprintf("The house suggests **%s**.", input.DrinkName),
	}

	message := s.pick(messages)
	if input.Reason != "" {
		message = fmt.Sprintf("%s %s", message, input.Reason)
	}

	return &GetRecommendationMessageOutput{
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var title string
	var messages []string
	switch input.ErrorType {
	case ErrorTypeForm:
		title = "That Pour Didn't Measure Up"
		messages = []string{
			"Something in that entry doesn't add up.",
			"The journal squinted at that entry and said no.",
			"Close, but the form needs another look.",
		}
	case ErrorTypeNotFound:
		title = "Not Found"
		messages = []string{
			"Couldn't find that one. Maybe it was a dream?",
			"Nothing here. Did we drink it already?",
		}
	default:
		title = "Something Went Wrong"
		messages = []string{
			"Something spilled behind the bar. Try again in a moment.",
			"The journal tripped over its own feet. Please try again.",
		}
	}
	if tone == ToneNeutral {
		messages = messages[:1]
	}

	message := s.pick(messages)
	if input.Detail != "" {
		message = fmt.Sprintf("%s (%s)", message, input.Detail)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}
