package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRecordLoggedMessage returns a message for a freshly logged drink
	GetRecordLoggedMessage(ctx context.Context, input *GetRecordLoggedMessageInput) (*GetRecordLoggedMessageOutput, error)

	// GetAchievementMessage returns a message for an unlocked achievement
	GetAchievementMessage(ctx context.Context, input *GetAchievementMessageInput) (*GetAchievementMessageOutput, error)

	// GetCheckInMessage returns a message for a venue check-in toggle
	GetCheckInMessage(ctx context.Context, input *GetCheckInMessageInput) (*GetCheckInMessageOutput, error)

	// GetRecommendationMessage returns a message introducing today's recommendation
	GetRecommendationMessage(ctx context.Context, input *GetRecommendationMessageInput) (*GetRecommendationMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
