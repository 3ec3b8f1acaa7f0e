package analytics

// AnalyticsError is a custom error type for analytics errors
type AnalyticsError string

// Error implements the error interface
func (e AnalyticsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    AnalyticsError = "config cannot be nil"
	ErrNilSource    AnalyticsError = "record source cannot be nil"
	ErrNilClock     AnalyticsError = "clock cannot be nil"
	ErrInvalidRange AnalyticsError = "range must be one of week, month, year, all"
)
