package journal

// JournalError is a custom error type for journal construction errors
type JournalError string

// Error implements the error interface
func (e JournalError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        JournalError = "config cannot be nil"
	ErrNilClock         JournalError = "clock cannot be nil"
	ErrNilUUIDGenerator JournalError = "UUID generator cannot be nil"
	ErrNilCatalog       JournalError = "catalog cannot be nil"
)
