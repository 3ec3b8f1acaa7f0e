package backup

// BackupError is a custom error type for backup errors
type BackupError string

// Error implements the error interface
func (e BackupError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       BackupError = "config cannot be nil"
	ErrNilJournal      BackupError = "journal cannot be nil"
	ErrNilSnapshotRepo BackupError = "snapshot repository cannot be nil"
	ErrNilClock        BackupError = "clock cannot be nil"
	ErrMissingOwner    BackupError = "owner ID cannot be empty"
)
