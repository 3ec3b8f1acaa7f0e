package entry

// FormError is returned when user supplied record fields are rejected
type FormError string

// Error implements the error interface
func (e FormError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBrandRequired FormError = "brand is required"
	ErrInvalidABV    FormError = "abv must be greater than 0 and at most 100"
	ErrInvalidVolume FormError = "volume must be greater than 0"
	ErrInvalidDate   FormError = "date must be formatted YYYY-MM-DD"
	ErrUnknownType   FormError = "unknown drink type"
	ErrInvalidPhoto  FormError = "photo must be an image data URI"
	ErrPhotoTooLarge FormError = "photo is too large"
	ErrFieldTooLong  FormError = "field is too long"
	ErrEmptyPatch    FormError = "no fields to update"
	ErrNilClock      FormError = "clock cannot be nil"
)
