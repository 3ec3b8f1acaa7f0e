package entry

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
)

// DefaultMaxPhotoBytes caps the decoded size of an attached photo
const DefaultMaxPhotoBytes = 2 << 20

// Config holds the dependencies of the form parser
type Config struct {
	// Clock supplies today's date when the form leaves it empty
	Clock clock.Clock

	// MaxPhotoBytes caps the decoded photo size. Zero means DefaultMaxPhotoBytes.
	MaxPhotoBytes int
}

// Number is a numeric form field. It decodes from a JSON number or a JSON string.
type Number string

// UnmarshalJSON accepts 4.5, "4.5" and null
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(data)
	return nil
}

// FromFloat formats f as a Number
func FromFloat(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// Form is a new record as typed by the user
type Form struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Brand    string `json:"brand"`
	ABV      Number `json:"abv"`
	Volume   Number `json:"volume"`
	Location string `json:"location"`
	Mood     string `json:"mood"`
	Notes    string `json:"notes"`
	Photo    string `json:"photo"`
}

// PatchForm is a partial record update. Nil fields are left unchanged.
type PatchForm struct {
	Date     *string `json:"date"`
	Type     *string `json:"type"`
	Brand    *string `json:"brand"`
	ABV      *Number `json:"abv"`
	Volume   *Number `json:"volume"`
	Location *string `json:"location"`
	Mood     *string `json:"mood"`
	Notes    *string `json:"notes"`
	Photo    *string `json:"photo"`
}
