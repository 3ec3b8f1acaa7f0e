// Package entry turns raw user input into validated journal inputs.
package entry

import (
	"encoding/base64"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/models"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

// Validation tags shared by full forms and patches
const (
	tagDate   = "required,datetime=2006-01-02"
	tagType   = "required,drinktype"
	tagBrand  = "required,max=100"
	tagABV    = "gt=0,lte=100"
	tagVolume = "gt=0"
	tagText   = "max=500"
	tagNotes  = "max=2000"
	tagPhoto  = "omitempty,imagedatauri"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,`)

// record is the normalised form the validator checks against recordRules
type record struct {
	Date     string
	Type     string
	Brand    string
	ABV      float64
	Volume   float64
	Location string
	Mood     string
	Notes    string
	Photo    string
}

// recordRules is the single source of the record's validation tags
var recordRules = map[string]string{
	"Date":     tagDate,
	"Type":     tagType,
	"Brand":    tagBrand,
	"ABV":      tagABV,
	"Volume":   tagVolume,
	"Location": tagText,
	"Mood":     tagText,
	"Notes":    tagNotes,
	"Photo":    tagPhoto,
}

// fieldErrors maps a failing struct field to the error reported for it
var fieldErrors = map[string]FormError{
	"Date":     ErrInvalidDate,
	"Type":     ErrUnknownType,
	"Brand":    ErrBrandRequired,
	"ABV":      ErrInvalidABV,
	"Volume":   ErrInvalidVolume,
	"Location": ErrFieldTooLong,
	"Mood":     ErrFieldTooLong,
	"Notes":    ErrFieldTooLong,
	"Photo":    ErrInvalidPhoto,
}

// Parser validates record forms
type Parser struct {
	clock         clock.Clock
	maxPhotoBytes int
	validate      *validator.Validate
}

// New creates a form parser
func New(cfg *Config) (*Parser, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, ErrNilClock
	}

	maxPhoto := cfg.MaxPhotoBytes
	if maxPhoto <= 0 {
		maxPhoto = DefaultMaxPhotoBytes
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("drinktype", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseDrinkType(fl.Field().String())
		return ok
	}); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("imagedatauri", func(fl validator.FieldLevel) bool {
		return dataURIPrefix.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	v.RegisterStructValidationMapRules(recordRules, record{})

	return &Parser{
		clock:         cfg.Clock,
		maxPhotoBytes: maxPhoto,
		validate:      v,
	}, nil
}

// ParseForm validates a new record. An empty date means today.
func (p *Parser) ParseForm(form *Form) (*journal.AddDrinkRecordInput, error) {
	if form == nil {
		form = &Form{}
	}

	rec := record{
		Date:     strings.TrimSpace(form.Date),
		Type:     strings.TrimSpace(form.Type),
		Brand:    strings.TrimSpace(form.Brand),
		Location: strings.TrimSpace(form.Location),
		Mood:     strings.TrimSpace(form.Mood),
		Notes:    strings.TrimSpace(form.Notes),
		Photo:    strings.TrimSpace(form.Photo),
	}
	if rec.Date == "" {
		rec.Date = clock.Today(p.clock)
	}

	var ok bool
	if rec.ABV, ok = parseNumber(form.ABV); !ok {
		return nil, ErrInvalidABV
	}
	if rec.Volume, ok = parseNumber(form.Volume); !ok {
		return nil, ErrInvalidVolume
	}

	if err := p.validate.Struct(rec); err != nil {
		return nil, translate(err)
	}
	if err := p.checkPhotoSize(rec.Photo); err != nil {
		return nil, err
	}

	drinkType, _ := models.ParseDrinkType(rec.Type)

	return &journal.AddDrinkRecordInput{
		Date:     rec.Date,
		Type:     drinkType,
		Brand:    rec.Brand,
		ABV:      rec.ABV,
		Volume:   rec.Volume,
		Location: rec.Location,
		Mood:     rec.Mood,
		Notes:    rec.Notes,
		Photo:    rec.Photo,
	}, nil
}

// ParsePatch validates the supplied fields of an update
func (p *Parser) ParsePatch(form *PatchForm) (*models.DrinkRecordPatch, error) {
	if form == nil {
		return nil, ErrEmptyPatch
	}

	patch := &models.DrinkRecordPatch{}

	if form.Date != nil {
		date := strings.TrimSpace(*form.Date)
		if err := p.check(date, tagDate, ErrInvalidDate); err != nil {
			return nil, err
		}
		patch.Date = &date
	}
	if form.Type != nil {
		drinkType, ok := models.ParseDrinkType(*form.Type)
		if !ok {
			return nil, ErrUnknownType
		}
		patch.Type = &drinkType
	}
	if form.Brand != nil {
		brand := strings.TrimSpace(*form.Brand)
		if err := p.check(brand, tagBrand, ErrBrandRequired); err != nil {
			return nil, err
		}
		patch.Brand = &brand
	}
	if form.ABV != nil {
		abv, ok := parseNumber(*form.ABV)
		if !ok {
			return nil, ErrInvalidABV
		}
		if err := p.check(abv, tagABV, ErrInvalidABV); err != nil {
			return nil, err
		}
		patch.ABV = &abv
	}
	if form.Volume != nil {
		volume, ok := parseNumber(*form.Volume)
		if !ok {
			return nil, ErrInvalidVolume
		}
		if err := p.check(volume, tagVolume, ErrInvalidVolume); err != nil {
			return nil, err
		}
		patch.Volume = &volume
	}

	var err error
	if patch.Location, err = p.optionalText(form.Location, tagText); err != nil {
		return nil, err
	}
	if patch.Mood, err = p.optionalText(form.Mood, tagText); err != nil {
		return nil, err
	}
	if patch.Notes, err = p.optionalText(form.Notes, tagNotes); err != nil {
		return nil, err
	}

	if form.Photo != nil {
		photo := strings.TrimSpace(*form.Photo)
		if err := p.check(photo, tagPhoto, ErrInvalidPhoto); err != nil {
			return nil, err
		}
		if err := p.checkPhotoSize(photo); err != nil {
			return nil, err
		}
		patch.Photo = &photo
	}

	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	return patch, nil
}

func (p *Parser) optionalText(raw *string, tag string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	text := strings.TrimSpace(*raw)
	if err := p.check(text, tag, ErrFieldTooLong); err != nil {
		return nil, err
	}
	return &text, nil
}

// check validates a single value, reporting failures as formErr
func (p *Parser) check(value any, tag string, formErr FormError) error {
	if err := p.validate.Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return formErr
		}
		return err
	}
	return nil
}

func (p *Parser) checkPhotoSize(photo string) error {
	if photo == "" {
		return nil
	}
	payload := dataURIPrefix.ReplaceAllString(photo, "")
	if base64.StdEncoding.DecodedLen(len(payload)) > p.maxPhotoBytes {
		return ErrPhotoTooLarge
	}
	return nil
}

// translate reports the first failing field as a FormError
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	if formErr, ok := fieldErrors[verrs[0].Field()]; ok {
		return formErr
	}
	return err
}

// parseNumber parses a trimmed decimal. Empty input parses as zero so range checks report it.
func parseNumber(n Number) (float64, bool) {
	raw := strings.TrimSpace(string(n))
	if raw == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
