package models

import "strings"

// DrinkType is the category of a drink
type DrinkType string

const (
	DrinkTypeBeer     DrinkType = "beer"
	DrinkTypeWine     DrinkType = "wine"
	DrinkTypeBaijiu   DrinkType = "baijiu"
	DrinkTypeWhiskey  DrinkType = "whiskey"
	DrinkTypeSake     DrinkType = "sake"
	DrinkTypeCocktail DrinkType = "cocktail"
	DrinkTypeCustom   DrinkType = "custom"
)

// AllDrinkTypes returns every drink type in display order
func AllDrinkTypes() []DrinkType {
	return []DrinkType{
		DrinkTypeBeer,
		DrinkTypeWine,
		DrinkTypeBaijiu,
		DrinkTypeWhiskey,
		DrinkTypeSake,
		DrinkTypeCocktail,
		DrinkTypeCustom,
	}
}

// ParseDrinkType resolves a drink type from user input, ignoring case and surrounding space
func ParseDrinkType(raw string) (DrinkType, bool) {
	t := DrinkType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// Valid reports whether t is one of the known drink types
func (t DrinkType) Valid() bool {
	switch t {
	case DrinkTypeBeer, DrinkTypeWine, DrinkTypeBaijiu, DrinkTypeWhiskey,
		DrinkTypeSake, DrinkTypeCocktail, DrinkTypeCustom:
		return true
	default:
		return false
	}
}

// Label returns the human readable name of the drink type
func (t DrinkType) Label() string {
	switch t {
	case DrinkTypeBeer:
		return "Beer"
	case DrinkTypeWine:
		return "Wine"
	case DrinkTypeBaijiu:
		return "Baijiu"
	case DrinkTypeWhiskey:
		return "Whiskey"
	case DrinkTypeSake:
		return "Sake"
	case DrinkTypeCocktail:
		return "Cocktail"
	case DrinkTypeCustom:
		return "Other"
	default:
		return ""
	}
}

// Emoji returns the icon shown next to the drink type
func (t DrinkType) Emoji() string {
	switch t {
	case DrinkTypeBeer:
		return "🍺"
	case DrinkTypeWine:
		return "🍷"
	case DrinkTypeBaijiu, DrinkTypeSake:
		return "🍶"
	case DrinkTypeWhiskey:
		return "🥃"
	case DrinkTypeCocktail:
		return "🍸"
	case DrinkTypeCustom:
		return "🥂"
	default:
		return ""
	}
}
