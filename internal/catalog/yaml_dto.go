package catalog

type yamlCatalog struct {
	Venues          []yamlVenue         `yaml:"venues"`
	Articles        []yamlArticle       `yaml:"articles"`
	Achievements    []yamlAchievement   `yaml:"achievements"`
	Recommendations yamlRecommendations `yaml:"recommendations"`
}

type yamlVenue struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Address     string   `yaml:"address"`
	Phone       string   `yaml:"phone"`
	OpenHours   string   `yaml:"open_hours"`
	Rating      *float64 `yaml:"rating"`
}

type yamlArticle struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Summary     string `yaml:"summary"`
	Content     string `yaml:"content"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	ReadCount   int    `yaml:"read_count"`
	PublishDate string `yaml:"publish_date"`
}

type yamlAchievement struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type yamlRecommendations struct {
	Featured   string                 `yaml:"featured"`
	Candidates []yamlRecommendedDrink `yaml:"candidates"`
}

type yamlRecommendedDrink struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
	ABV         float64 `yaml:"abv"`
	Reason      string  `yaml:"reason"`
}
