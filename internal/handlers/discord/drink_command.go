package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/entry"
	"github.com/KirkDiggler/pourlog/internal/models"
	"github.com/KirkDiggler/pourlog/internal/services/analytics"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
	"github.com/KirkDiggler/pourlog/internal/services/messaging"
)

// Button custom IDs
const (
	ButtonRotateRecommendation = "drink_rotate_recommendation"
	ButtonHistoryView          = "drink_history_view"
)

// Discord caps the number of choices on an option
const maxChoices = 25

// historyLimit is how many records /drink history shows
const historyLimit = 10

// DrinkCommandConfig holds the collaborators of the drink command
type DrinkCommandConfig struct {
	Journal   journal.Service
	Analytics analytics.Service
	Messaging messaging.Service
	Parser    *entry.Parser
	Clock     clock.Clock
	Logger    *slog.Logger
}

// DrinkCommand handles the /drink command and its subcommands
type DrinkCommand struct {
	BaseCommand
	journal   journal.Service
	analytics analytics.Service
	messaging messaging.Service
	parser    *entry.Parser
	clock     clock.Clock
	logger    *slog.Logger
}

// NewDrinkCommand creates a new drink command handler
func NewDrinkCommand(cfg *DrinkCommandConfig) (*DrinkCommand, error) {
	if cfg == nil {
		return nil, errors.New("drink command config cannot be nil")
	}
	if cfg.Journal == nil {
		return nil, errors.New("journal service cannot be nil")
	}
	if cfg.Analytics == nil {
		return nil, errors.New("analytics service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Parser == nil {
		return nil, errors.New("entry parser cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &DrinkCommand{
		BaseCommand: BaseCommand{
			Name:        "drink",
			Description: "Keep your drinking journal",
			Options:     drinkOptions(cfg.Journal),
		},
		journal:   cfg.Journal,
		analytics: cfg.Analytics,
		messaging: cfg.Messaging,
		parser:    cfg.Parser,
		clock:     cfg.Clock,
		logger:    logger,
	}, nil
}

func drinkOptions(j journal.Service) []*discordgo.ApplicationCommandOption {
	typeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllDrinkTypes()))
	for _, t := range models.AllDrinkTypes() {
		typeChoices = append(typeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  t.Emoji() + " " + t.Label(),
			Value: string(t),
		})
	}

	moodChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(analytics.AllMoods()))
	for _, m := range analytics.AllMoods() {
		moodChoices = append(moodChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  m.Emoji() + " " + string(m),
			Value: string(m),
		})
	}

	var venueChoices []*discordgo.ApplicationCommandOptionChoice
	for _, v := range j.ListVenues() {
		if len(venueChoices) == maxChoices {
			break
		}
		venueChoices = append(venueChoices, &discordgo.ApplicationCommandOptionChoice{Name: v.Name, Value: v.ID})
	}

	var articleChoices []*discordgo.ApplicationCommandOptionChoice
	for _, a := range j.ListArticles(&journal.ListArticlesInput{}).Articles {
		if len(articleChoices) == maxChoices {
			break
		}
		articleChoices = append(articleChoices, &discordgo.ApplicationCommandOptionChoice{Name: a.Title, Value: a.ID})
	}

	minABV := 0.0
	minVolume := 0.0

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "log",
			Description: "Log a drink",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "What kind of drink",
					Required:    true,
					Choices:     typeChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "brand",
					Description: "Brand or name of the drink",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "abv",
					Description: "Alcohol by volume, in percent",
					Required:    true,
					MinValue:    &minABV,
					MaxValue:    100,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "volume",
					Description: "Amount in ml",
					Required:    true,
					MinValue:    &minVolume,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Day of the drink as YYYY-MM-DD, defaults to today",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "location",
					Description: "Where you had it",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mood",
					Description: "How you felt",
					Choices:     moodChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "notes",
					Description: "Tasting notes",
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "history",
			Description: "Show your latest drinks",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Only this kind of drink",
					Choices:     typeChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "brand",
					Description: "Only brands containing this text",
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "stats",
			Description: "Show your drinking statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "range",
					Description: "Time range",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "This week", Value: string(analytics.RangeWeek)},
						{Name: "This month", Value: string(analytics.RangeMonth)},
						{Name: "This year", Value: string(analytics.RangeYear)},
						{Name: "All time", Value: string(analytics.RangeAll)},
					},
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "venues",
			Description: "List bars and shops",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "checkin",
			Description: "Check in or out of a venue",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "venue",
					Description: "The venue",
					Required:    true,
					Choices:     venueChoices,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "achievements",
			Description: "Show your achievements",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "today",
			Description: "Show today's recommended drink",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "read",
			Description: "Read an article",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "article",
					Description: "The article",
					Required:    true,
					Choices:     articleChoices,
				},
			},
		},
	}
}

// Handle processes the command
func (c *DrinkCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand", "Please use one of the /drink subcommands.")
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "log":
		return c.handleLog(s, i, opts)
	case "history":
		return c.handleHistory(s, i, opts)
	case "stats":
		return c.handleStats(s, i, opts)
	case "venues":
		return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderVenues(c.journal.ListVenues())}, nil)
	case "checkin":
		return c.handleCheckIn(s, i, opts)
	case "achievements":
		return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderAchievements(c.journal.ListAchievements())}, nil)
	case "today":
		return c.handleToday(s, i, false)
	case "read":
		return c.handleRead(s, i, opts)
	default:
		return RespondWithError(s, i, "Unknown subcommand", fmt.Sprintf("I don't know /drink %s.", sub.Name))
	}
}

// HandleComponent processes button presses on drink messages
func (c *DrinkCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	switch i.MessageComponentData().CustomID {
	case ButtonRotateRecommendation:
		return c.handleToday(s, i, true)
	case ButtonHistoryView:
		next := models.ViewModeCalendar
		if c.journal.CurrentView() == models.ViewModeCalendar {
			next = models.ViewModeList
		}
		c.journal.SetCurrentView(&journal.SetCurrentViewInput{View: next})
		return c.respondHistory(s, i, nil)
	default:
		return nil
	}
}

func (c *DrinkCommand) handleLog(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	input, err := c.parser.ParseForm(logForm(opts))
	if err != nil {
		return c.respondFailure(s, i, messaging.ErrorTypeForm, err)
	}

	out := c.journal.AddDrinkRecord(input)
	c.logger.Info("drink.logged", "id", out.Record.ID, "type", out.Record.Type, "unlocked", len(out.Unlocked))

	ctx := context.Background()
	msg, err := c.messaging.GetRecordLoggedMessage(ctx, &messaging.GetRecordLoggedMessageInput{
		Brand:  out.Record.Brand,
		Type:   out.Record.Type,
		Volume: out.Record.Volume,
	})
	if err != nil {
		return c.respondFailure(s, i, messaging.ErrorTypeInternal, err)
	}

	embeds := []*discordgo.MessageEmbed{renderRecordLogged(out.Record, msg.Title, msg.Message)}
	for _, a := range out.Unlocked {
		am, err := c.messaging.GetAchievementMessage(ctx, &messaging.GetAchievementMessageInput{Name: a.Name, Icon: a.Icon})
		if err != nil {
			c.logger.Warn("drink.achievement_message_failed", "achievement", a.ID, "error", err)
			continue
		}
		embeds = append(embeds, renderUnlocked(a, am.Title, am.Message))
	}

	return RespondWithEmbeds(s, i, embeds, nil)
}

// logForm maps the log subcommand options onto the shared entry form
func logForm(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) *entry.Form {
	form := &entry.Form{
		Date:     stringOption(opts, "date"),
		Type:     stringOption(opts, "type"),
		Brand:    stringOption(opts, "brand"),
		Location: stringOption(opts, "location"),
		Mood:     stringOption(opts, "mood"),
		Notes:    stringOption(opts, "notes"),
	}
	if o, ok := opts["abv"]; ok {
		form.ABV = entry.FromFloat(o.FloatValue())
	}
	if o, ok := opts["volume"]; ok {
		form.Volume = entry.FromFloat(o.FloatValue())
	}
	return form
}

func (c *DrinkCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	filter := &models.RecordFilter{Brand: stringOption(opts, "brand")}
	if raw := stringOption(opts, "type"); raw != "" {
		t, ok := models.ParseDrinkType(raw)
		if !ok {
			return c.respondFailure(s, i, messaging.ErrorTypeForm, entry.ErrUnknownType)
		}
		filter.Type = &t
	}
	return c.respondHistory(s, i, filter)
}

func (c *DrinkCommand) respondHistory(s *discordgo.Session, i *discordgo.InteractionCreate, filter *models.RecordFilter) error {
	groups := c.journal.GroupRecordsByDate(&journal.GroupRecordsByDateInput{Filter: filter}).Groups
	embed := renderHistory(groups, c.journal.CurrentView(), historyLimit)

	toggle := discordgo.Button{
		Label:    "Switch view",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonHistoryView,
		Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
	}
	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{toggle})
}

func (c *DrinkCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	r, ok := analytics.ParseRange(stringOption(opts, "range"))
	if !ok {
		return c.respondFailure(s, i, messaging.ErrorTypeForm, analytics.ErrInvalidRange)
	}

	out, err := c.analytics.GetStats(&analytics.GetStatsInput{Range: r})
	if err != nil {
		return c.respondFailure(s, i, messaging.ErrorTypeInternal, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderStats(out.Stats)}, nil)
}

func (c *DrinkCommand) handleCheckIn(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	venue := c.findVenue(stringOption(opts, "venue"))
	if venue == nil {
		return c.respondFailure(s, i, messaging.ErrorTypeNotFound, errors.New("venue"))
	}

	out := c.journal.CheckInVenue(&journal.CheckInVenueInput{VenueID: venue.ID})
	c.logger.Info("drink.check_in", "venue", venue.ID, "checked_in", out.CheckedIn)

	msg, err := c.messaging.GetCheckInMessage(context.Background(), &messaging.GetCheckInMessageInput{
		VenueName: venue.Name,
		CheckedIn: out.CheckedIn,
	})
	if err != nil {
		return c.respondFailure(s, i, messaging.ErrorTypeInternal, err)
	}

	venue.CheckedIn = out.CheckedIn
	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderCheckIn(venue, msg.Message)}, nil)
}

func (c *DrinkCommand) findVenue(id string) *models.Venue {
	for _, v := range c.journal.ListVenues() {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (c *DrinkCommand) handleToday(s *discordgo.Session, i *discordgo.InteractionCreate, rotate bool) error {
	rec := c.journal.DailyRecommendation()
	if rotate || rec == nil {
		rec = c.journal.RotateDailyRecommendation(&journal.RotateDailyRecommendationInput{
			Date: clock.Today(c.clock),
		}).Recommendation
	}
	if rec == nil {
		return c.respondFailure(s, i, messaging.ErrorTypeNotFound, errors.New("recommendation"))
	}

	msg, err := c.messaging.GetRecommendationMessage(context.Background(), &messaging.GetRecommendationMessageInput{
		DrinkName: rec.Drink.Name,
		Reason:    rec.Reason,
	})
	if err != nil {
		return c.respondFailure(s, i, messaging.ErrorTypeInternal, err)
	}

	another := discordgo.Button{
		Label:    "Something else",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonRotateRecommendation,
		Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
	}
	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderRecommendation(rec, msg.Message)}, []discordgo.MessageComponent{another})
}

func (c *DrinkCommand) handleRead(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	id := stringOption(opts, "article")
	out := c.journal.GetArticle(&journal.GetArticleInput{ID: id})
	if !out.Found {
		return c.respondFailure(s, i, messaging.ErrorTypeNotFound, errors.New("article"))
	}

	c.journal.MarkArticleAsRead(&journal.MarkArticleAsReadInput{ArticleID: id})
	out.Article.Read = true

	related := c.journal.RelatedArticles(&journal.RelatedArticlesInput{ID: id, Limit: 3}).Articles
	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderArticle(out.Article, related)}, nil)
}

// respondFailure logs err and replies with a friendly ephemeral message
func (c *DrinkCommand) respondFailure(s *discordgo.Session, i *discordgo.InteractionCreate, kind messaging.ErrorType, err error) error {
	c.logger.Warn("drink.failed", "kind", kind, "error", err)

	msg, msgErr := c.messaging.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType: kind,
		Detail:    err.Error(),
	})
	if msgErr != nil {
		return RespondWithError(s, i, "Something went wrong", err.Error())
	}
	return RespondWithError(s, i, msg.Title, msg.Message)
}

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return ""
}
