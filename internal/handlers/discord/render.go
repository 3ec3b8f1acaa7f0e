package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pourlog/internal/models"
	"github.com/KirkDiggler/pourlog/internal/render"
	"github.com/KirkDiggler/pourlog/internal/services/analytics"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

// articleExcerpt is the rune budget of an article shown in an embed
const articleExcerpt = 600

func renderRecordLogged(r *models.DrinkRecord, title, message string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Type", Value: r.Type.Emoji() + " " + r.Type.Label(), Inline: true},
		{Name: "ABV", Value: formatABV(r.ABV), Inline: true},
		{Name: "Volume", Value: formatVolume(r.Volume), Inline: true},
		{Name: "Date", Value: r.Date, Inline: true},
	}
	if r.Location != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Where", Value: r.Location, Inline: true})
	}
	if r.Mood != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Mood", Value: moodLabel(r.Mood), Inline: true})
	}
	if r.Notes != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Notes", Value: r.Notes})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorAmber,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Record " + r.ID},
	}
}

func renderUnlocked(a *models.Achievement, title, message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message + "\n\n" + a.Description,
		Color:       colorGreen,
	}
}

func renderHistory(groups []*journal.DateGroup, view models.ViewMode, limit int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📖 Your drinks",
		Color: colorAmber,
	}
	if len(groups) == 0 {
		embed.Description = "Nothing logged yet. Use `/drink log` to add your first drink."
		return embed
	}

	shown, total := 0, 0
	for _, g := range groups {
		total += len(g.Records)
	}

	if view == models.ViewModeCalendar {
		// One line per day
		var sb strings.Builder
		for _, g := range groups {
			if shown >= limit {
				break
			}
			var emoji strings.Builder
			for _, r := range g.Records {
				emoji.WriteString(r.Type.Emoji())
			}
			fmt.Fprintf(&sb, "**%s** %s (%d)\n", g.Date, emoji.String(), len(g.Records))
			shown += len(g.Records)
		}
		embed.Description = sb.String()
	} else {
		for _, g := range groups {
			if shown >= limit {
				break
			}
			var sb strings.Builder
			for _, r := range g.Records {
				if shown >= limit {
					break
				}
				fmt.Fprintf(&sb, "%s **%s** %s · %s\n", r.Type.Emoji(), r.Brand, formatABV(r.ABV), formatVolume(r.Volume))
				shown++
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: g.Date, Value: sb.String()})
		}
	}

	if shown < total {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Showing %d of %d drinks", shown, total)}
	}
	return embed
}

func renderStats(st *analytics.Stats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📊 Stats: " + rangeLabel(st.Range),
		Color: colorAmber,
	}
	if st.From != "" {
		embed.Description = st.From + " to " + st.To
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Drinks", Value: fmt.Sprintf("%d", st.TotalRecords), Inline: true},
		{Name: "Volume", Value: formatVolume(st.TotalVolume), Inline: true},
		{Name: "Average ABV", Value: formatABV(st.AverageABV), Inline: true},
		{Name: "Venues", Value: fmt.Sprintf("%d", st.UniqueVenues), Inline: true},
		{Name: "Achievements", Value: fmt.Sprintf("%d", st.EarnedAchievements), Inline: true},
	}
	if st.FavouriteType != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Favourite",
			Value:  st.FavouriteType.Emoji() + " " + st.FavouriteType.Label(),
			Inline: true,
		})
	}
	if st.FavouriteBrand != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Top brand", Value: st.FavouriteBrand, Inline: true})
	}

	var types strings.Builder
	for _, t := range st.Types {
		if t.Count == 0 {
			continue
		}
		fmt.Fprintf(&types, "%s %s: %d\n", t.Type.Emoji(), t.Label, t.Count)
	}
	if types.Len() > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "By type", Value: types.String()})
	}

	var moods strings.Builder
	for _, m := range st.Moods {
		if m.Count == 0 {
			continue
		}
		fmt.Fprintf(&moods, "%s %s: %d\n", m.Emoji, m.Mood, m.Count)
	}
	if moods.Len() > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Moods", Value: moods.String()})
	}

	return embed
}

func renderVenues(venues []*models.Venue) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📍 Venues",
		Color: colorAmber,
	}
	for _, v := range venues {
		name := v.Name
		if v.CheckedIn {
			name = "✅ " + name
		}
		value := v.Address
		if v.OpenHours != "" {
			value += "\n" + v.OpenHours
		}
		if v.Rating != nil {
			value += fmt.Sprintf("\n⭐ %.1f", *v.Rating)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value})
	}
	if len(venues) == 0 {
		embed.Description = "No venues yet."
	}
	return embed
}

func renderCheckIn(v *models.Venue, message string) *discordgo.MessageEmbed {
	title := "👋 Checked out of " + v.Name
	color := colorAmber
	if v.CheckedIn {
		title = "📍 Checked in at " + v.Name
		color = colorGreen
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
	}
}

func renderAchievements(list []*models.Achievement) *discordgo.MessageEmbed {
	earned := 0
	var sb strings.Builder
	for _, a := range list {
		mark := "🔒"
		if a.Unlocked {
			mark = a.Icon
			earned++
		}
		fmt.Fprintf(&sb, "%s **%s**: %s", mark, a.Name, a.Description)
		if a.UnlockedAt != nil {
			fmt.Fprintf(&sb, " (%s)", a.UnlockedAt.Format(models.DateLayout))
		}
		sb.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Achievements %d/%d", earned, len(list)),
		Description: sb.String(),
		Color:       colorAmber,
	}
}

func renderRecommendation(rec *models.DailyRecommendation, message string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       rec.Drink.Type.Emoji() + " " + rec.Drink.Name,
		Description: message + "\n\n" + rec.Drink.Description,
		Color:       colorAmber,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Type", Value: rec.Drink.Type.Label(), Inline: true},
			{Name: "ABV", Value: formatABV(rec.Drink.ABV), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Recommendation for " + rec.Date},
	}
	if rec.Drink.Image != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: rec.Drink.Image}
	}
	return embed
}

func renderArticle(a *models.Article, related []*models.Article) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📚 " + a.Title,
		Description: render.Summarize(a.Content, articleExcerpt),
		Color:       colorAmber,
		Footer:      &discordgo.MessageEmbedFooter{Text: a.Category.Label() + " · " + a.PublishDate},
	}
	if a.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: a.Image}
	}
	if len(related) > 0 {
		titles := make([]string, 0, len(related))
		for _, r := range related {
			titles = append(titles, r.Title)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Related", Value: strings.Join(titles, "\n")})
	}
	return embed
}

func rangeLabel(r analytics.Range) string {
	switch r {
	case analytics.RangeWeek:
		return "this week"
	case analytics.RangeMonth:
		return "this month"
	case analytics.RangeYear:
		return "this year"
	default:
		return "all time"
	}
}

func moodLabel(mood string) string {
	for _, m := range analytics.AllMoods() {
		if string(m) == mood {
			return m.Emoji() + " " + mood
		}
	}
	return mood
}

func formatABV(abv float64) string {
	return fmt.Sprintf("%.1f%%", abv)
}

func formatVolume(ml float64) string {
	if ml >= 1000 {
		return fmt.Sprintf("%.2f L", ml/1000)
	}
	return fmt.Sprintf("%.0f ml", ml)
}
