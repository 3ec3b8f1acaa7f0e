package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pourlog/internal/catalog"
	"github.com/KirkDiggler/pourlog/internal/common/clock/mocks"
	pickerMocks "github.com/KirkDiggler/pourlog/internal/common/picker/mocks"
	uuidMocks "github.com/KirkDiggler/pourlog/internal/common/uuid/mocks"
	"github.com/KirkDiggler/pourlog/internal/models"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClock  *mocks.MockClock
	mockUUID   *uuidMocks.MockUUID
	mockPicker *pickerMocks.MockPicker
	journal    Service

	testTime time.Time
	idSeq    int
	catalog  *catalog.Catalog
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockPicker = pickerMocks.NewMockPicker(s.mockCtrl)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.idSeq = 0
	s.catalog = testCatalog()

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.idSeq++
		return fmt.Sprintf("record-%d", s.idSeq)
	}).AnyTimes()

	svc, err := New(&Config{
		Catalog:       s.catalog,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Picker:        s.mockPicker,
	})
	s.Require().NoError(err)
	s.journal = svc
}

func (s *JournalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func testCatalog() *catalog.Catalog {
	rating := 4.5
	return &catalog.Catalog{
		Venues: []*models.Venue{
			{ID: "v1", Name: "Zuixian Tavern", Latitude: 39.9, Longitude: 116.4, Rating: &rating},
			{ID: "v2", Name: "Whiskey Bar", Latitude: 39.91, Longitude: 116.41},
		},
		Articles: []*models.Article{
			{ID: "a1", Title: "Whiskey Basics", Summary: "Scotch to Japanese", Category: models.DrinkTypeWhiskey, ReadCount: 1250},
			{ID: "a2", Title: "Baijiu Culture", Summary: "History and craft", Category: models.DrinkTypeBaijiu, ReadCount: 980},
			{ID: "a3", Title: "Peated Malts", Summary: "Smoke and Islay", Category: models.DrinkTypeWhiskey},
		},
		Achievements: []*models.Achievement{
			{ID: "1", Name: "First Pour", Icon: "🍻"},
			{ID: "2", Name: "Seven Day Streak", Icon: "📅"},
			{ID: "3", Name: "Explorer", Icon: "🌟"},
		},
		Recommendations: []*models.DailyRecommendation{
			{ID: "yamazaki-12", Drink: models.RecommendedDrink{Name: "Yamazaki 12", Type: models.DrinkTypeWhiskey, ABV: 43}},
			{ID: "dassai-45", Drink: models.RecommendedDrink{Name: "Dassai 45", Type: models.DrinkTypeSake, ABV: 16}},
		},
		Featured: "yamazaki-12",
	}
}

func (s *JournalServiceTestSuite) addRecord(t models.DrinkType, brand string, abv float64, date string) *models.DrinkRecord {
	out := s.journal.AddDrinkRecord(&AddDrinkRecordInput{
		Date:   date,
		Type:   t,
		Brand:  brand,
		ABV:    abv,
		Volume: 100,
	})
	s.Require().NotNil(out.Record)
	return out.Record
}

func (s *JournalServiceTestSuite) achievement(id string) *models.Achievement {
	for _, a := range s.journal.ListAchievements() {
		if a.ID == id {
			return a
		}
	}
	s.FailNow("achievement not found", id)
	return nil
}

// New

func (s *JournalServiceTestSuite) TestNew_RequiresDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{UUIDGenerator: s.mockUUID, Catalog: s.catalog})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{Clock: s.mockClock, Catalog: s.catalog})
	s.Equal(ErrNilUUIDGenerator, err)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Equal(ErrNilCatalog, err)
}

func (s *JournalServiceTestSuite) TestNew_SeedsFromCatalog() {
	s.Empty(s.journal.ListDrinkRecords())
	s.Len(s.journal.ListVenues(), 2)
	s.Len(s.journal.ListArticles(nil).Articles, 3)
	s.Equal(models.ViewModeList, s.journal.CurrentView())

	for _, a := range s.journal.ListAchievements() {
		s.False(a.Unlocked)
	}

	rec := s.journal.DailyRecommendation()
	s.Require().NotNil(rec)
	s.Equal("yamazaki-12", rec.ID)
	s.Equal("2025-04-19", rec.Date)
}

// AddDrinkRecord

func (s *JournalServiceTestSuite) TestAddDrinkRecord_AssignsIdentityAndTimestamp() {
	out := s.journal.AddDrinkRecord(&AddDrinkRecordInput{
		Date:     "2025-04-19",
		Type:     models.DrinkTypeBeer,
		Brand:    "Tsingtao",
		ABV:      4.7,
		Volume:   500,
		Location: "Home",
		Mood:     "relaxed",
		Notes:    "crisp",
		Photo:    "data:image/png;base64,AAAA",
	})

	s.Require().NotNil(out.Record)
	s.Equal("record-1", out.Record.ID)
	s.Equal(s.testTime, out.Record.CreatedAt)
	s.Equal("Tsingtao", out.Record.Brand)
	s.Equal(500.0, out.Record.Volume)
	s.Equal("data:image/png;base64,AAAA", out.Record.Photo)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_NewestFirst() {
	s.addRecord(models.DrinkTypeBeer, "first", 5, "2025-04-17")
	s.addRecord(models.DrinkTypeWine, "second", 12, "2025-04-18")
	s.addRecord(models.DrinkTypeSake, "third", 15, "2025-04-19")

	records := s.journal.ListDrinkRecords()
	s.Require().Len(records, 3)
	s.Equal("third", records[0].Brand)
	s.Equal("second", records[1].Brand)
	s.Equal("first", records[2].Brand)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_CountAndDistinctIDs() {
	for i := 0; i < 25; i++ {
		s.addRecord(models.DrinkTypeBeer, fmt.Sprintf("brand-%d", i), 5, "2025-04-19")
	}

	records := s.journal.ListDrinkRecords()
	s.Len(records, 25)

	ids := make(map[string]struct{})
	for _, r := range records {
		ids[r.ID] = struct{}{}
	}
	s.Len(ids, 25)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_RegeneratesCollidingIDs() {
	ctrl := gomock.NewController(s.T())
	gen := uuidMocks.NewMockUUID(ctrl)
	gomock.InOrder(
		gen.EXPECT().NewUUID().Return("same"),
		gen.EXPECT().NewUUID().Return("same"),
		gen.EXPECT().NewUUID().Return("other"),
	)

	svc, err := New(&Config{Catalog: s.catalog, Clock: s.mockClock, UUIDGenerator: gen})
	s.Require().NoError(err)

	first := svc.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeBeer, Brand: "a"})
	second := svc.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeBeer, Brand: "b"})

	s.Equal("same", first.Record.ID)
	s.Equal("other", second.Record.ID)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_StuckGeneratorStillUnique() {
	ctrl := gomock.NewController(s.T())
	gen := uuidMocks.NewMockUUID(ctrl)
	gen.EXPECT().NewUUID().Return("stuck").AnyTimes()

	svc, err := New(&Config{Catalog: s.catalog, Clock: s.mockClock, UUIDGenerator: gen})
	s.Require().NoError(err)

	ids := make(map[string]struct{})
	for i := 0; i < 4; i++ {
		out := svc.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeBeer, Brand: "a"})
		ids[out.Record.ID] = struct{}{}
	}
	s.Len(ids, 4)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_FirstRecordUnlocksAchievement() {
	s.False(s.achievement(AchievementFirstRecord).Unlocked)

	out := s.journal.AddDrinkRecord(&AddDrinkRecordInput{
		Date: "2025-04-19", Type: models.DrinkTypeBeer, Brand: "X", ABV: 5, Volume: 500,
	})

	s.Require().Len(out.Unlocked, 1)
	s.Equal(AchievementFirstRecord, out.Unlocked[0].ID)

	first := s.achievement(AchievementFirstRecord)
	s.True(first.Unlocked)
	s.Require().NotNil(first.UnlockedAt)
	s.Equal(s.testTime, *first.UnlockedAt)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_SecondRecordUnlocksNothingNew() {
	s.addRecord(models.DrinkTypeBeer, "X", 5, "2025-04-19")
	out := s.journal.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeBeer, Brand: "Y", Date: "2025-04-19"})
	s.Empty(out.Unlocked)
	s.True(s.achievement(AchievementFirstRecord).Unlocked)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_FiveDistinctTypesUnlockExplorer() {
	s.addRecord(models.DrinkTypeBeer, "X", 5, "2025-04-19")
	s.True(s.achievement(AchievementFirstRecord).Unlocked)

	s.addRecord(models.DrinkTypeWine, "W", 13, "2025-04-19")
	s.addRecord(models.DrinkTypeWine, "W2", 12, "2025-04-19")
	s.addRecord(models.DrinkTypeBaijiu, "B", 52, "2025-04-19")
	s.addRecord(models.DrinkTypeWhiskey, "K", 43, "2025-04-19")
	s.False(s.achievement(AchievementDistinctTypes).Unlocked, "four types must not unlock")

	out := s.journal.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeSake, Brand: "S", Date: "2025-04-19"})
	s.Require().Len(out.Unlocked, 1)
	s.Equal(AchievementDistinctTypes, out.Unlocked[0].ID)
	s.True(s.achievement(AchievementDistinctTypes).Unlocked)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_SevenConsecutiveDaysUnlockStreak() {
	for day := 10; day < 16; day++ {
		s.addRecord(models.DrinkTypeBeer, "X", 5, fmt.Sprintf("2025-04-%02d", day))
	}
	s.False(s.achievement(AchievementSevenDayRun).Unlocked)

	s.addRecord(models.DrinkTypeBeer, "X", 5, "2025-04-16")
	s.True(s.achievement(AchievementSevenDayRun).Unlocked)
}

func (s *JournalServiceTestSuite) TestAddDrinkRecord_CustomRules() {
	svc, err := New(&Config{
		Catalog:       s.catalog,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Rules:         []AchievementRule{DistinctTypesRule{Min: 1}},
	})
	s.Require().NoError(err)

	out := svc.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeBeer, Brand: "X"})
	s.Require().Len(out.Unlocked, 1)
	s.Equal(AchievementDistinctTypes, out.Unlocked[0].ID)
}

// UpdateDrinkRecord

func (s *JournalServiceTestSuite) TestUpdateDrinkRecord_ChangesOnlySuppliedFields() {
	rec := s.addRecord(models.DrinkTypeBeer, "Tsingtao", 4.7, "2025-04-19")

	brand := "Yanjing"
	out := s.journal.UpdateDrinkRecord(&UpdateDrinkRecordInput{
		ID:    rec.ID,
		Patch: &models.DrinkRecordPatch{Brand: &brand},
	})

	s.True(out.Found)
	s.Equal("Yanjing", out.Record.Brand)
	s.Equal(4.7, out.Record.ABV)
	s.Equal(rec.CreatedAt, out.Record.CreatedAt)
	s.Equal(rec.ID, out.Record.ID)
}

func (s *JournalServiceTestSuite) TestUpdateDrinkRecord_MissingIsNoop() {
	s.addRecord(models.DrinkTypeBeer, "Tsingtao", 4.7, "2025-04-19")
	before := s.journal.ListDrinkRecords()

	brand := "ghost"
	out := s.journal.UpdateDrinkRecord(&UpdateDrinkRecordInput{
		ID:    "missing",
		Patch: &models.DrinkRecordPatch{Brand: &brand},
	})

	s.False(out.Found)
	s.Nil(out.Record)
	s.Equal(before, s.journal.ListDrinkRecords())
}

func (s *JournalServiceTestSuite) TestUpdateDrinkRecord_DoesNotEvaluateAchievements() {
	types := []models.DrinkType{models.DrinkTypeBeer, models.DrinkTypeWine, models.DrinkTypeBaijiu, models.DrinkTypeWhiskey, models.DrinkTypeWhiskey}
	var last *models.DrinkRecord
	for _, t := range types {
		last = s.addRecord(t, "X", 10, "2025-04-19")
	}

	sake := models.DrinkTypeSake
	s.journal.UpdateDrinkRecord(&UpdateDrinkRecordInput{ID: last.ID, Patch: &models.DrinkRecordPatch{Type: &sake}})
	s.False(s.achievement(AchievementDistinctTypes).Unlocked)

	out := s.journal.EvaluateAchievements()
	s.Require().Len(out.Unlocked, 1)
	s.True(s.achievement(AchievementDistinctTypes).Unlocked)
}

// DeleteDrinkRecord

func (s *JournalServiceTestSuite) TestDeleteDrinkRecord_KeepsAchievements() {
	rec := s.addRecord(models.DrinkTypeBeer, "X", 5, "2025-04-19")
	s.True(s.achievement(AchievementFirstRecord).Unlocked)

	out := s.journal.DeleteDrinkRecord(&DeleteDrinkRecordInput{ID: rec.ID})
	s.True(out.Found)
	s.Empty(s.journal.ListDrinkRecords())
	s.True(s.achievement(AchievementFirstRecord).Unlocked)

	again := s.journal.DeleteDrinkRecord(&DeleteDrinkRecordInput{ID: rec.ID})
	s.False(again.Found)
}

func (s *JournalServiceTestSuite) TestDeleteDrinkRecord_RemovesOnlyTarget() {
	a := s.addRecord(models.DrinkTypeBeer, "a", 5, "2025-04-19")
	b := s.addRecord(models.DrinkTypeBeer, "b", 5, "2025-04-19")
	c := s.addRecord(models.DrinkTypeBeer, "c", 5, "2025-04-19")

	s.journal.DeleteDrinkRecord(&DeleteDrinkRecordInput{ID: b.ID})

	records := s.journal.ListDrinkRecords()
	s.Require().Len(records, 2)
	s.Equal(c.ID, records[0].ID)
	s.Equal(a.ID, records[1].ID)

	s.False(s.journal.GetDrinkRecord(&GetDrinkRecordInput{ID: b.ID}).Found)
	s.True(s.journal.GetDrinkRecord(&GetDrinkRecordInput{ID: a.ID}).Found)
}

// GetFilteredRecords

func (s *JournalServiceTestSuite) seedFilterRecords() {
	s.addRecord(models.DrinkTypeBeer, "Tsingtao", 5, "2025-04-01")
	s.addRecord(models.DrinkTypeWhiskey, "Yamazaki", 43, "2025-04-10")
	s.addRecord(models.DrinkTypeBaijiu, "Moutai", 60, "2025-04-20")
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_NoPredicatesReturnsAllInOrder() {
	s.seedFilterRecords()

	out := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{Filter: &models.RecordFilter{}})
	s.Equal(s.journal.ListDrinkRecords(), out.Records)

	s.Equal(s.journal.ListDrinkRecords(), s.journal.GetFilteredRecords(nil).Records)
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_ByType() {
	s.seedFilterRecords()
	s.addRecord(models.DrinkTypeBeer, "Yanjing", 4, "2025-04-21")

	beer := models.DrinkTypeBeer
	out := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{Filter: &models.RecordFilter{Type: &beer}})

	s.Require().Len(out.Records, 2)
	for _, r := range out.Records {
		s.Equal(models.DrinkTypeBeer, r.Type)
	}
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_BrandIgnoresCase() {
	s.seedFilterRecords()

	out := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{Filter: &models.RecordFilter{Brand: "YAMA"}})
	s.Require().Len(out.Records, 1)
	s.Equal("Yamazaki", out.Records[0].Brand)
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_ABVRangeInclusive() {
	s.seedFilterRecords()

	out := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{
		Filter: &models.RecordFilter{ABVRange: &models.ABVRange{Min: 40, Max: 50}},
	})
	s.Require().Len(out.Records, 1)
	s.Equal(43.0, out.Records[0].ABV)

	edges := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{
		Filter: &models.RecordFilter{ABVRange: &models.ABVRange{Min: 5, Max: 43}},
	})
	s.Len(edges.Records, 2)
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_DateRangeInclusive() {
	s.seedFilterRecords()

	out := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{
		Filter: &models.RecordFilter{DateRange: &models.DateRange{From: "2025-04-01", To: "2025-04-10"}},
	})
	s.Len(out.Records, 2)

	openEnded := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{
		Filter: &models.RecordFilter{DateRange: &models.DateRange{From: "2025-04-10"}},
	})
	s.Len(openEnded.Records, 2)
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_PredicatesAreANDed() {
	s.seedFilterRecords()
	s.addRecord(models.DrinkTypeWhiskey, "Hibiki", 43, "2025-03-01")

	whiskey := models.DrinkTypeWhiskey
	out := s.journal.GetFilteredRecords(&GetFilteredRecordsInput{
		Filter: &models.RecordFilter{
			Type:      &whiskey,
			ABVRange:  &models.ABVRange{Min: 40, Max: 45},
			DateRange: &models.DateRange{From: "2025-04-01", To: "2025-04-30"},
		},
	})
	s.Require().Len(out.Records, 1)
	s.Equal("Yamazaki", out.Records[0].Brand)
}

func (s *JournalServiceTestSuite) TestGetFilteredRecords_ResultsAreCopies() {
	s.seedFilterRecords()

	out := s.journal.GetFilteredRecords(nil)
	out.Records[0].Brand = "mutated"

	s.NotEqual("mutated", s.journal.ListDrinkRecords()[0].Brand)
}

// GroupRecordsByDate

func (s *JournalServiceTestSuite) TestGroupRecordsByDate() {
	s.addRecord(models.DrinkTypeBeer, "a", 5, "2025-04-18")
	s.addRecord(models.DrinkTypeBeer, "b", 5, "2025-04-19")
	s.addRecord(models.DrinkTypeWine, "c", 12, "2025-04-18")

	out := s.journal.GroupRecordsByDate(&GroupRecordsByDateInput{})
	s.Require().Len(out.Groups, 2)
	s.Equal("2025-04-19", out.Groups[0].Date)
	s.Len(out.Groups[0].Records, 1)
	s.Equal("2025-04-18", out.Groups[1].Date)
	s.Require().Len(out.Groups[1].Records, 2)
	s.Equal("c", out.Groups[1].Records[0].Brand)

	wine := models.DrinkTypeWine
	filtered := s.journal.GroupRecordsByDate(&GroupRecordsByDateInput{Filter: &models.RecordFilter{Type: &wine}})
	s.Require().Len(filtered.Groups, 1)
	s.Equal("2025-04-18", filtered.Groups[0].Date)
}

// Venues

func (s *JournalServiceTestSuite) TestCheckInVenue_Toggles() {
	out := s.journal.CheckInVenue(&CheckInVenueInput{VenueID: "v1"})
	s.True(out.CheckedIn)
	s.True(s.journal.ListVenues()[0].CheckedIn)
	s.False(s.journal.ListVenues()[1].CheckedIn)

	out = s.journal.CheckInVenue(&CheckInVenueInput{VenueID: "v1"})
	s.False(out.CheckedIn)
	s.False(s.journal.ListVenues()[0].CheckedIn)
	s.Empty(s.journal.Snapshot().CheckedInVenueIDs)
}

func (s *JournalServiceTestSuite) TestCheckInVenue_VisitedCountsOnlyKnownVenues() {
	s.journal.CheckInVenue(&CheckInVenueInput{VenueID: "v2"})
	s.journal.CheckInVenue(&CheckInVenueInput{VenueID: "unknown"})

	s.Equal(1, s.journal.GetProfileSummary().VisitedVenues)
	s.Equal([]string{"unknown", "v2"}, s.journal.Snapshot().CheckedInVenueIDs)
}

// Articles

func (s *JournalServiceTestSuite) TestMarkArticleAsRead_Idempotent() {
	first := s.journal.MarkArticleAsRead(&MarkArticleAsReadInput{ArticleID: "a1"})
	s.False(first.AlreadyRead)
	s.Equal(1, s.journal.GetProfileSummary().ReadArticles)

	second := s.journal.MarkArticleAsRead(&MarkArticleAsReadInput{ArticleID: "a1"})
	s.True(second.AlreadyRead)
	s.Equal(1, s.journal.GetProfileSummary().ReadArticles)

	article := s.journal.GetArticle(&GetArticleInput{ID: "a1"})
	s.Require().True(article.Found)
	s.True(article.Article.Read)
	s.Equal(1250, article.Article.ReadCount)
}

func (s *JournalServiceTestSuite) TestListArticles_CategoryAndSearch() {
	whiskey := models.DrinkTypeWhiskey
	byCategory := s.journal.ListArticles(&ListArticlesInput{Category: &whiskey})
	s.Len(byCategory.Articles, 2)

	bySearch := s.journal.ListArticles(&ListArticlesInput{Search: "islay"})
	s.Require().Len(bySearch.Articles, 1)
	s.Equal("a3", bySearch.Articles[0].ID)

	none := s.journal.ListArticles(&ListArticlesInput{Category: &whiskey, Search: "history"})
	s.Empty(none.Articles)
}

func (s *JournalServiceTestSuite) TestRelatedArticles() {
	out := s.journal.RelatedArticles(&RelatedArticlesInput{ID: "a1"})
	s.Require().Len(out.Articles, 1)
	s.Equal("a3", out.Articles[0].ID)

	s.Empty(s.journal.RelatedArticles(&RelatedArticlesInput{ID: "a2"}).Articles)
	s.Empty(s.journal.RelatedArticles(&RelatedArticlesInput{ID: "missing"}).Articles)
}

func (s *JournalServiceTestSuite) TestGetArticle_Missing() {
	out := s.journal.GetArticle(&GetArticleInput{ID: "missing"})
	s.False(out.Found)
	s.Nil(out.Article)
}

// Achievements

func (s *JournalServiceTestSuite) TestUnlockAchievement_Monotonic() {
	first := s.journal.UnlockAchievement(&UnlockAchievementInput{AchievementID: "2"})
	s.True(first.Found)
	s.True(first.NewlyUnlocked)
	s.Require().NotNil(first.Achievement.UnlockedAt)

	second := s.journal.UnlockAchievement(&UnlockAchievementInput{AchievementID: "2"})
	s.True(second.Found)
	s.False(second.NewlyUnlocked)
	s.True(second.Achievement.Unlocked)
	s.Equal(*first.Achievement.UnlockedAt, *second.Achievement.UnlockedAt)
}

func (s *JournalServiceTestSuite) TestUnlockAchievement_UnknownIsNoop() {
	out := s.journal.UnlockAchievement(&UnlockAchievementInput{AchievementID: "99"})
	s.False(out.Found)
	s.Nil(out.Achievement)
	for _, a := range s.journal.ListAchievements() {
		s.False(a.Unlocked)
	}
}

func (s *JournalServiceTestSuite) TestEvaluateAchievements_NoRecordsUnlocksNothing() {
	out := s.journal.EvaluateAchievements()
	s.Empty(out.Unlocked)
	s.False(s.achievement(AchievementFirstRecord).Unlocked)
}

// Recommendation and view

func (s *JournalServiceTestSuite) TestSetDailyRecommendation_ReplacesWholesale() {
	rec := &models.DailyRecommendation{
		ID:     "custom",
		Drink:  models.RecommendedDrink{Name: "Negroni", Type: models.DrinkTypeCocktail, ABV: 24},
		Reason: "aperitivo hour",
		Date:   "2025-04-20",
	}
	s.journal.SetDailyRecommendation(&SetDailyRecommendationInput{Recommendation: rec})

	rec.Reason = "mutated after set"
	got := s.journal.DailyRecommendation()
	s.Require().NotNil(got)
	s.Equal("custom", got.ID)
	s.Equal("aperitivo hour", got.Reason)

	s.journal.SetDailyRecommendation(&SetDailyRecommendationInput{})
	s.Nil(s.journal.DailyRecommendation())
}

func (s *JournalServiceTestSuite) TestRotateDailyRecommendation() {
	s.mockPicker.EXPECT().Pick(2).Return(1)

	out := s.journal.RotateDailyRecommendation(&RotateDailyRecommendationInput{})
	s.True(out.Rotated)
	s.Equal("dassai-45", out.Recommendation.ID)
	s.Equal("2025-04-19", out.Recommendation.Date)
	s.Equal("dassai-45", s.journal.DailyRecommendation().ID)

	s.mockPicker.EXPECT().Pick(2).Return(0)
	dated := s.journal.RotateDailyRecommendation(&RotateDailyRecommendationInput{Date: "2025-05-01"})
	s.Equal("yamazaki-12", dated.Recommendation.ID)
	s.Equal("2025-05-01", dated.Recommendation.Date)
}

func (s *JournalServiceTestSuite) TestSetCurrentView() {
	s.journal.SetCurrentView(&SetCurrentViewInput{View: models.ViewModeCalendar})
	s.Equal(models.ViewModeCalendar, s.journal.CurrentView())

	s.journal.SetCurrentView(&SetCurrentViewInput{View: "grid"})
	s.Equal(models.ViewModeCalendar, s.journal.CurrentView())
}

// Profile and snapshots

func (s *JournalServiceTestSuite) TestGetProfileSummary() {
	s.addRecord(models.DrinkTypeBeer, "X", 5, "2025-04-19")
	s.addRecord(models.DrinkTypeWine, "Y", 12, "2025-04-19")
	s.journal.CheckInVenue(&CheckInVenueInput{VenueID: "v1"})
	s.journal.MarkArticleAsRead(&MarkArticleAsReadInput{ArticleID: "a2"})

	summary := s.journal.GetProfileSummary()
	s.Equal(&ProfileSummary{
		RecordCount:        2,
		EarnedAchievements: 1,
		TotalAchievements:  3,
		VisitedVenues:      1,
		ReadArticles:       1,
	}, summary)
}

func (s *JournalServiceTestSuite) TestSnapshotRestoreRoundTrip() {
	s.addRecord(models.DrinkTypeBeer, "X", 5, "2025-04-19")
	s.journal.CheckInVenue(&CheckInVenueInput{VenueID: "v1"})
	s.journal.MarkArticleAsRead(&MarkArticleAsReadInput{ArticleID: "a1"})
	s.journal.SetCurrentView(&SetCurrentViewInput{View: models.ViewModeCalendar})
	state := s.journal.Snapshot()

	fresh, err := New(&Config{Catalog: s.catalog, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)
	fresh.Restore(state)

	s.Equal(state, fresh.Snapshot())
	s.True(fresh.ListVenues()[0].CheckedIn)
	s.Equal(models.ViewModeCalendar, fresh.CurrentView())

	next := fresh.AddDrinkRecord(&AddDrinkRecordInput{Type: models.DrinkTypeWine, Brand: "Y"})
	s.NotEqual(state.Records[0].ID, next.Record.ID)
	s.Empty(next.Unlocked)
}

func (s *JournalServiceTestSuite) TestRestore_OlderSnapshotKeepsLaterUnlocks() {
	old := s.journal.Snapshot()

	out := s.journal.AddDrinkRecord(&AddDrinkRecordInput{
		Date:   "2025-04-19",
		Type:   models.DrinkTypeBeer,
		Brand:  "Tsingtao",
		ABV:    5,
		Volume: 500,
	})
	s.Require().Len(out.Unlocked, 1)
	unlockedAt := *s.achievement("1").UnlockedAt

	s.journal.Restore(old)

	s.Empty(s.journal.ListDrinkRecords())
	first := s.achievement("1")
	s.True(first.Unlocked)
	s.Require().NotNil(first.UnlockedAt)
	s.Equal(unlockedAt, *first.UnlockedAt)
	s.Equal(1, s.journal.GetProfileSummary().EarnedAchievements)
}

func (s *JournalServiceTestSuite) TestRestore_KeepsEarliestUnlockTime() {
	s.addRecord(models.DrinkTypeBeer, "Tsingtao", 5, "2025-04-19")
	earlier := s.testTime.Add(-48 * time.Hour)

	s.journal.Restore(&models.JournalState{
		Achievements: []*models.Achievement{{ID: "1", Unlocked: true, UnlockedAt: &earlier}},
	})

	s.Equal(earlier, *s.achievement("1").UnlockedAt)
}

func (s *JournalServiceTestSuite) TestRestore_DropsDuplicatesAndUnknownAchievements() {
	now := s.testTime
	s.journal.Restore(&models.JournalState{
		Records: []*models.DrinkRecord{
			{ID: "dup", Brand: "first"},
			{ID: "dup", Brand: "second"},
		},
		Achievements: []*models.Achievement{
			{ID: "3", Unlocked: true, UnlockedAt: &now},
			{ID: "ghost", Unlocked: true},
		},
		CurrentView: "bogus",
	})

	records := s.journal.ListDrinkRecords()
	s.Require().Len(records, 1)
	s.Equal("first", records[0].Brand)
	s.Len(s.journal.ListAchievements(), 3)
	s.True(s.achievement("3").Unlocked)
	s.Equal(models.ViewModeList, s.journal.CurrentView())
}
