package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pourlog/internal/config"
	"github.com/KirkDiggler/pourlog/internal/logging"
	"github.com/KirkDiggler/pourlog/internal/models"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

type AppTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	cfg       *config.Config
}

func (s *AppTestSuite) SetupTest() {
	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)

	s.cfg = &config.Config{
		ListenAddr:    "127.0.0.1:0",
		GinMode:       "test",
		SnapshotOwner: "default",
	}
}

func (s *AppTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *AppTestSuite) TestNewWithoutRedis() {
	a, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)
	defer a.Close()

	s.Nil(a.Backup)
	s.NotEmpty(a.Journal.ListVenues())
	s.NoError(a.Restore(context.Background()))
	s.NoError(a.Save(context.Background()))
}

func (s *AppTestSuite) TestNewRequiresArguments() {
	_, err := New(nil, logging.Discard())
	s.Error(err)

	_, err = New(s.cfg, nil)
	s.Error(err)
}

func (s *AppTestSuite) TestNewBadCatalog() {
	s.cfg.CatalogPath = filepath.Join(s.T().TempDir(), "missing.yaml")

	_, err := New(s.cfg, logging.Discard())
	s.Error(err)
}

func (s *AppTestSuite) TestNewUnreachableRedis() {
	addr := s.miniRedis.Addr()
	s.miniRedis.Close()
	s.cfg.RedisAddr = addr

	_, err := New(s.cfg, logging.Discard())
	s.Error(err)
}

func (s *AppTestSuite) TestSaveThenRestore() {
	s.cfg.RedisAddr = s.miniRedis.Addr()
	ctx := context.Background()

	first, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)
	defer first.Close()
	s.Require().NotNil(first.Backup)

	first.Journal.AddDrinkRecord(&journal.AddDrinkRecordInput{
		Date:   "2025-04-19",
		Type:   models.DrinkTypeSake,
		Brand:  "Dassai 45",
		ABV:    16,
		Volume: 180,
	})
	s.Require().NoError(first.Save(ctx))

	second, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)
	defer second.Close()

	s.Empty(second.Journal.ListDrinkRecords())
	s.Require().NoError(second.Restore(ctx))

	records := second.Journal.ListDrinkRecords()
	s.Require().Len(records, 1)
	s.Equal("Dassai 45", records[0].Brand)
}

func (s *AppTestSuite) TestHandlerServesAPI() {
	a, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)

	h, err := a.Handler()
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/venues", nil))
	s.Equal(http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/snapshot", strings.NewReader("")))
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AppTestSuite) TestCustomCatalog() {
	path := filepath.Join(s.T().TempDir(), "catalog.yaml")
	data, err := os.ReadFile("../catalog/default_catalog.yaml")
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(path, data, 0o600))
	s.cfg.CatalogPath = path

	a, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)
	s.NotEmpty(a.Journal.ListAchievements())
}

func (s *AppTestSuite) TestServeStopsOnCancel() {
	a, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.NoError(a.Serve(ctx))
}

func (s *AppTestSuite) TestRunBotRequiresToken() {
	a, err := New(s.cfg, logging.Discard())
	s.Require().NoError(err)

	s.Error(a.RunBot(context.Background()))
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
