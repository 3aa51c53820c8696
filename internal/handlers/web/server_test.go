package web_test

import (
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sketchphone/internal/handlers/web"
	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/KirkDiggler/sketchphone/internal/services/game"
	gameMocks "github.com/KirkDiggler/sketchphone/internal/services/game/mocks"
)

type WebServerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockGameService *gameMocks.MockService
	handler         http.Handler
}

func (s *WebServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.ctrl)

	server, err := web.New(&web.Config{
		Bind:        "127.0.0.1",
		Port:        8080,
		GameService: s.mockGameService,
	})
	s.Require().NoError(err)
	s.handler = server.Handler()
}

func (s *WebServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WebServerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *WebServerTestSuite) TestNewValidatesConfig() {
	_, err := web.New(nil)
	s.Error(err)

	_, err = web.New(&web.Config{Port: 8080})
	s.Error(err)

	_, err = web.New(&web.Config{Port: 0, GameService: s.mockGameService})
	s.Error(err)
}

func (s *WebServerTestSuite) TestHealthCheck() {
	rec := s.get("/healthz")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Ok\n", rec.Body.String())
}

func (s *WebServerTestSuite) TestStatus() {
	s.mockGameService.EXPECT().
		GetStatus(gomock.Any(), &game.GetStatusInput{GameID: "abcd"}).
		Return(&game.GetStatusOutput{
			Game: &models.Game{
				ID:        "ABCD",
				Status:    models.GameStatusInProgress,
				PlayerIDs: []string{"p1", "p2", "p3"},
			},
			Round:       1,
			TotalRounds: 3,
			Pending:     2,
		}, nil)

	rec := s.get("/games/abcd")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("ABCD", body["code"])
	s.Equal("IN_PROGRESS", body["status"])
	s.Equal(float64(3), body["players"])
	s.Equal(float64(2), body["round"])
	s.Equal(float64(2), body["pending"])
}

func (s *WebServerTestSuite) TestStatusErrors() {
	s.mockGameService.EXPECT().
		GetStatus(gomock.Any(), &game.GetStatusInput{GameID: "ZZZZ"}).
		Return(nil, game.ErrGameNotFound)

	rec := s.get("/games/ZZZZ")
	s.Equal(http.StatusNotFound, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("game_not_found", body["code"])

	s.mockGameService.EXPECT().
		GetStatus(gomock.Any(), &game.GetStatusInput{GameID: "ABCD"}).
		Return(nil, errors.New("redis: connection refused"))

	rec = s.get("/games/ABCD")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "redis")
}

func (s *WebServerTestSuite) TestGallery() {
	s.mockGameService.EXPECT().
		GetGallery(gomock.Any(), &game.GetGalleryInput{GameID: "ABCD"}).
		Return(&game.GetGalleryOutput{
			Game: &models.Game{ID: "ABCD", Status: models.GameStatusCompleted, PlayerIDs: []string{"p1", "p2"}},
			Chains: []*game.GalleryChain{
				{
					OriginID:   "p1",
					OriginName: "Ann",
					Steps: []*game.GalleryStep{
						{Round: 0, PlayerID: "p1", PlayerName: "Ann", Kind: models.TurnKindWrite, Payload: models.Payload{Text: "a cat"}},
						{Round: 1, PlayerID: "p2", PlayerName: "Bob", Kind: models.TurnKindDraw, Payload: models.Payload{MediaURL: "https://cdn.example.com/cat.png"}},
					},
				},
			},
		}, nil)

	rec := s.get("/gallery/ABCD")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Code   string `json:"code"`
		Chains []struct {
			Origin string `json:"origin"`
			Steps  []struct {
				Round    int    `json:"round"`
				Player   string `json:"player"`
				Kind     string `json:"kind"`
				Text     string `json:"text"`
				ImageURL string `json:"image_url"`
			} `json:"steps"`
		} `json:"chains"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("ABCD", body.Code)
	s.Require().Len(body.Chains, 1)
	s.Equal("Ann", body.Chains[0].Origin)
	s.Require().Len(body.Chains[0].Steps, 2)
	s.Equal(1, body.Chains[0].Steps[0].Round)
	s.Equal("a cat", body.Chains[0].Steps[0].Text)
	s.Equal("DRAW", body.Chains[0].Steps[1].Kind)
	s.Equal("https://cdn.example.com/cat.png", body.Chains[0].Steps[1].ImageURL)
}

func (s *WebServerTestSuite) TestGalleryNotFinished() {
	s.mockGameService.EXPECT().
		GetGallery(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrGameNotFinished)

	rec := s.get("/gallery/ABCD")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *WebServerTestSuite) TestQR() {
	s.mockGameService.EXPECT().
		GetStatus(gomock.Any(), &game.GetStatusInput{GameID: "ABCD"}).
		Return(&game.GetStatusOutput{
			Game: &models.Game{ID: "ABCD", Status: models.GameStatusCreated, PlayerIDs: []string{"p1"}},
		}, nil)

	rec := s.get("/games/ABCD/qr")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get("Content-Type"))

	_, err := png.Decode(rec.Body)
	s.NoError(err)
}

func (s *WebServerTestSuite) TestQRAfterStart() {
	s.mockGameService.EXPECT().
		GetStatus(gomock.Any(), gomock.Any()).
		Return(&game.GetStatusOutput{
			Game: &models.Game{ID: "ABCD", Status: models.GameStatusInProgress, PlayerIDs: []string{"p1", "p2"}},
		}, nil)

	rec := s.get("/games/ABCD/qr")
	s.Equal(http.StatusConflict, rec.Code)
}

func TestWebServerSuite(t *testing.T) {
	suite.Run(t, new(WebServerTestSuite))
}
