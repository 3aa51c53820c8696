package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/apperrors"
	"github.com/KirkDiggler/sketchphone/internal/common/clock/mocks"
	codeMocks "github.com/KirkDiggler/sketchphone/internal/common/gamecode/mocks"
	uuidMocks "github.com/KirkDiggler/sketchphone/internal/common/uuid/mocks"
	"github.com/KirkDiggler/sketchphone/internal/models"
	gameRepo "github.com/KirkDiggler/sketchphone/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/sketchphone/internal/repositories/game/mocks"
	playerRepo "github.com/KirkDiggler/sketchphone/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/sketchphone/internal/repositories/player/mocks"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
	roundMocks "github.com/KirkDiggler/sketchphone/internal/repositories/round/mocks"
	plannerMocks "github.com/KirkDiggler/sketchphone/internal/rotation/mocks"
	"github.com/KirkDiggler/sketchphone/internal/services/ledger"
	ledgerMocks "github.com/KirkDiggler/sketchphone/internal/services/ledger/mocks"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockRoundRepo  *roundMocks.MockRepository
	mockLedger     *ledgerMocks.MockService
	mockPlanner    *plannerMocks.MockPlanner
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockCodes      *codeMocks.MockGenerator
	gameService    Service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string
	testHostID string
	testGuest  string

	// Reusable test fixtures
	createdGame  *models.Game
	startedGame  *models.Game
	hostPlayer   *models.Player
	testRotation models.Rotation
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockRoundRepo = roundMocks.NewMockRepository(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockService(s.mockCtrl)
	s.mockPlanner = plannerMocks.NewMockPlanner(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockCodes = codeMocks.NewMockGenerator(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "ABCD"
	s.testHostID = "host-id"
	s.testGuest = "guest-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("entry-id").AnyTimes()

	s.createdGame = &models.Game{
		ID:        s.testGameID,
		HostID:    s.testHostID,
		Status:    models.GameStatusCreated,
		PlayerIDs: []string{s.testHostID, s.testGuest},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	s.testRotation = models.Rotation{
		s.testHostID: {s.testGuest},
		s.testGuest:  {s.testHostID},
	}

	s.startedGame = &models.Game{
		ID:           s.testGameID,
		HostID:       s.testHostID,
		Status:       models.GameStatusInProgress,
		PlayerIDs:    []string{s.testHostID, s.testGuest},
		CurrentRound: 1,
		Rotation:     s.testRotation,
		CreatedAt:    s.testTime,
		UpdatedAt:    s.testTime,
	}

	s.hostPlayer = &models.Player{
		ID:       s.testHostID,
		Name:     "Host",
		GameID:   s.testGameID,
		IsHost:   true,
		Status:   models.PlayerStatusActive,
		JoinedAt: s.testTime,
	}

	messenger, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	gameService, err := New(&Config{
		MaxPlayers:      3,
		MaxCodeAttempts: 3,
		GalleryURL:      "https://sketch.example/gallery/",
		GameRepo:        s.mockGameRepo,
		PlayerRepo:      s.mockPlayerRepo,
		RoundRepo:       s.mockRoundRepo,
		Ledger:          s.mockLedger,
		Planner:         s.mockPlanner,
		Messenger:       messenger,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
		CodeGenerator:   s.mockCodes,
	})
	s.Require().NoError(err)
	s.gameService = gameService
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilGameRepo)

	_, err = New(&Config{GameRepo: s.mockGameRepo, PlayerRepo: s.mockPlayerRepo, RoundRepo: s.mockRoundRepo})
	s.ErrorIs(err, ErrNilLedger)
}

func (s *GameServiceTestSuite) TestCreateGameRetriesOnCodeCollision() {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: s.testHostID}).
		Return(nil, playerRepo.ErrPlayerNotFound)

	gomock.InOrder(
		s.mockCodes.EXPECT().NewCode().Return("TAKN"),
		s.mockCodes.EXPECT().NewCode().Return("FREE"),
	)

	s.mockGameRepo.EXPECT().
		CreateGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.CreateGameInput) error {
			if input.Game.ID == "TAKN" {
				return gameRepo.ErrGameExists
			}
			return nil
		}).
		Times(2)

	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, &playerRepo.SavePlayerInput{Player: &models.Player{
			ID:       s.testHostID,
			Name:     "Host",
			GameID:   "FREE",
			IsHost:   true,
			Status:   models.PlayerStatusActive,
			JoinedAt: s.testTime,
		}}).
		Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{HostID: s.testHostID, HostName: "Host"})
	s.Require().NoError(err)
	s.Equal("FREE", output.Game.ID)
	s.Equal(models.GameStatusCreated, output.Game.Status)
	s.Equal([]string{s.testHostID}, output.Game.PlayerIDs)
	s.Equal(0, output.Game.CurrentRound)
	s.True(output.Player.IsHost)
}

func (s *GameServiceTestSuite) TestCreateGameGivesUp() {
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(nil, playerRepo.ErrPlayerNotFound)
	s.mockCodes.EXPECT().NewCode().Return("TAKN").Times(3)
	s.mockGameRepo.EXPECT().CreateGame(s.ctx, gomock.Any()).Return(gameRepo.ErrGameExists).Times(3)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{HostID: s.testHostID})
	s.ErrorIs(err, ErrCodeSpaceExhausted)
}

func (s *GameServiceTestSuite) TestCreateGameWhileInAnotherGame() {
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer, nil)
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(s.startedGame, nil)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{HostID: s.testHostID})
	s.ErrorIs(err, ErrPlayerInAnotherGame)
	s.ErrorIs(err, apperrors.ErrStateConflict)
}

func (s *GameServiceTestSuite) TestCreateGameAfterPreviousGameFinished() {
	finished := *s.startedGame
	finished.Status = models.GameStatusCompleted

	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer, nil)
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(&finished, nil)
	s.mockCodes.EXPECT().NewCode().Return("NEWW")
	s.mockGameRepo.EXPECT().CreateGame(s.ctx, gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().SavePlayer(s.ctx, gomock.Any()).Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{HostID: s.testHostID, HostName: "Host"})
	s.Require().NoError(err)
	s.Equal("NEWW", output.Game.ID)
}

func (s *GameServiceTestSuite) TestJoinGameMalformedCode() {
	for _, code := range []string{"", "AB", "ABCDE", "AB1D", "ABIO"} {
		_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: code, PlayerID: s.testGuest})
		s.ErrorIs(err, ErrMalformedGameCode, "code %q", code)
		s.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (s *GameServiceTestSuite) TestJoinGameNormalizesCode() {
	lobby := &models.Game{
		ID:        s.testGameID,
		HostID:    s.testHostID,
		Status:    models.GameStatusCreated,
		PlayerIDs: []string{s.testHostID},
	}

	s.mockGameRepo.EXPECT().GetGame(s.ctx, &gameRepo.GetGameInput{GameID: "ABCD"}).Return(lobby, nil)
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: s.testGuest}).Return(nil, playerRepo.ErrPlayerNotFound)
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal([]string{s.testHostID, s.testGuest}, input.Game.PlayerIDs)
			return nil
		})
	s.mockPlayerRepo.EXPECT().SavePlayer(s.ctx, gomock.Any()).Return(nil)

	output, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: " abcd ", PlayerID: s.testGuest, PlayerName: "Guest"})
	s.Require().NoError(err)
	s.False(output.AlreadyJoined)
	s.Equal("Guest", output.Player.Name)
	s.False(output.Player.IsHost)
}

func (s *GameServiceTestSuite) TestJoinGameNotFound() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: "ZZZZ", PlayerID: s.testGuest})
	s.ErrorIs(err, ErrGameNotFound)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *GameServiceTestSuite) TestJoinGameAlreadyStarted() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: s.testGameID, PlayerID: "late-id"})
	s.ErrorIs(err, ErrGameAlreadyStarted)
}

func (s *GameServiceTestSuite) TestJoinGameTwice() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.createdGame, nil)
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(&models.Player{ID: s.testGuest, GameID: s.testGameID}, nil)

	output, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: s.testGameID, PlayerID: s.testGuest})
	s.Require().NoError(err)
	s.True(output.AlreadyJoined)
}

func (s *GameServiceTestSuite) TestJoinGameFull() {
	full := *s.createdGame
	full.PlayerIDs = []string{"a", "b", "c"}

	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(&full, nil)
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(nil, playerRepo.ErrPlayerNotFound)

	_, err := s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: s.testGameID, PlayerID: "d"})
	s.ErrorIs(err, ErrGameFull)
}

func (s *GameServiceTestSuite) TestStartGameNotHost() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.createdGame, nil)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID, PlayerID: s.testGuest})
	s.ErrorIs(err, ErrNotHost)
}

func (s *GameServiceTestSuite) TestStartGameInsufficientPlayers() {
	alone := *s.createdGame
	alone.PlayerIDs = []string{s.testHostID}

	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(&alone, nil)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID, PlayerID: s.testHostID})
	s.ErrorIs(err, ErrInsufficientPlayers)
}

func (s *GameServiceTestSuite) TestStartGameAlreadyStartedIsNoop() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID, PlayerID: s.testHostID})
	s.Require().NoError(err)
	s.True(output.AlreadyStarted)
	s.Empty(output.Effects)
}

func (s *GameServiceTestSuite) TestStartGame() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.createdGame, nil)
	s.mockPlanner.EXPECT().Plan([]string{s.testHostID, s.testGuest}).Return(s.testRotation, nil)
	s.mockRoundRepo.EXPECT().
		CreateEntries(s.ctx, &roundRepo.CreateEntriesInput{Entries: []*models.RoundEntry{
			{ID: "entry-id", GameID: s.testGameID, Round: 0, PlayerID: s.testHostID, Kind: models.TurnKindWrite, PromptedAt: s.testTime},
			{ID: "entry-id", GameID: s.testGameID, Round: 0, PlayerID: s.testGuest, Kind: models.TurnKindWrite, PromptedAt: s.testTime},
		}}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(models.GameStatusInProgress, input.Game.Status)
			s.Equal(s.testRotation, input.Game.Rotation)
			return nil
		})

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID, PlayerID: s.testHostID})
	s.Require().NoError(err)
	s.False(output.AlreadyStarted)
	s.Require().Len(output.Effects, 2)
	for i, effect := range output.Effects {
		s.Equal(models.EffectKindPrompt, effect.Kind)
		s.Equal(models.TurnKindWrite, effect.TurnKind)
		s.Equal(s.createdGame.PlayerIDs[i], effect.RecipientID)
		s.Equal("FIRST ROUND: Respond with a word or phrase.", effect.Text)
	}
}

func (s *GameServiceTestSuite) TestStartGamePlannerFailure() {
	boom := errors.New("no entropy")
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.createdGame, nil)
	s.mockPlanner.EXPECT().Plan(gomock.Any()).Return(nil, boom)

	_, err := s.gameService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID, PlayerID: s.testHostID})
	s.ErrorIs(err, boom)
}

func (s *GameServiceTestSuite) TestSubmitRejectsBadPayloadsWithoutLookup() {
	_, err := s.gameService.Submit(s.ctx, &SubmitInput{
		GameID:   s.testGameID,
		PlayerID: s.testGuest,
		Payload:  models.Payload{Text: "a cat", MediaURL: "https://cdn.example/cat.png"},
	})
	s.ErrorIs(err, ErrAmbiguousPayload)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.gameService.Submit(s.ctx, &SubmitInput{GameID: s.testGameID, PlayerID: s.testGuest})
	s.ErrorIs(err, ErrEmptyPayload)
}

func (s *GameServiceTestSuite) TestSubmitWrongKind() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockRoundRepo.EXPECT().
		GetEntry(s.ctx, &roundRepo.GetEntryInput{GameID: s.testGameID, Round: 1, PlayerID: s.testGuest}).
		Return(&models.RoundEntry{GameID: s.testGameID, Round: 1, PlayerID: s.testGuest, Kind: models.TurnKindDraw}, nil)

	_, err := s.gameService.Submit(s.ctx, &SubmitInput{
		GameID:   s.testGameID,
		PlayerID: s.testGuest,
		Payload:  models.Payload{Text: "I can't draw"},
	})
	s.ErrorIs(err, ErrWrongPayloadKind)
	s.Contains(err.Error(), "image")
}

func (s *GameServiceTestSuite) TestSubmitAlreadyAnswered() {
	submittedAt := s.testTime
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockRoundRepo.EXPECT().GetEntry(s.ctx, gomock.Any()).Return(&models.RoundEntry{
		Kind:        models.TurnKindDraw,
		Payload:     models.Payload{MediaURL: "https://cdn.example/1.png"},
		SubmittedAt: &submittedAt,
	}, nil)
	s.mockLedger.EXPECT().
		IsRoundComplete(s.ctx, &ledger.IsRoundCompleteInput{Game: s.startedGame, Round: 1}).
		Return(&ledger.IsRoundCompleteOutput{Complete: false}, nil)

	_, err := s.gameService.Submit(s.ctx, &SubmitInput{
		GameID:   s.testGameID,
		PlayerID: s.testGuest,
		Payload:  models.Payload{MediaURL: "https://cdn.example/2.png"},
	})
	s.ErrorIs(err, ErrNoPendingPrompt)
}

func (s *GameServiceTestSuite) TestSubmitLedgerFailurePropagates() {
	boom := errors.New("connection reset")
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockRoundRepo.EXPECT().GetEntry(s.ctx, gomock.Any()).Return(&models.RoundEntry{Kind: models.TurnKindDraw}, nil)
	s.mockLedger.EXPECT().RecordSubmission(s.ctx, gomock.Any()).Return(nil, boom)

	_, err := s.gameService.Submit(s.ctx, &SubmitInput{
		GameID:   s.testGameID,
		PlayerID: s.testGuest,
		Payload:  models.Payload{MediaURL: "https://cdn.example/2.png"},
	})
	s.ErrorIs(err, boom)
}

func (s *GameServiceTestSuite) TestSubmitNotifiesHostOfProgress() {
	entry := &models.RoundEntry{PlayerID: s.testGuest, Kind: models.TurnKindDraw}
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockRoundRepo.EXPECT().GetEntry(s.ctx, gomock.Any()).Return(entry, nil)
	s.mockLedger.EXPECT().RecordSubmission(s.ctx, gomock.Any()).Return(&ledger.RecordSubmissionOutput{Entry: entry}, nil)
	s.mockLedger.EXPECT().IsRoundComplete(s.ctx, gomock.Any()).Return(&ledger.IsRoundCompleteOutput{Complete: false}, nil)
	s.mockLedger.EXPECT().PendingCount(s.ctx, gomock.Any()).Return(&ledger.PendingCountOutput{Count: 1, PlayerIDs: []string{s.testHostID}}, nil)
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(&models.Player{ID: s.testGuest, Name: "Guest"}, nil)

	output, err := s.gameService.Submit(s.ctx, &SubmitInput{
		GameID:   s.testGameID,
		PlayerID: s.testGuest,
		Payload:  models.Payload{MediaURL: "https://cdn.example/2.png"},
	})
	s.Require().NoError(err)
	s.False(output.RoundClosed)
	s.Equal(1, output.Remaining)
	s.Require().Len(output.Effects, 1)
	s.Equal(models.EffectKindProgress, output.Effects[0].Kind)
	s.Equal(s.testHostID, output.Effects[0].RecipientID)
	s.Equal("Guest responded. On round 2 of 2, waiting on 1 player to send responses.", output.Effects[0].Text)
}

func (s *GameServiceTestSuite) TestQuitFinishedGame() {
	finished := *s.startedGame
	finished.Status = models.GameStatusAbandoned
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(&finished, nil)

	_, err := s.gameService.Quit(s.ctx, &QuitInput{GameID: s.testGameID, PlayerID: s.testGuest})
	s.ErrorIs(err, ErrGameOver)
}

func (s *GameServiceTestSuite) TestQuitNonMember() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)

	_, err := s.gameService.Quit(s.ctx, &QuitInput{GameID: s.testGameID, PlayerID: "stranger"})
	s.ErrorIs(err, ErrNotInGame)
}

func (s *GameServiceTestSuite) TestGalleryRequiresCompletedGame() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)

	_, err := s.gameService.GetGallery(s.ctx, &GetGalleryInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotFinished)
}

func (s *GameServiceTestSuite) TestFindActiveGameWithoutPlayer() {
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(nil, playerRepo.ErrPlayerNotFound)

	_, err := s.gameService.FindActiveGame(s.ctx, &FindActiveGameInput{PlayerID: "nobody"})
	s.ErrorIs(err, ErrNotPlaying)
}

func (s *GameServiceTestSuite) TestSubmitClosesStalledFinalRound() {
	submittedAt := s.testTime
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockRoundRepo.EXPECT().GetEntry(s.ctx, gomock.Any()).Return(&models.RoundEntry{
		Kind:        models.TurnKindDraw,
		Payload:     models.Payload{MediaURL: "https://cdn.example/1.png"},
		SubmittedAt: &submittedAt,
	}, nil)
	s.mockLedger.EXPECT().IsRoundComplete(s.ctx, gomock.Any()).Return(&ledger.IsRoundCompleteOutput{Complete: true}, nil)
	s.mockLedger.EXPECT().IsGameComplete(s.ctx, gomock.Any()).Return(&ledger.IsGameCompleteOutput{Complete: true}, nil)
	s.mockRoundRepo.EXPECT().
		ExpireRounds(s.ctx, &roundRepo.ExpireRoundsInput{GameID: s.testGameID, Rounds: 2, TTL: DefaultRetention}).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		ExpireGamePlayers(s.ctx, &playerRepo.ExpireGamePlayersInput{GameID: s.testGameID, TTL: DefaultRetention}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(models.GameStatusCompleted, input.Game.Status)
			s.Equal(DefaultRetention, input.TTL)
			return nil
		})

	output, err := s.gameService.Submit(s.ctx, &SubmitInput{
		GameID:   s.testGameID,
		PlayerID: s.testGuest,
		Payload:  models.Payload{MediaURL: "https://cdn.example/2.png"},
	})
	s.Require().NoError(err)
	s.True(output.Resumed)
	s.True(output.RoundClosed)
	s.True(output.GameCompleted)
	s.Nil(output.Entry)
	s.Require().Len(output.Effects, 2)
	for _, effect := range output.Effects {
		s.Equal(models.EffectKindGallery, effect.Kind)
	}
}

func (s *GameServiceTestSuite) TestRepeatPromptWithNothingPending() {
	submittedAt := s.testTime
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockRoundRepo.EXPECT().GetEntry(s.ctx, gomock.Any()).Return(&models.RoundEntry{
		Kind:        models.TurnKindDraw,
		SubmittedAt: &submittedAt,
	}, nil)
	s.mockLedger.EXPECT().IsRoundComplete(s.ctx, gomock.Any()).Return(&ledger.IsRoundCompleteOutput{Complete: false}, nil)

	_, err := s.gameService.RepeatPrompt(s.ctx, &RepeatPromptInput{GameID: s.testGameID, PlayerID: s.testGuest})
	s.ErrorIs(err, ErrNoPendingPrompt)
}

func (s *GameServiceTestSuite) TestQuitSavesPlayerBeforeGame() {
	boom := errors.New("connection reset")
	guest := &models.Player{ID: s.testGuest, Name: "Guest", GameID: s.testGameID, Status: models.PlayerStatusActive}

	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.startedGame, nil)
	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(guest, nil)
	gomock.InOrder(
		s.mockPlayerRepo.EXPECT().
			SavePlayer(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
				s.Equal(models.PlayerStatusQuit, input.Player.Status)
				return nil
			}),
		s.mockRoundRepo.EXPECT().ExpireRounds(s.ctx, gomock.Any()).Return(nil),
		s.mockPlayerRepo.EXPECT().ExpireGamePlayers(s.ctx, gomock.Any()).Return(nil),
		s.mockGameRepo.EXPECT().
			SaveGame(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
				s.Equal(models.GameStatusAbandoned, input.Game.Status)
				s.Equal(DefaultRetention, input.TTL)
				return boom
			}),
	)

	_, err := s.gameService.Quit(s.ctx, &QuitInput{GameID: s.testGameID, PlayerID: s.testGuest})
	s.ErrorIs(err, boom)
}

func (s *GameServiceTestSuite) TestFindActiveGameIgnoresReusedCode() {
	reused := *s.createdGame
	reused.HostID = "someone-else"
	reused.PlayerIDs = []string{"someone-else"}

	s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer, nil)
	s.mockGameRepo.EXPECT().GetGame(s.ctx, &gameRepo.GetGameInput{GameID: s.testGameID}).Return(&reused, nil)

	_, err := s.gameService.FindActiveGame(s.ctx, &FindActiveGameInput{PlayerID: s.testHostID})
	s.ErrorIs(err, ErrNotPlaying)
}
