package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/clock"
	"github.com/KirkDiggler/sketchphone/internal/common/gamecode"
	"github.com/KirkDiggler/sketchphone/internal/common/keylock"
	"github.com/KirkDiggler/sketchphone/internal/common/uuid"
	"github.com/KirkDiggler/sketchphone/internal/models"
	gameRepo "github.com/KirkDiggler/sketchphone/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/sketchphone/internal/repositories/player"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
	"github.com/KirkDiggler/sketchphone/internal/rotation"
	"github.com/KirkDiggler/sketchphone/internal/services/ledger"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	maxPlayers      int
	maxCodeAttempts int
	galleryURL      string
	retention       time.Duration

	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	roundRepo  roundRepo.Repository

	ledger        ledger.Service
	planner       rotation.Planner
	messenger     messaging.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
	codeGenerator gamecode.Generator
	locks         *keylock.Locker
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.GameRepo == nil:
		return nil, ErrNilGameRepo
	case cfg.PlayerRepo == nil:
		return nil, ErrNilPlayerRepo
	case cfg.RoundRepo == nil:
		return nil, ErrNilRoundRepo
	case cfg.Ledger == nil:
		return nil, ErrNilLedger
	case cfg.Planner == nil:
		return nil, ErrNilPlanner
	case cfg.Messenger == nil:
		return nil, ErrNilMessenger
	case cfg.Clock == nil:
		return nil, ErrNilClock
	case cfg.UUIDGenerator == nil:
		return nil, ErrNilUUIDGenerator
	case cfg.CodeGenerator == nil:
		return nil, ErrNilCodeGenerator
	}

	maxCodeAttempts := cfg.MaxCodeAttempts
	if maxCodeAttempts <= 0 {
		maxCodeAttempts = DefaultMaxCodeAttempts
	}

	retention := cfg.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	locks := cfg.Locker
	if locks == nil {
		locks = keylock.New()
	}

	return &service{
		maxPlayers:      cfg.MaxPlayers,
		maxCodeAttempts: maxCodeAttempts,
		galleryURL:      cfg.GalleryURL,
		retention:       retention,
		gameRepo:        cfg.GameRepo,
		playerRepo:      cfg.PlayerRepo,
		roundRepo:       cfg.RoundRepo,
		ledger:          cfg.Ledger,
		planner:         cfg.Planner,
		messenger:       cfg.Messenger,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		codeGenerator:   cfg.CodeGenerator,
		locks:           locks,
	}, nil
}

func gameLockKey(gameID string) string {
	return "game:" + gameID
}

func playerLockKey(playerID string) string {
	return "player:" + playerID
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// liveGame returns the player's record, if any, and the unfinished game they are active in, if any
func (s *service) liveGame(ctx context.Context, playerID string) (*models.Player, *models.Game, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.Status != models.PlayerStatusActive || player.GameID == "" {
		return player, nil, nil
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: player.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return player, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	// A code freed by retention may now belong to someone else's game
	if !game.HasPlayer(playerID) || game.Status.IsTerminal() {
		return player, nil, nil
	}

	return player, game, nil
}

func (s *service) playerName(ctx context.Context, playerID string) (string, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return playerID, nil
		}
		return "", fmt.Errorf("failed to get player: %w", err)
	}
	if player.Name == "" {
		return playerID, nil
	}
	return player.Name, nil
}

// CreateGame creates a game under a fresh code, with the host as its first player
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.HostID == "" {
		return nil, errors.New("host ID is required")
	}

	unlock := s.locks.Lock(playerLockKey(input.HostID))
	defer unlock()

	_, live, err := s.liveGame(ctx, input.HostID)
	if err != nil {
		return nil, err
	}
	if live != nil {
		return nil, ErrPlayerInAnotherGame
	}

	now := s.clock.Now()

	var game *models.Game
	for attempt := 0; attempt < s.maxCodeAttempts; attempt++ {
		candidate := &models.Game{
			ID:        s.codeGenerator.NewCode(),
			HostID:    input.HostID,
			Status:    models.GameStatusCreated,
			PlayerIDs: []string{input.HostID},
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
			Game: candidate,
		})
		if err == nil {
			game = candidate
			break
		}
		if !errors.Is(err, gameRepo.ErrGameExists) {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}
	}

	if game == nil {
		return nil, ErrCodeSpaceExhausted
	}

	name := input.HostName
	if name == "" {
		name = input.HostID
	}

	player := &models.Player{
		ID:       input.HostID,
		Name:     name,
		GameID:   game.ID,
		IsHost:   true,
		Status:   models.PlayerStatusActive,
		JoinedAt: now,
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	log.Printf("Game %s created by %s", game.ID, input.HostID)

	return &CreateGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// JoinGame adds a player to a game that is still gathering players
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("player ID is required")
	}

	code := gamecode.Normalize(input.GameID)
	if !gamecode.Valid(code) {
		return nil, ErrMalformedGameCode
	}

	unlockPlayer := s.locks.Lock(playerLockKey(input.PlayerID))
	defer unlockPlayer()

	unlockGame := s.locks.Lock(gameLockKey(code))
	defer unlockGame()

	game, err := s.getGame(ctx, code)
	if err != nil {
		return nil, err
	}

	if game.HasPlayer(input.PlayerID) {
		if game.Status.IsTerminal() {
			return nil, ErrGameOver
		}

		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get player: %w", err)
		}

		return &JoinGameOutput{
			Game:          game,
			Player:        player,
			AlreadyJoined: true,
		}, nil
	}

	switch game.Status {
	case models.GameStatusCreated:
	case models.GameStatusAbandoned, models.GameStatusCompleted:
		return nil, ErrGameOver
	case models.GameStatusStarted, models.GameStatusInProgress:
		return nil, ErrGameAlreadyStarted
	}

	_, live, err := s.liveGame(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if live != nil {
		return nil, ErrPlayerInAnotherGame
	}

	if s.maxPlayers > 0 && game.PlayerCount() >= s.maxPlayers {
		return nil, ErrGameFull
	}

	now := s.clock.Now()
	game.PlayerIDs = append(game.PlayerIDs, input.PlayerID)
	game.UpdatedAt = now

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	name := input.PlayerName
	if name == "" {
		name = input.PlayerID
	}

	player := &models.Player{
		ID:       input.PlayerID,
		Name:     name,
		GameID:   game.ID,
		Status:   models.PlayerStatusActive,
		JoinedAt: now,
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	return &JoinGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// StartGame plans the rotation and prompts everyone for a seed phrase.
// Starting a game that is already under way changes nothing.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("game ID and player ID are required")
	}

	unlock := s.locks.Lock(gameLockKey(input.GameID))
	defer unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	switch game.Status {
	case models.GameStatusCreated:
	case models.GameStatusStarted, models.GameStatusInProgress:
		return &StartGameOutput{
			Game:           game,
			AlreadyStarted: true,
		}, nil
	case models.GameStatusAbandoned, models.GameStatusCompleted:
		return nil, ErrGameOver
	}

	if input.PlayerID != game.HostID {
		return nil, ErrNotHost
	}

	if game.PlayerCount() < 2 {
		return nil, ErrInsufficientPlayers
	}

	plan, err := s.planner.Plan(game.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to plan rotation: %w", err)
	}

	game.Rotation = plan
	game.CurrentRound = 0
	game.Status = models.GameStatusStarted

	effects, err := s.dispatchRound(ctx, game, nil)
	if err != nil {
		return nil, err
	}

	game.Status = models.GameStatusInProgress
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Printf("Game %s started with %d players", game.ID, game.PlayerCount())

	return &StartGameOutput{
		Game:    game,
		Effects: effects,
	}, nil
}

// Submit records an answer for the current round. When the round closes it
// either completes the game or opens the next round.
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("game ID and player ID are required")
	}

	if input.Payload.IsAmbiguous() {
		return nil, ErrAmbiguousPayload
	}
	if input.Payload.IsEmpty() {
		return nil, ErrEmptyPayload
	}

	unlock := s.locks.Lock(gameLockKey(input.GameID))
	defer unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(input.PlayerID) {
		return nil, ErrNotInGame
	}

	if !game.Status.IsPlaying() {
		return nil, ErrNoPendingPrompt
	}

	round := game.CurrentRound

	entry, err := s.pendingEntry(ctx, game, input.PlayerID)
	if err != nil {
		if !errors.Is(err, ErrNoPendingPrompt) {
			return nil, err
		}

		effects, completed, resumed, resumeErr := s.resumeStalledRound(ctx, game)
		if resumeErr != nil {
			return nil, resumeErr
		}
		if !resumed {
			return nil, err
		}

		return &SubmitOutput{
			Game:          game,
			Effects:       effects,
			RoundClosed:   true,
			GameCompleted: completed,
			Resumed:       true,
		}, nil
	}

	if input.Payload.Kind() != entry.Kind {
		return nil, wrongPayloadKind(entry.Kind)
	}

	recorded, err := s.ledger.RecordSubmission(ctx, &ledger.RecordSubmissionInput{
		Game:     game,
		Round:    round,
		PlayerID: input.PlayerID,
		Payload:  input.Payload,
	})
	if err != nil {
		return nil, err
	}

	output := &SubmitOutput{
		Game:  game,
		Entry: recorded.Entry,
	}

	roundDone, err := s.ledger.IsRoundComplete(ctx, &ledger.IsRoundCompleteInput{
		Game:  game,
		Round: round,
	})
	if err != nil {
		return nil, err
	}

	if !roundDone.Complete {
		pending, err := s.ledger.PendingCount(ctx, &ledger.PendingCountInput{
			Game:  game,
			Round: round,
		})
		if err != nil {
			return nil, err
		}
		output.Remaining = pending.Count

		if input.PlayerID != game.HostID {
			effect, err := s.progressEffect(ctx, game, input.PlayerID, pending.Count)
			if err != nil {
				return nil, err
			}
			output.Effects = append(output.Effects, effect)
		}

		return output, nil
	}

	effects, completed, err := s.closeRound(ctx, game)
	if err != nil {
		return nil, err
	}

	output.RoundClosed = true
	output.GameCompleted = completed
	output.Effects = effects
	return output, nil
}

// closeRound completes the game after its final round or opens the next
// one. The current round must already be fully answered.
func (s *service) closeRound(ctx context.Context, game *models.Game) ([]*models.Effect, bool, error) {
	round := game.CurrentRound

	gameDone, err := s.ledger.IsGameComplete(ctx, &ledger.IsGameCompleteInput{
		Game: game,
	})
	if err != nil {
		return nil, false, err
	}

	if gameDone.Complete {
		game.Status = models.GameStatusCompleted
		game.UpdatedAt = s.clock.Now()

		if err := s.retire(ctx, game); err != nil {
			return nil, false, err
		}

		effects, err := s.galleryEffects(ctx, game)
		if err != nil {
			return nil, false, err
		}

		log.Printf("Game %s completed after %d rounds", game.ID, game.PlayerCount())

		return effects, true, nil
	}

	previous, err := s.roundEntries(ctx, game.ID, round)
	if err != nil {
		return nil, false, err
	}

	game.CurrentRound = round + 1
	game.Status = models.GameStatusInProgress

	effects, err := s.dispatchRound(ctx, game, previous)
	if err != nil {
		return nil, false, err
	}

	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, false, fmt.Errorf("failed to save game: %w", err)
	}

	log.Printf("Game %s advanced to round %d of %d", game.ID, game.CurrentRound+1, game.PlayerCount())

	return effects, false, nil
}

// resumeStalledRound closes the current round when every answer is in but
// the game was never moved on, which happens when the save after the last
// answer failed. resumed reports whether anything was done.
func (s *service) resumeStalledRound(ctx context.Context, game *models.Game) (effects []*models.Effect, completed, resumed bool, err error) {
	roundDone, err := s.ledger.IsRoundComplete(ctx, &ledger.IsRoundCompleteInput{
		Game:  game,
		Round: game.CurrentRound,
	})
	if err != nil {
		return nil, false, false, err
	}
	if !roundDone.Complete {
		return nil, false, false, nil
	}

	log.Printf("Game %s round %d is answered but was not closed, closing it now", game.ID, game.CurrentRound+1)

	effects, completed, err = s.closeRound(ctx, game)
	if err != nil {
		return nil, false, false, err
	}

	return effects, completed, true, nil
}

// retire saves a game that just reached a terminal status. Its rounds and
// player index expire first so a reused code never sees stale entries.
func (s *service) retire(ctx context.Context, game *models.Game) error {
	if err := s.roundRepo.ExpireRounds(ctx, &roundRepo.ExpireRoundsInput{
		GameID: game.ID,
		Rounds: game.PlayerCount(),
		TTL:    s.retention,
	}); err != nil {
		return fmt.Errorf("failed to expire rounds: %w", err)
	}

	if err := s.playerRepo.ExpireGamePlayers(ctx, &playerRepo.ExpireGamePlayersInput{
		GameID: game.ID,
		TTL:    s.retention,
	}); err != nil {
		return fmt.Errorf("failed to expire game players: %w", err)
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
		TTL:  s.retention,
	}); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// RepeatPrompt rebuilds the prompt for the player's unanswered entry without changing anything
func (s *service) RepeatPrompt(ctx context.Context, input *RepeatPromptInput) (*RepeatPromptOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("game ID and player ID are required")
	}

	unlock := s.locks.Lock(gameLockKey(input.GameID))
	defer unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(input.PlayerID) {
		return nil, ErrNotInGame
	}

	if !game.Status.IsPlaying() {
		return nil, ErrNoPendingPrompt
	}

	if _, err := s.pendingEntry(ctx, game, input.PlayerID); err != nil {
		if !errors.Is(err, ErrNoPendingPrompt) {
			return nil, err
		}

		effects, _, resumed, resumeErr := s.resumeStalledRound(ctx, game)
		if resumeErr != nil {
			return nil, resumeErr
		}
		if !resumed {
			return nil, err
		}

		return &RepeatPromptOutput{
			Effects: effects,
			Resumed: true,
		}, nil
	}

	var previous map[string]*models.RoundEntry
	if game.CurrentRound > 0 {
		previous, err = s.roundEntries(ctx, game.ID, game.CurrentRound-1)
		if err != nil {
			return nil, err
		}
	}

	effect, err := s.promptEffect(ctx, game, input.PlayerID, game.CurrentRound, previous)
	if err != nil {
		return nil, err
	}

	return &RepeatPromptOutput{
		Effects: []*models.Effect{effect},
	}, nil
}

// Quit marks the player as gone and abandons the game for everyone else
func (s *service) Quit(ctx context.Context, input *QuitInput) (*QuitOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("game ID and player ID are required")
	}

	unlock := s.locks.Lock(gameLockKey(input.GameID))
	defer unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(input.PlayerID) {
		return nil, ErrNotInGame
	}

	if game.Status.IsTerminal() {
		return nil, ErrGameOver
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to get player: %w", err)
		}
		player = &models.Player{
			ID:     input.PlayerID,
			Name:   input.PlayerID,
			GameID: game.ID,
		}
	}

	player.Status = models.PlayerStatusQuit

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	// The player is saved first: a failed game save leaves them free to
	// play again while the game stays retryable
	game.Status = models.GameStatusAbandoned
	game.UpdatedAt = s.clock.Now()

	if err := s.retire(ctx, game); err != nil {
		return nil, err
	}

	notice, err := s.messenger.GetAbandonedMessage(ctx, &messaging.GetAbandonedMessageInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	effects := make([]*models.Effect, 0, game.PlayerCount()-1)
	for _, playerID := range game.PlayerIDs {
		if playerID == input.PlayerID {
			continue
		}
		effects = append(effects, &models.Effect{
			Kind:        models.EffectKindAbandoned,
			GameID:      game.ID,
			Round:       game.CurrentRound,
			RecipientID: playerID,
			Text:        notice.Message,
		})
	}

	log.Printf("Game %s abandoned by %s in round %d", game.ID, input.PlayerID, game.CurrentRound+1)

	return &QuitOutput{
		Game:    game,
		Effects: effects,
	}, nil
}

// GetStatus reports the round and how many answers are missing
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("game ID is required")
	}

	game, err := s.getGame(ctx, gamecode.Normalize(input.GameID))
	if err != nil {
		return nil, err
	}

	output := &GetStatusOutput{
		Game:        game,
		Round:       game.CurrentRound,
		TotalRounds: game.PlayerCount(),
	}

	if !game.Status.IsPlaying() {
		return output, nil
	}

	pending, err := s.ledger.PendingCount(ctx, &ledger.PendingCountInput{
		Game:  game,
		Round: game.CurrentRound,
	})
	if err != nil {
		return nil, err
	}

	output.Pending = pending.Count
	for _, playerID := range pending.PlayerIDs {
		if playerID == input.PlayerID {
			output.AwaitingYou = true
		}
	}

	return output, nil
}

// FindActiveGame returns the unfinished game the player is active in
func (s *service) FindActiveGame(ctx context.Context, input *FindActiveGameInput) (*FindActiveGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("player ID is required")
	}

	player, game, err := s.liveGame(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrNotPlaying
	}

	return &FindActiveGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// GetGallery follows every seed phrase through the rounds of a completed game
func (s *service) GetGallery(ctx context.Context, input *GetGalleryInput) (*GetGalleryOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("game ID is required")
	}

	game, err := s.getGame(ctx, gamecode.Normalize(input.GameID))
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusCompleted {
		return nil, ErrGameNotFinished
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	names := make(map[string]string, len(players.Players))
	for _, p := range players.Players {
		names[p.ID] = p.Name
	}
	nameOf := func(playerID string) string {
		if name, ok := names[playerID]; ok && name != "" {
			return name
		}
		return playerID
	}

	rounds := make([]map[string]*models.RoundEntry, game.PlayerCount())
	for round := range rounds {
		rounds[round], err = s.roundEntries(ctx, game.ID, round)
		if err != nil {
			return nil, err
		}
	}

	chains := make([]*GalleryChain, 0, game.PlayerCount())
	for _, origin := range game.PlayerIDs {
		chain := game.Rotation.Chain(origin)
		steps := make([]*GalleryStep, 0, len(chain))
		for round, playerID := range chain {
			entry, ok := rounds[round][playerID]
			if !ok {
				return nil, fmt.Errorf("game %s has no round %d entry for %s", game.ID, round, playerID)
			}
			steps = append(steps, &GalleryStep{
				Round:      round,
				PlayerID:   playerID,
				PlayerName: nameOf(playerID),
				Kind:       entry.Kind,
				Payload:    entry.Payload,
			})
		}
		chains = append(chains, &GalleryChain{
			OriginID:   origin,
			OriginName: nameOf(origin),
			Steps:      steps,
		})
	}

	return &GetGalleryOutput{
		Game:   game,
		Chains: chains,
	}, nil
}
