package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/sketchphone/internal/models"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
)

// pendingEntry returns the player's unanswered entry for the current round
func (s *service) pendingEntry(ctx context.Context, game *models.Game, playerID string) (*models.RoundEntry, error) {
	entry, err := s.roundRepo.GetEntry(ctx, &roundRepo.GetEntryInput{
		GameID:   game.ID,
		Round:    game.CurrentRound,
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, roundRepo.ErrEntryNotFound) {
			return nil, ErrNoPendingPrompt
		}
		return nil, fmt.Errorf("failed to get round entry: %w", err)
	}

	if entry.Answered() {
		return nil, ErrNoPendingPrompt
	}

	return entry, nil
}

// roundEntries returns a round's entries keyed by player ID
func (s *service) roundEntries(ctx context.Context, gameID string, round int) (map[string]*models.RoundEntry, error) {
	result, err := s.roundRepo.GetRoundEntries(ctx, &roundRepo.GetRoundEntriesInput{
		GameID: gameID,
		Round:  round,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get round entries: %w", err)
	}

	entries := make(map[string]*models.RoundEntry, len(result.Entries))
	for _, entry := range result.Entries {
		entries[entry.PlayerID] = entry
	}
	return entries, nil
}

// dispatchRound creates the unanswered entries of the game's current round
// and returns one prompt per participant. previous holds the answers of the
// round before, keyed by player, and is unused for round 0.
func (s *service) dispatchRound(ctx context.Context, game *models.Game, previous map[string]*models.RoundEntry) ([]*models.Effect, error) {
	round := game.CurrentRound
	kind := models.TurnKindForRound(round)
	now := s.clock.Now()

	entries := make([]*models.RoundEntry, 0, game.PlayerCount())
	effects := make([]*models.Effect, 0, game.PlayerCount())

	for _, playerID := range game.PlayerIDs {
		effect, err := s.promptEffect(ctx, game, playerID, round, previous)
		if err != nil {
			return nil, err
		}

		entries = append(entries, &models.RoundEntry{
			ID:         s.uuidGenerator.NewUUID(),
			GameID:     game.ID,
			Round:      round,
			PlayerID:   playerID,
			Kind:       kind,
			PromptedAt: now,
		})
		effects = append(effects, effect)
	}

	err := s.roundRepo.CreateEntries(ctx, &roundRepo.CreateEntriesInput{
		Entries: entries,
	})
	if err != nil {
		// Left over from a commit that failed before the game was saved
		if !errors.Is(err, roundRepo.ErrEntryExists) {
			return nil, fmt.Errorf("failed to create round entries: %w", err)
		}
		log.Printf("Round %d of game %s already had entries, reusing them", round+1, game.ID)
	}

	return effects, nil
}

// promptEffect builds the prompt for playerID in round. From round 1 on it
// carries the predecessor's answer: text to draw, or an image to describe.
func (s *service) promptEffect(ctx context.Context, game *models.Game, playerID string, round int, previous map[string]*models.RoundEntry) (*models.Effect, error) {
	kind := models.TurnKindForRound(round)

	promptInput := &messaging.GetPromptMessageInput{
		Round:       round,
		TotalRounds: game.PlayerCount(),
		Kind:        kind,
	}

	var mediaURL string
	if round > 0 {
		predecessor, ok := game.Rotation.Predecessor(playerID, round)
		if !ok {
			return nil, fmt.Errorf("game %s rotation has no predecessor for %s in round %d", game.ID, playerID, round)
		}

		answer, ok := previous[predecessor]
		if !ok || !answer.Answered() {
			return nil, fmt.Errorf("game %s has no round %d answer from %s", game.ID, round-1, predecessor)
		}

		switch kind {
		case models.TurnKindDraw:
			promptInput.PreviousText = answer.Payload.Text
		case models.TurnKindWrite:
			mediaURL = answer.Payload.MediaURL
		}
	}

	prompt, err := s.messenger.GetPromptMessage(ctx, promptInput)
	if err != nil {
		return nil, err
	}

	return &models.Effect{
		Kind:        models.EffectKindPrompt,
		GameID:      game.ID,
		Round:       round,
		RecipientID: playerID,
		TurnKind:    kind,
		Text:        prompt.Message,
		MediaURL:    mediaURL,
	}, nil
}

func (s *service) progressEffect(ctx context.Context, game *models.Game, playerID string, pending int) (*models.Effect, error) {
	name, err := s.playerName(ctx, playerID)
	if err != nil {
		return nil, err
	}

	progress, err := s.messenger.GetProgressMessage(ctx, &messaging.GetProgressMessageInput{
		PlayerName:  name,
		Round:       game.CurrentRound,
		TotalRounds: game.PlayerCount(),
		Pending:     pending,
	})
	if err != nil {
		return nil, err
	}

	return &models.Effect{
		Kind:        models.EffectKindProgress,
		GameID:      game.ID,
		Round:       game.CurrentRound,
		RecipientID: game.HostID,
		Text:        progress.Message,
	}, nil
}

func (s *service) galleryEffects(ctx context.Context, game *models.Game) ([]*models.Effect, error) {
	notice, err := s.messenger.GetGalleryMessage(ctx, &messaging.GetGalleryMessageInput{
		GameID:     game.ID,
		GalleryURL: s.galleryURL,
	})
	if err != nil {
		return nil, err
	}

	effects := make([]*models.Effect, 0, game.PlayerCount())
	for _, playerID := range game.PlayerIDs {
		effects = append(effects, &models.Effect{
			Kind:        models.EffectKindGallery,
			GameID:      game.ID,
			Round:       game.CurrentRound,
			RecipientID: playerID,
			Text:        notice.Message,
		})
	}
	return effects, nil
}
