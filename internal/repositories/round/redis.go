package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; one hash per round, keyed by player ID
	roundKeyPrefix = "round:"

	// Optimistic transaction attempts for AnswerEntry
	maxAnswerAttempts = 3
)

var (
	// ErrEntryNotFound is returned when no prompt was dispatched to the player for the round
	ErrEntryNotFound = errors.New("round entry not found")

	// ErrEntryExists is returned when creating an entry that is already stored
	ErrEntryExists = errors.New("round entry already exists")

	// ErrEntryAnswered is returned when answering an entry twice
	ErrEntryAnswered = errors.New("round entry already answered")
)

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func roundKey(gameID string, round int) string {
	return fmt.Sprintf("%s%s:%d", roundKeyPrefix, gameID, round)
}

// CreateEntries adds unanswered entries, failing with ErrEntryExists if any was already present
func (r *redisRepository) CreateEntries(ctx context.Context, input *CreateEntriesInput) error {
	if input == nil || len(input.Entries) == 0 {
		return errors.New("input and entries cannot be empty")
	}

	pipe := r.client.TxPipeline()
	cmds := make([]*redis.BoolCmd, 0, len(input.Entries))

	for _, entry := range input.Entries {
		if entry == nil || entry.GameID == "" || entry.PlayerID == "" {
			return errors.New("entry must have a game ID and player ID")
		}

		entryJSON, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal round entry: %w", err)
		}

		cmds = append(cmds, pipe.HSetNX(ctx, roundKey(entry.GameID, entry.Round), entry.PlayerID, entryJSON))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create round entries: %w", err)
	}

	for _, cmd := range cmds {
		if !cmd.Val() {
			return ErrEntryExists
		}
	}

	return nil
}

// GetEntry retrieves a single round entry
func (r *redisRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*models.RoundEntry, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID cannot be empty")
	}

	entryJSON, err := r.client.HGet(ctx, roundKey(input.GameID, input.Round), input.PlayerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get round entry: %w", err)
	}

	var entry models.RoundEntry
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round entry: %w", err)
	}

	return &entry, nil
}

// AnswerEntry stores the payload on an unanswered entry inside a WATCH transaction
func (r *redisRepository) AnswerEntry(ctx context.Context, input *AnswerEntryInput) (*models.RoundEntry, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID cannot be empty")
	}

	if input.Payload.IsEmpty() {
		return nil, errors.New("payload cannot be empty")
	}

	key := roundKey(input.GameID, input.Round)

	var answered *models.RoundEntry
	answer := func(tx *redis.Tx) error {
		entryJSON, err := tx.HGet(ctx, key, input.PlayerID).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrEntryNotFound
			}
			return err
		}

		var entry models.RoundEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return fmt.Errorf("failed to unmarshal round entry: %w", err)
		}

		if entry.Answered() {
			return ErrEntryAnswered
		}

		submittedAt := input.SubmittedAt
		entry.Payload = input.Payload
		entry.SubmittedAt = &submittedAt

		updated, err := json.Marshal(&entry)
		if err != nil {
			return fmt.Errorf("failed to marshal round entry: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, input.PlayerID, updated)
			return nil
		})
		if err != nil {
			return err
		}

		answered = &entry
		return nil
	}

	for attempt := 0; attempt < maxAnswerAttempts; attempt++ {
		err := r.client.Watch(ctx, answer, key)
		if err == nil {
			return answered, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrEntryNotFound) || errors.Is(err, ErrEntryAnswered) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to answer round entry: %w", err)
	}

	return nil, fmt.Errorf("failed to answer round entry: %w", redis.TxFailedErr)
}

// GetRoundEntries retrieves all entries for a round
func (r *redisRepository) GetRoundEntries(ctx context.Context, input *GetRoundEntriesInput) (*GetRoundEntriesOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	values, err := r.client.HGetAll(ctx, roundKey(input.GameID, input.Round)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get round entries: %w", err)
	}

	entries := make([]*models.RoundEntry, 0, len(values))
	for playerID, entryJSON := range values {
		var entry models.RoundEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round entry for %s: %w", playerID, err)
		}
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].PlayerID < entries[j].PlayerID
	})

	return &GetRoundEntriesOutput{
		Entries: entries,
	}, nil
}

// ExpireRounds expires rounds 0..Rounds-1 of a game together
func (r *redisRepository) ExpireRounds(ctx context.Context, input *ExpireRoundsInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if input.Rounds < 0 || input.TTL <= 0 {
		return errors.New("rounds cannot be negative and TTL must be positive")
	}

	pipe := r.client.TxPipeline()
	for round := 0; round < input.Rounds; round++ {
		pipe.Expire(ctx, roundKey(input.GameID, round), input.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to expire rounds: %w", err)
	}

	return nil
}
