package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sketchphone/internal/common/clock"
	"github.com/KirkDiggler/sketchphone/internal/common/gamecode"
	"github.com/KirkDiggler/sketchphone/internal/common/keylock"
	"github.com/KirkDiggler/sketchphone/internal/common/uuid"
	"github.com/KirkDiggler/sketchphone/internal/handlers/discord"
	"github.com/KirkDiggler/sketchphone/internal/handlers/web"
	gameRepo "github.com/KirkDiggler/sketchphone/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/sketchphone/internal/repositories/player"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
	"github.com/KirkDiggler/sketchphone/internal/rotation"
	"github.com/KirkDiggler/sketchphone/internal/services/delivery"
	gameService "github.com/KirkDiggler/sketchphone/internal/services/game"
	"github.com/KirkDiggler/sketchphone/internal/services/ledger"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
)

func main() {
	// A missing .env is fine, flags and the environment still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCmd(&Config{}).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *Config) error {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	rounds, err := roundRepo.NewRedis(&roundRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create round repository: %w", err)
	}

	realClock := clock.New()
	uuidGenerator := uuid.New()

	roundLedger, err := ledger.New(&ledger.Config{
		RoundRepo: rounds,
		Clock:     realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create round ledger: %w", err)
	}

	messenger, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.maxPlayers,
		GalleryURL:    cfg.galleryURL(),
		Retention:     cfg.retention,
		GameRepo:      games,
		PlayerRepo:    players,
		RoundRepo:     rounds,
		Ledger:        roundLedger,
		Planner:       rotation.New(&rotation.Config{}),
		Messenger:     messenger,
		Clock:         realClock,
		UUIDGenerator: uuidGenerator,
		CodeGenerator: gamecode.New(),
		Locker:        keylock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.discordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	sender, err := discord.NewDMSender(session)
	if err != nil {
		return fmt.Errorf("failed to create direct message sender: %w", err)
	}

	deliverySvc, err := delivery.New(&delivery.Config{
		Sender:        sender,
		UUIDGenerator: uuidGenerator,
		MaxAttempts:   cfg.deliveryAttempts,
	})
	if err != nil {
		return fmt.Errorf("failed to create delivery service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.applicationID,
		GuildID:       cfg.guildID,
		PublicURL:     cfg.publicURL,
		GameService:   gameSvc,
		Messenger:     messenger,
		Delivery:      deliverySvc,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	server, err := web.New(&web.Config{
		Bind:        cfg.bind,
		Port:        cfg.port,
		Verbose:     cfg.verbose,
		GameService: gameSvc,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	serveErr := server.Serve(ctx)

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
	return serveErr
}
