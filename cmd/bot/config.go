package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything the bot needs to start
type Config struct {
	redisAddr        string
	redisPassword    string
	redisDB          int
	discordToken     string
	applicationID    string
	guildID          string
	bind             string
	port             int
	publicURL        string
	maxPlayers       int
	deliveryAttempts int
	retention        time.Duration
	verbose          bool
}

func (c *Config) validate() error {
	if c.discordToken == "" {
		return errors.New("--discord-token is required")
	}
	if c.redisAddr == "" {
		return errors.New("--redis-addr cannot be empty")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.maxPlayers != 0 && c.maxPlayers < 2 {
		return fmt.Errorf("invalid max players (must be 0 for no limit, or at least 2): %d", c.maxPlayers)
	}
	if c.deliveryAttempts < 1 {
		return fmt.Errorf("invalid delivery attempts (must be at least 1): %d", c.deliveryAttempts)
	}
	if c.retention <= 0 {
		return fmt.Errorf("invalid retention (must be positive): %s", c.retention)
	}
	return nil
}

// galleryURL is the base the game code is appended to in completion notices
func (c *Config) galleryURL() string {
	base := strings.TrimSuffix(c.publicURL, "/")
	if base == "" {
		base = fmt.Sprintf("http://%s:%d", c.bind, c.port)
	}
	return base + "/gallery/"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SKETCHPHONE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "sketchphone",
		Short: "Telephone pictionary for Discord, played over direct messages.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: SKETCHPHONE_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: SKETCHPHONE_REDIS_PASSWORD)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: SKETCHPHONE_REDIS_DB)")
	fs.StringVar(&cfg.discordToken, "discord-token", "", "discord bot token (env: SKETCHPHONE_DISCORD_TOKEN)")
	fs.StringVar(&cfg.applicationID, "application-id", "", "discord application ID, defaults to the bot user (env: SKETCHPHONE_APPLICATION_ID)")
	fs.StringVar(&cfg.guildID, "guild-id", "", "register commands for this guild only (env: SKETCHPHONE_GUILD_ID)")
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address the web API binds to (env: SKETCHPHONE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port the web API listens on (env: SKETCHPHONE_PORT)")
	fs.StringVar(&cfg.publicURL, "public-url", "", "externally reachable URL of the web API (env: SKETCHPHONE_PUBLIC_URL)")
	fs.IntVar(&cfg.maxPlayers, "max-players", 10, "maximum players per game, 0 for no limit (env: SKETCHPHONE_MAX_PLAYERS)")
	fs.IntVar(&cfg.deliveryAttempts, "delivery-attempts", 3, "tries per direct message before giving up (env: SKETCHPHONE_DELIVERY_ATTEMPTS)")
	fs.DurationVar(&cfg.retention, "retention", 7*24*time.Hour, "how long finished games stay viewable before their code is reused (env: SKETCHPHONE_RETENTION)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every web request (env: SKETCHPHONE_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
