package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Rules are the default join and leave policies for new games.
type Rules struct {
	JoinWhen  string `validate:"oneof=before_any_placement after_placement between_turns"`
	JoinWhere string `validate:"oneof=immediately_next after_a_full_turn"`
	LeaveWhen string `validate:"oneof=before_any_placement never anytime"`
	LeaveWhat string `validate:"oneof=ends_game rollback_placement remove_their_tiles"`
}

type Config struct {
	LogLevel         string `validate:"oneof=error warn info debug trace"`
	HistoryDelimiter string `validate:"required"`
	RoomCodeLength   int    `validate:"min=4,max=12"`
	Rules            Rules
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Default is the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:         "info",
		HistoryDelimiter: "\n",
		RoomCodeLength:   6,
		Rules: Rules{
			JoinWhen:  "before_any_placement",
			JoinWhere: "immediately_next",
			LeaveWhen: "before_any_placement",
			LeaveWhat: "ends_game",
		},
	}
}

// Load reads the optional env files (".env" when none are given), then the
// environment, and validates the result. Variables already set in the
// environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	def := Default()
	cfg := Config{
		LogLevel:         getenv("PHILOSOPHY_LOG_LEVEL", def.LogLevel),
		HistoryDelimiter: getenv("PHILOSOPHY_HISTORY_DELIMITER", def.HistoryDelimiter),
		RoomCodeLength:   getenvInt("PHILOSOPHY_ROOM_CODE_LENGTH", def.RoomCodeLength),
		Rules: Rules{
			JoinWhen:  getenv("PHILOSOPHY_JOIN_WHEN", def.Rules.JoinWhen),
			JoinWhere: getenv("PHILOSOPHY_JOIN_WHERE", def.Rules.JoinWhere),
			LeaveWhen: getenv("PHILOSOPHY_LEAVE_WHEN", def.Rules.LeaveWhen),
			LeaveWhat: getenv("PHILOSOPHY_LEAVE_WHAT", def.Rules.LeaveWhat),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
