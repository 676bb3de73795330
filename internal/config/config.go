package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
	Words      Words  `yaml:"words"`
	Socket     Socket `yaml:"socket"`
}

type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	HistoryTTL  time.Duration `yaml:"history-ttl" env:"REDIS_HISTORY_TTL" env-default:"24h"`
	HistorySize int           `yaml:"history-size" env:"REDIS_HISTORY_SIZE" env-default:"50"`
}

// Game holds the room policies.
type Game struct {
	MinPlayers        int           `yaml:"min-players" env:"GAME_MIN_PLAYERS" env-default:"2"`
	MaxPlayers        int           `yaml:"max-players" env:"GAME_MAX_PLAYERS" env-default:"16"`
	RoundDuration     time.Duration `yaml:"round-duration" env:"GAME_ROUND_DURATION" env-default:"80s"`
	TickInterval      time.Duration `yaml:"tick-interval" env:"GAME_TICK_INTERVAL" env-default:"1s"`
	ReadyTimeout      time.Duration `yaml:"ready-timeout" env:"GAME_READY_TIMEOUT" env-default:"20s"`
	CorrectGuessAward int           `yaml:"correct-guess-award" env:"GAME_CORRECT_GUESS_AWARD" env-default:"100"`
	TimeScaledAward   bool          `yaml:"time-scaled-award" env:"GAME_TIME_SCALED_AWARD" env-default:"false"`
	MinAward          int           `yaml:"min-award" env:"GAME_MIN_AWARD" env-default:"10"`
	RecentWords       int           `yaml:"recent-words" env:"GAME_RECENT_WORDS" env-default:"1"`
	MaxStrokes        int           `yaml:"max-strokes" env:"GAME_MAX_STROKES" env-default:"10000"`
	MaxUsernameLength int           `yaml:"max-username-length" env:"GAME_MAX_USERNAME_LENGTH" env-default:"24"`
	MaxChatLength     int           `yaml:"max-chat-length" env:"GAME_MAX_CHAT_LENGTH" env-default:"200"`
}

const (
	WordsSourceBuiltin = "builtin"
	WordsSourceFile    = "file"
	WordsSourceRedis   = "redis"
)

type Words struct {
	Source string `yaml:"source" env:"WORDS_SOURCE" env-default:"builtin"`
	File   string `yaml:"file" env:"WORDS_FILE" env-default:"words.txt"`
}

type Socket struct {
	RateLimit      float64       `yaml:"rate-limit" env:"SOCKET_RATE_LIMIT" env-default:"60"`
	Burst          int           `yaml:"burst" env:"SOCKET_BURST" env-default:"120"`
	SendBuffer     int           `yaml:"send-buffer" env:"SOCKET_SEND_BUFFER" env-default:"256"`
	PingInterval   time.Duration `yaml:"ping-interval" env:"SOCKET_PING_INTERVAL" env-default:"30s"`
	PongWait       time.Duration `yaml:"pong-wait" env:"SOCKET_PONG_WAIT" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed-origins" env:"SOCKET_ALLOWED_ORIGINS" env-default:"*"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the yaml file when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := that.Game.Validate(); err != nil {
		return err
	}

	switch that.Words.Source {
	case WordsSourceBuiltin, WordsSourceFile:
	case WordsSourceRedis:
		if !that.Redis.Enabled {
			return fmt.Errorf("%w: words source redis requires redis.enabled", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown words source %q", ErrInvalidConfig, that.Words.Source)
	}

	if that.Socket.RateLimit <= 0 || that.Socket.Burst <= 0 || that.Socket.SendBuffer <= 0 {
		return fmt.Errorf("%w: socket limits must be positive", ErrInvalidConfig)
	}

	return nil
}

func (that *Game) Validate() error {
	switch {
	case that.MinPlayers < 2:
		return fmt.Errorf("%w: min-players must be at least 2", ErrInvalidConfig)
	case that.MaxPlayers < that.MinPlayers:
		return fmt.Errorf("%w: max-players below min-players", ErrInvalidConfig)
	case that.RoundDuration < that.TickInterval || that.TickInterval <= 0:
		return fmt.Errorf("%w: round-duration and tick-interval must be positive", ErrInvalidConfig)
	case that.ReadyTimeout <= 0:
		return fmt.Errorf("%w: ready-timeout must be positive", ErrInvalidConfig)
	case that.CorrectGuessAward < 0 || that.MinAward < 0:
		return fmt.Errorf("%w: awards cannot be negative", ErrInvalidConfig)
	case that.RecentWords < 0 || that.MaxStrokes <= 0:
		return fmt.Errorf("%w: recent-words and max-strokes out of range", ErrInvalidConfig)
	case that.MaxUsernameLength <= 0 || that.MaxChatLength <= 0:
		return fmt.Errorf("%w: length limits must be positive", ErrInvalidConfig)
	}

	return nil
}

// RoundSeconds - round duration in countdown ticks.
func (that *Game) RoundSeconds() int {
	return int(that.RoundDuration / that.TickInterval)
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
