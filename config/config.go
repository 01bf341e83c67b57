package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	ModeLocal = "local"
	ModeTcp   = "tcp"
	ModeWs    = "ws"

	StoreMemory = "memory"
	StoreSqlite = "sqlite"
	StoreRedis  = "redis"
)

// Config is read once at startup. Flags in main may override any field afterwards.
type Config struct {
	Mode              string
	Addr              string
	WsAddr            string
	LogLevel          logrus.Level
	Store             string
	SqlitePath        string
	RedisAddr         string
	RedisDB           int
	Seed              int64
	ZeroSwap          bool
	ReshuffleDiscard  bool
	HideComputerHands bool
	ComputerDelay     time.Duration
	NoColor           bool
}

// Load reads files (".env" when none are given) if they exist, then the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Config{
		Mode:       getEnv("UNO_MODE", ModeLocal),
		Addr:       getEnv("UNO_ADDR", ":9999"),
		WsAddr:     getEnv("UNO_WS_ADDR", ":9998"),
		Store:      getEnv("UNO_STORE", StoreMemory),
		SqlitePath: getEnv("UNO_SQLITE_PATH", "./data/uno.db"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
	}

	var err error
	if cfg.LogLevel, err = logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("UNO_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.ZeroSwap, err = getEnvBool("UNO_ZERO_SWAP", false); err != nil {
		return Config{}, err
	}
	if cfg.ReshuffleDiscard, err = getEnvBool("UNO_RESHUFFLE", false); err != nil {
		return Config{}, err
	}
	if cfg.HideComputerHands, err = getEnvBool("UNO_HIDE_COMPUTER_HANDS", true); err != nil {
		return Config{}, err
	}
	if cfg.NoColor, err = getEnvBool("UNO_NO_COLOR", false); err != nil {
		return Config{}, err
	}
	if cfg.ComputerDelay, err = time.ParseDuration(getEnv("UNO_COMPUTER_DELAY", "600ms")); err != nil {
		return Config{}, fmt.Errorf("UNO_COMPUTER_DELAY: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeLocal, ModeTcp, ModeWs:
	default:
		return fmt.Errorf("unknown mode '%s'", c.Mode)
	}
	switch c.Store {
	case StoreMemory, StoreSqlite, StoreRedis:
	default:
		return fmt.Errorf("unknown store '%s'", c.Store)
	}
	if c.ComputerDelay < 0 {
		return fmt.Errorf("computer delay must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	s := getEnv(key, "")
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	s := getEnv(key, "")
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
