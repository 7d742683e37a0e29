package bootstrap

import (
	"errors"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lightvector/ogstosgf/internal/usecase/translate"
)

type Config struct {
	Verbose     bool   `mapstructure:"VERBOSE"`
	FollowLinks bool   `mapstructure:"FOLLOW_LINKS"`
	Workers     int    `mapstructure:"WORKERS"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFormat   string `mapstructure:"LOG_FORMAT"`

	Generator           string `mapstructure:"GENERATOR"`
	DrawResult          string `mapstructure:"DRAW_RESULT"`
	UnfinishedResult    string `mapstructure:"UNFINISHED_RESULT"`
	LogMissingRanks     bool   `mapstructure:"LOG_MISSING_RANKS"`
	FreePlacementMoves  bool   `mapstructure:"FREE_PLACEMENT_MOVES"`
	OGSImportOrdering   bool   `mapstructure:"OGS_IMPORT_ORDERING"`
	ForfeitOutcomes     bool   `mapstructure:"FORFEIT_OUTCOMES"`
	RecoverEmbeddedInfo bool   `mapstructure:"RECOVER_EMBEDDED_INFO"`

	RedisUrl      string        `mapstructure:"REDIS_URL"`
	RedisTTL      time.Duration `mapstructure:"REDIS_TTL"`
	MongoUri      string        `mapstructure:"MONGO_URI"`
	MongoDatabase string        `mapstructure:"MONGO_DATABASE"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
}

func setDefaults(v *viper.Viper) {
	opts := translate.DefaultOptions()

	v.SetDefault("VERBOSE", false)
	v.SetDefault("FOLLOW_LINKS", true)
	v.SetDefault("WORKERS", runtime.NumCPU())
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("GENERATOR", opts.Generator)
	v.SetDefault("DRAW_RESULT", opts.DrawResult)
	v.SetDefault("UNFINISHED_RESULT", opts.UnfinishedResult)
	v.SetDefault("LOG_MISSING_RANKS", opts.LogMissingRanks)
	v.SetDefault("FREE_PLACEMENT_MOVES", opts.FreePlacementMoves)
	v.SetDefault("OGS_IMPORT_ORDERING", opts.OGSImportOrdering)
	v.SetDefault("FORFEIT_OUTCOMES", opts.ForfeitOutcomes)
	v.SetDefault("RECOVER_EMBEDDED_INFO", opts.RecoverEmbeddedInfo)

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_TTL", time.Duration(0))
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "ogstosgf")
	v.SetDefault("SERVER_PORT", "8080")
}

// FlagKeys: флаги командной строки и соответствующие ключи конфига
var FlagKeys = map[string]string{
	"verbose":           "VERBOSE",
	"follow-links":      "FOLLOW_LINKS",
	"workers":           "WORKERS",
	"log-level":         "LOG_LEVEL",
	"draw-result":       "DRAW_RESULT",
	"unfinished-result": "UNFINISHED_RESULT",
	"log-missing-ranks": "LOG_MISSING_RANKS",
	"port":              "SERVER_PORT",
}

// Setup собирает конфиг: значения по умолчанию, файл (если есть), переменные окружения, флаги.
func Setup(cfgPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil && !(errors.Is(err, os.ErrNotExist) && cfgPath == DefaultConfigPath) {
			return nil, err
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &cfg, nil
}

// DefaultConfigPath читается, если файл есть; его отсутствие не ошибка
const DefaultConfigPath = ".env"

func (c *Config) TranslateOptions() translate.Options {
	opts := translate.DefaultOptions()
	opts.Generator = c.Generator
	opts.DrawResult = c.DrawResult
	opts.UnfinishedResult = c.UnfinishedResult
	opts.LogMissingRanks = c.LogMissingRanks
	opts.FreePlacementMoves = c.FreePlacementMoves
	opts.OGSImportOrdering = c.OGSImportOrdering
	opts.ForfeitOutcomes = c.ForfeitOutcomes
	opts.RecoverEmbeddedInfo = c.RecoverEmbeddedInfo
	return opts
}
