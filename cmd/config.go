package cmd

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"grid-snake/game/manager"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "snake"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	tickFlagName       = "tick"
	deathPauseFlagName = "death-pause"
	frontendFlagName   = "frontend"
	avoidSnakeFlagName = "avoid-snake"
	seedFlagName       = "seed"

	tickKey       = "tick"
	deathPauseKey = "death_pause"
	frontendKey   = "frontend"
	avoidSnakeKey = "food.avoid_snake"
	seedKey       = "seed"

	frontendWindow   = "raylib"
	frontendTerminal = "terminal"

	defaultTick       = 400 * time.Millisecond
	defaultDeathPause = time.Second
	defaultFrontend   = frontendWindow
	defaultAvoidSnake = false
	defaultSeed       = 0

	envPrefix = "SNAKE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = "snake.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	setConfigDefaults(viper.GetViper())

	// a missing snake.yaml is fine; flags, env and defaults still apply
	_ = viper.ReadInConfig()
}

func setConfigDefaults(v *viper.Viper) {
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(tickKey, defaultTick.String())
	v.SetDefault(deathPauseKey, defaultDeathPause.String())
	v.SetDefault(frontendKey, defaultFrontend)
	v.SetDefault(avoidSnakeKey, defaultAvoidSnake)
	v.SetDefault(seedKey, defaultSeed)

	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// playConfig is the resolved configuration of one play run.
type playConfig struct {
	Tick       time.Duration
	DeathPause time.Duration
	Frontend   string
	Placement  manager.Placement
	Seed       uint64
}

func loadPlayConfig(v *viper.Viper) playConfig {
	placement := manager.PlacementUniform
	if v.GetBool(avoidSnakeKey) {
		placement = manager.PlacementAvoidSnake
	}
	return playConfig{
		Tick:       v.GetDuration(tickKey),
		DeathPause: v.GetDuration(deathPauseKey),
		Frontend:   strings.ToLower(strings.TrimSpace(v.GetString(frontendKey))),
		Placement:  placement,
		Seed:       v.GetUint64(seedKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// numeric slog levels, e.g. -4 for debug
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// newLogger builds a slog logger writing to a rotating file. Logs never go
// to stdout because both frontends own the screen.
func newLogger(v *viper.Viper) *slog.Logger {
	logPath := strings.TrimSpace(v.GetString(logFilenameKey))
	if logPath == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	return slog.New(handler)
}
