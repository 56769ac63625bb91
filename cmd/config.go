package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cigroup"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"
	tuiFlagName     = "tui"

	algorithmFlagName  = "algorithm"
	thresholdFlagName  = "threshold"
	metricFlagName     = "metric"
	workersFlagName    = "workers"
	scriptsFlagName    = "scripts"
	pathsFlagName      = "paths"
	minPathsFlagName   = "min-paths"
	maxPathsFlagName   = "max-paths"
	seedFlagName       = "seed"
	seedsFlagName      = "seeds"
	thresholdsFlagName = "thresholds"
	parallelFlagName   = "parallel"

	tuiConfigKey       = "ui.tui"
	algorithmConfigKey = "cluster.algorithm"
	thresholdConfigKey = "cluster.threshold"
	metricConfigKey    = "cluster.metric"
	workersConfigKey   = "cluster.workers"
	scriptsConfigKey   = "generate.scripts"
	pathsConfigKey     = "generate.paths"
	minPathsConfigKey  = "generate.min_paths"
	maxPathsConfigKey  = "generate.max_paths"
	seedConfigKey      = "generate.seed"
	sweepScriptsKey    = "sweep.scripts"
	sweepSeedsKey      = "sweep.seeds"
	sweepParallelKey   = "sweep.parallel"

	defaultReportsDir   = ".cigroup-reports"
	defaultAlgorithm    = "greedy"
	defaultThreshold    = 2.0
	defaultMetric       = "hamming"
	defaultWorkers      = 0
	defaultScripts      = 10
	defaultPaths        = 30
	defaultMinPaths     = 5
	defaultMaxPaths     = 20
	defaultSeed         = int64(-1)
	defaultSweepScripts = 100
	defaultSweepThreads = 1

	envPrefix = "CIGROUP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cigroup.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultSweepSeeds = []int64{0, 1, 2, 3, 4}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(tuiConfigKey, false)

	viper.SetDefault(algorithmConfigKey, defaultAlgorithm)
	viper.SetDefault(thresholdConfigKey, defaultThreshold)
	viper.SetDefault(metricConfigKey, defaultMetric)
	viper.SetDefault(workersConfigKey, defaultWorkers)
	viper.SetDefault(scriptsConfigKey, defaultScripts)
	viper.SetDefault(pathsConfigKey, defaultPaths)
	viper.SetDefault(minPathsConfigKey, defaultMinPaths)
	viper.SetDefault(maxPathsConfigKey, defaultMaxPaths)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(sweepScriptsKey, defaultSweepScripts)
	viper.SetDefault(sweepSeedsKey, defaultSweepSeeds)
	viper.SetDefault(sweepParallelKey, defaultSweepThreads)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("config not loaded", "file", configFileName, "error", err)
		}
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
