package config

const (
	defaultIDMode            = "none"
	defaultMinConfusionCount = 1
	defaultHistoryDir        = "~/.local/share/asreval/history"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Evaluate: Evaluate{
			IDMode:            defaultIDMode,
			MinConfusionCount: defaultMinConfusionCount,
			TrackLengthBins:   true,
		},
		Output: Output{
			WERVsLength: true,
			Color:       true,
		},
		History: History{
			Dir: defaultHistoryDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
