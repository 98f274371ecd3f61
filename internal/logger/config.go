package logger

// Config describes where and how much the calculator logs.
type Config struct {
	// Level is a zap level name, e.g. "DEBUG" or "info".
	Level string `mapstructure:"level"`
	// FileName is the log file. Empty disables file logging.
	FileName   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
	// Console also writes human-readable logs to stderr.
	Console bool `mapstructure:"console"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:      "INFO",
		FileName:   "",
		MaxSize:    10,
		MaxAge:     30,
		MaxBackups: 5,
		Compress:   true,
	}
}
