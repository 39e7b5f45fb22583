package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// Rotation configures one lumberjack rolled file.
type Rotation struct {
	Name       string `toml:"name"`       // file name inside LogFile.Path
	MaxSize    int    `toml:"maxSize"`    // megabytes
	MaxBackups int    `toml:"maxBackups"` // rotated files to keep
	MaxAge     int    `toml:"maxAge"`     // days
}

// LogFile implements a file based logger, one file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access Rotation `toml:"access"`
	Error  Rotation `toml:"error"`
	Info   Rotation `toml:"info"`
	Trace  Rotation `toml:"trace"`
	Warn   Rotation `toml:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"logLevel"` // trace, debug, info, warn, error.

	// EnableAccessLogToConsole if true the preview server logs requests to the console.
	// Does not overrule flag Console.Enabled!
	EnableAccessLogToConsole bool `toml:"enableAccessLogToConsole"`
	ReportCaller             bool `toml:"reportCaller"`
	DisableCheckAlive        bool `toml:"disableCheckAlive"` // do not log /checkalive calls

	AppName     string `toml:"appName"`
	ServiceName string `toml:"serviceName"`

	// Console used mainly for docker and dev.
	Console Console `toml:"console"`

	File LogFile `toml:"file"`
}
