package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled"`
	UseConsoleWriter bool `mapstructure:"useconsolewriter"`
}

// LogFile implements a file based logger with one rolling file per level group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`

	AccessLog        string `mapstructure:"access"`
	AccessMaxSize    int    `mapstructure:"accessmaxsize"`
	AccessMaxBackups int    `mapstructure:"accessmaxbackups"`
	AccessMaxAge     int    `mapstructure:"accessmaxage"`

	ErrorLog        string `mapstructure:"error"`
	ErrorMaxSize    int    `mapstructure:"errormaxsize"`
	ErrorMaxBackups int    `mapstructure:"errormaxbackups"`
	ErrorMaxAge     int    `mapstructure:"errormaxage"`

	InfoLog        string `mapstructure:"info"`
	InfoMaxSize    int    `mapstructure:"infomaxsize"`
	InfoMaxBackups int    `mapstructure:"infomaxbackups"`
	InfoMaxAge     int    `mapstructure:"infomaxage"`

	TraceLog        string `mapstructure:"trace"`
	TraceMaxSize    int    `mapstructure:"tracemaxsize"`
	TraceMaxBackups int    `mapstructure:"tracemaxbackups"`
	TraceMaxAge     int    `mapstructure:"tracemaxage"`

	WarnLog        string `mapstructure:"warn"`
	WarnMaxSize    int    `mapstructure:"warnmaxsize"`
	WarnMaxBackups int    `mapstructure:"warnmaxbackups"`
	WarnMaxAge     int    `mapstructure:"warnmaxage"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"loglevel"` // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes the http access log to the console as well.
	// Does not overrule flag Console.Enabled!
	EnableAccessLogToConsole bool `mapstructure:"enableaccesslogtoconsole"`
	ReportCaller             bool `mapstructure:"reportcaller"`
	DisableCheckAlive        bool `mapstructure:"disablecheckalive"` // do not log /checkalive calls

	AppName     string `mapstructure:"appname"`
	ServiceName string `mapstructure:"servicename"`

	Console Console `mapstructure:"console"`
	File    LogFile `mapstructure:"file"`
}
