package bridge

import (
	"log/slog"
	"time"
)

type Options struct {
	Host        string        `short:"H" long:"host" env:"UE5_MCP_HOST" default:"127.0.0.1" description:"UltimateControl host"`
	Port        int           `short:"p" long:"port" env:"UE5_MCP_PORT" default:"7777" description:"UltimateControl port"`
	Token       string        `short:"t" long:"token" env:"UE5_MCP_TOKEN" description:"UltimateControl auth token"`
	TokenHeader string        `long:"token-header" env:"UE5_MCP_TOKEN_HEADER" default:"X-Ultimate-Control-Token" description:"auth token header name"`
	Timeout     time.Duration `long:"timeout" env:"UE5_MCP_TIMEOUT" default:"30s" description:"per call timeout"`
	Persistent  bool          `long:"persistent" env:"UE5_MCP_PERSISTENT" description:"reuse one editor connection for all calls"`
	CatalogURL  string        `short:"c" long:"catalog" env:"UE5_MCP_CATALOG" description:"tool catalog URL, defaults to the embedded catalog"`
	HTTPAddr    string        `long:"http" env:"UE5_MCP_HTTP" description:"serve streamable HTTP on this address instead of stdio"`
	Origins     []string      `long:"origin" description:"allowed browser origin for the HTTP transport"`
	LogLevel    string        `short:"l" long:"log-level" env:"UE5_MCP_LOG_LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"log level"`
	OTLP        string        `long:"otlp" env:"UE5_MCP_OTLP_ENDPOINT" description:"OTLP/HTTP trace endpoint URL"`
	Probe       bool          `long:"probe" description:"query the editor info and methods, print them and exit"`
}

func (o *Options) level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
