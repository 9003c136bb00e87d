package bridge

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/ue5-mcp-bridge/catalog"
	"github.com/viant/ue5-mcp-bridge/rpc"
	"github.com/viant/ue5-mcp-bridge/server"
)

const (
	Name    = "ue5-mcp-bridge"
	Version = "0.1.0"

	instructions = "Tools operate a running Unreal Engine 5 editor through the UltimateControl plugin. " +
		"Call ue5_system_info to check connectivity and ue5_list_methods to discover the editor API."
	shutdownTimeout = 5 * time.Second
)

// Bridge wires the catalog, the editor client and the MCP server.
type Bridge struct {
	options  *Options
	logger   *slog.Logger
	level    *slog.LevelVar
	client   *rpc.Client
	session  *rpc.Session
	service  *Service
	server   *server.Server
	shutdown func(context.Context) error
}

// New creates a bridge. Configuration is read once here.
func New(ctx context.Context, options *Options) (*Bridge, error) {
	level := &slog.LevelVar{}
	level.Set(options.level())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	aCatalog, err := catalog.Load(ctx, options.CatalogURL)
	if err != nil {
		return nil, err
	}
	shutdown, err := setupTracing(ctx, options.OTLP)
	if err != nil {
		return nil, err
	}
	ret := &Bridge{options: options, logger: logger, level: level, shutdown: shutdown}
	clientOptions := []rpc.Option{
		rpc.WithTimeout(options.Timeout),
		rpc.WithTokenHeader(options.TokenHeader),
		rpc.WithLogger(logger),
	}
	if options.Token != "" {
		clientOptions = append(clientOptions, rpc.WithToken(options.Token))
	}
	ret.client = rpc.New(rpc.Endpoint(options.Host, options.Port), clientOptions...)

	var caller rpc.Caller = ret.client
	if options.Persistent {
		ret.session = ret.client.Open()
		caller = ret.session
	}
	ret.service = NewService(aCatalog, caller, WithLogger(logger))
	ret.server, err = server.New(
		server.WithToolbox(ret.service),
		server.WithImplementation(schema.Implementation{Name: Name, Version: Version}),
		server.WithInstructions(instructions),
		server.WithLogger(logger),
		server.WithLevel(level),
		server.WithLoggerName(Name),
		server.WithAllowedOrigins(options.Origins...),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("bridge configured", "endpoint", ret.client.Endpoint(), "tools", aCatalog.Len(),
		"persistent", options.Persistent, "timeout", options.Timeout, "token", options.Token != "")
	return ret, nil
}

// Service returns the tool service.
func (b *Bridge) Service() *Service {
	return b.service
}

// Stdio returns the stdio MCP server.
func (b *Bridge) Stdio(ctx context.Context) *stdio.Server {
	return b.server.Stdio(ctx)
}

// HTTP returns the streamable HTTP MCP server.
func (b *Bridge) HTTP(ctx context.Context) *http.Server {
	return b.server.HTTP(ctx, b.options.HTTPAddr)
}

// Close releases the persistent session and flushes telemetry.
func (b *Bridge) Close() error {
	var err error
	if b.session != nil {
		err = b.session.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(err, b.shutdown(ctx))
}

// Serve runs the MCP server until ctx is done or the transport ends.
func (b *Bridge) Serve(ctx context.Context) error {
	if b.options.HTTPAddr == "" {
		b.logger.Info("serving MCP over stdio")
		return b.Stdio(ctx).ListenAndServe()
	}
	srv := b.HTTP(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	b.logger.Info("serving MCP over streamable HTTP", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run parses args and runs the bridge.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bridge, err := New(ctx, options)
	if err != nil {
		return err
	}
	defer bridge.Close()
	slog.SetDefault(bridge.logger)
	if options.Probe {
		return Probe(ctx, bridge.client, os.Stdout)
	}
	return bridge.Serve(ctx)
}
