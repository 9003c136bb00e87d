package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/viant/ue5-mcp-bridge/catalog"
	"github.com/viant/ue5-mcp-bridge/rpc"
)

// Service dispatches tool invocations to the remote host.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	catalog  *catalog.Catalog
	caller   rpc.Caller
	logger   *slog.Logger
	observer *Observer
}

// ServiceOption configures a Service.
type ServiceOption func(s *Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithObserver sets the telemetry observer.
func WithObserver(observer *Observer) ServiceOption {
	return func(s *Service) { s.observer = observer }
}

// NewService creates a service dispatching catalog tools through caller.
func NewService(aCatalog *catalog.Catalog, caller rpc.Caller, options ...ServiceOption) *Service {
	ret := &Service{catalog: aCatalog, caller: caller}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.observer == nil {
		ret.observer = defaultObserver()
	}
	return ret
}

// Catalog returns the service catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Invoke runs a tool. Every failure, including a panic, is returned as a Result.
func (s *Service) Invoke(ctx context.Context, name string, args map[string]interface{}) (result *Result) {
	started := time.Now()
	var method string
	ctx, span := s.observer.start(ctx, name)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tool call panicked", "tool", name, "panic", r, "stack", string(debug.Stack()))
			result = Fail(KindInternal, fmt.Sprintf("panic: %v", r))
		}
		s.observer.finish(ctx, span, name, method, result, time.Since(started))
		s.log(name, method, result, time.Since(started))
	}()

	call, err := s.catalog.Resolve(name, args)
	if err != nil {
		return Translate(nil, err)
	}
	method = call.Method
	outcome, err := s.caller.Call(ctx, call.Method, call.Params)
	return Translate(outcome, err)
}

func (s *Service) log(name, method string, result *Result, elapsed time.Duration) {
	if !result.Failed() {
		s.logger.Debug("tool call completed", "tool", name, "method", method, "elapsed", elapsed)
		return
	}
	failure := result.Failure
	attrs := []any{"tool", name, "method", method, "kind", failure.Kind, "message", failure.Message, "elapsed", elapsed}
	if failure.Code != nil {
		attrs = append(attrs, "code", *failure.Code)
	}
	s.logger.Warn("tool call failed", attrs...)
}
