package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/ue5-mcp-bridge/internal/collection"
)

// Handler serves one client connection
type Handler struct {
	*Server
	notifier    transport.Notifier
	clientLevel *notificationLevel
	clientLog   *slog.Logger
	activeCalls *collection.SyncMap[string, context.CancelFunc]
	Initialized atomic.Bool
}

func newHandler(s *Server, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:      s,
		notifier:    notifier,
		clientLevel: &notificationLevel{},
		activeCalls: collection.NewSyncMap[string, context.CancelFunc](),
	}
	ret.clientLog = slog.New(newNotificationHandler(s.loggerName, ret.clientLevel, notifier))
	return ret
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		h.setResponse(response, &schema.PingResult{}, nil)
	case schema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsCall:
		key := requestKey(request.Id)
		callCtx, cancel := context.WithCancel(ctx)
		h.activeCalls.Put(key, cancel)
		defer h.release(key)
		result, err := h.CallTool(callCtx, request)
		h.setResponse(response, result, err)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
		return
	}
	response.Result = data
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCancel:
		if err := h.Cancel(ctx, notification); err != nil {
			h.logger.Debug("ignored cancellation", "error", err.Message)
		}
	case schema.MethodNotificationInitialized:
		h.Initialized.Store(true)
	default:
		h.logger.Debug("unsupported notification", "method", notification.Method)
	}
}
