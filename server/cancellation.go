package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
)

type cancelledParams struct {
	RequestId interface{} `json:"requestId"`
	Reason    string      `json:"reason,omitempty"`
}

// Cancel aborts the in-flight tools/call with the notified request id.
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	params := &cancelledParams{}
	if err := json.Unmarshal(notification.Params, params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	if params.RequestId == nil {
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	key := requestKey(params.RequestId)
	if cancel, ok := h.activeCalls.Take(key); ok {
		h.logger.Debug("request cancelled", "id", key, "reason", params.Reason)
		cancel()
	}
	return nil
}

func (h *Handler) release(key string) {
	if cancel, ok := h.activeCalls.Take(key); ok {
		cancel()
	}
}

func requestKey(id interface{}) string {
	return fmt.Sprint(id)
}
