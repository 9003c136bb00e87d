package bridge

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-protocol/schema"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/viant/ue5-mcp-bridge/catalog"
	"github.com/viant/ue5-mcp-bridge/rpc"
)

type call struct {
	method string
	params json.RawMessage
}

type testCaller struct {
	mux     sync.Mutex
	calls   []call
	outcome *rpc.Outcome
	err     error
	panic   bool
}

func (c *testCaller) Call(ctx context.Context, method string, params json.RawMessage) (*rpc.Outcome, error) {
	c.mux.Lock()
	c.calls = append(c.calls, call{method: method, params: params})
	c.mux.Unlock()
	if c.panic {
		panic("caller exploded")
	}
	return c.outcome, c.err
}

func newTestObserver(t *testing.T) (*Observer, *tracetest.InMemoryExporter, *sdkmetric.ManualReader) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	observer, err := NewObserver(meterProvider.Meter("test"), tracerProvider.Tracer("test"))
	require.NoError(t, err)
	return observer, exporter, reader
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	aCatalog, err := catalog.Default()
	require.NoError(t, err)
	return aCatalog
}

func TestService_Invoke(t *testing.T) {
	caller := &testCaller{outcome: &rpc.Outcome{Result: json.RawMessage(`{"assets":["/Game/Maps/Main"],"count":1}`)}}
	service := NewService(defaultCatalog(t), caller)

	result := service.Invoke(context.Background(), "ue5_asset_list", map[string]interface{}{"path": "/Game/Maps"})
	require.False(t, result.Failed())
	assert.Equal(t, `{"assets":["/Game/Maps/Main"],"count":1}`, string(result.Value))
	require.Len(t, caller.calls, 1)
	assert.Equal(t, "asset.list", caller.calls[0].method)
	assert.JSONEq(t, `{"path":"/Game/Maps"}`, string(caller.calls[0].params))

	result = service.Invoke(context.Background(), "ue5_level_save", map[string]interface{}{"ignored": 1})
	require.False(t, result.Failed())
	assert.Equal(t, "level.save", caller.calls[1].method)
	assert.Nil(t, caller.calls[1].params)
}

func TestService_Invoke_UnknownTool(t *testing.T) {
	caller := &testCaller{}
	service := NewService(defaultCatalog(t), caller)
	result := service.Invoke(context.Background(), "ue5_asset_lst", nil)
	require.True(t, result.Failed())
	assert.Equal(t, KindUnknownTool, result.Failure.Kind)
	assert.Empty(t, caller.calls, "unknown tools never reach the editor")

	result = service.Invoke(context.Background(), "", map[string]interface{}{"path": "/Game"})
	require.True(t, result.Failed())
	assert.Equal(t, KindUnknownTool, result.Failure.Kind)
	assert.Contains(t, result.Text(), `"kind": "UnknownTool"`)
	assert.Empty(t, caller.calls)
}

func TestService_Invoke_RpcError(t *testing.T) {
	caller := &testCaller{outcome: &rpc.Outcome{Error: &rpc.Error{Code: -32601, Message: "Method not found"}}}
	service := NewService(defaultCatalog(t), caller)
	result := service.Invoke(context.Background(), "ue5_system_info", nil)
	require.True(t, result.Failed())
	assert.Equal(t, KindRpcError, result.Failure.Kind)
	assert.Equal(t, -32601, *result.Failure.Code)
	assert.Equal(t, "Method not found", result.Failure.Message)
}

func TestService_Invoke_Panic(t *testing.T) {
	service := NewService(defaultCatalog(t), &testCaller{panic: true})
	result := service.Invoke(context.Background(), "ue5_system_info", nil)
	require.True(t, result.Failed())
	assert.Equal(t, KindInternal, result.Failure.Kind)
	assert.Contains(t, result.Failure.Message, "caller exploded")
}

func TestService_Observer(t *testing.T) {
	observer, exporter, reader := newTestObserver(t)
	caller := &testCaller{outcome: &rpc.Outcome{Result: json.RawMessage(`true`)}}
	service := NewService(defaultCatalog(t), caller, WithObserver(observer))

	service.Invoke(context.Background(), "ue5_system_info", nil)
	service.Invoke(context.Background(), "ue5_missing", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "ue5.tool.invoke", spans[0].Name)
	assert.Equal(t, otelcodes.Ok, spans[0].Status.Code)
	assert.Equal(t, otelcodes.Error, spans[1].Status.Code)
	attrs := map[string]string{}
	for _, attr := range spans[0].Attributes {
		attrs[string(attr.Key)] = attr.Value.Emit()
	}
	assert.Equal(t, "ue5_system_info", attrs["tool_name"])
	assert.Equal(t, "system.getInfo", attrs["rpc.method"])
	attrs = map[string]string{}
	for _, attr := range spans[1].Attributes {
		attrs[string(attr.Key)] = attr.Value.Emit()
	}
	assert.Equal(t, "UnknownTool", attrs["error_kind"])

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "ue5.tool.invocations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, point := range sum.DataPoints {
				total += point.Value
			}
		}
	}
	assert.EqualValues(t, 2, total)
}

func TestService_ListTools(t *testing.T) {
	service := NewService(defaultCatalog(t), &testCaller{})
	tools := service.ListTools(context.Background())
	require.Len(t, tools, 169)
	assert.Equal(t, "ue5_system_info", tools[0].Name)
	for _, tool := range tools {
		assert.Equal(t, "object", tool.InputSchema.Type, tool.Name)
		assert.NotNil(t, tool.InputSchema.Required, tool.Name)
		require.NotNil(t, tool.Description, tool.Name)
	}
}

func TestService_CallTool(t *testing.T) {
	caller := &testCaller{outcome: &rpc.Outcome{Result: json.RawMessage(`{"name":"Cube"}`)}}
	service := NewService(defaultCatalog(t), caller)

	result := service.CallTool(context.Background(), &schema.CallToolRequestParams{Name: "ue5_actor_get", Arguments: map[string]interface{}{"actor": "Cube"}})
	require.Len(t, result.Content, 1)
	assert.Equal(t, "{\n  \"name\": \"Cube\"\n}", contentText(t, result))
	assert.True(t, result.IsError == nil || !*result.IsError)

	result = service.CallTool(context.Background(), &schema.CallToolRequestParams{Name: "ue5_nothing"})
	require.NotNil(t, result.IsError)
	assert.True(t, *result.IsError)
	assert.Contains(t, contentText(t, result), `"kind": "UnknownTool"`)
}

func contentText(t *testing.T, result *schema.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	content, ok := result.Content[0].(schema.TextContent)
	require.True(t, ok)
	assert.Equal(t, "text", content.Type)
	return content.Text
}

func TestToolResult(t *testing.T) {
	result := ToolResult(Success(json.RawMessage(`[1,2]`)))
	assert.Nil(t, result.IsError)
	assert.Equal(t, "[\n  1,\n  2\n]", contentText(t, result))

	result = ToolResult(Fail(KindTimeout, "late"))
	require.NotNil(t, result.IsError)
	assert.True(t, *result.IsError)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	decoded := &schema.CallToolResult{}
	require.NoError(t, json.Unmarshal(data, decoded))
	content, ok := decoded.Content[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "text", content["type"])
	assert.Contains(t, content["text"], `"kind": "Timeout"`)
}
