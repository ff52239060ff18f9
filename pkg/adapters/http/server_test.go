package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/internal/logging"
	"github.com/aretw0/roboadvisor/pkg/lex"
)

func newTestHandler(opts ...Option) http.Handler {
	opts = append([]Option{WithLogger(logging.NewNop())}, opts...)
	return NewHandler(roboadvisor.New(), opts...)
}

func postDialog(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/dialog", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleDialog(t *testing.T) {
	handler := newTestHandler()

	t.Run("ElicitSlot for retirement age", func(t *testing.T) {
		rr := postDialog(t, handler, `{
			"invocationSource": "DialogCodeHook",
			"currentIntent": {"name": "recommendPortfolio", "slots": {"age": "70", "investmentAmount": null}},
			"sessionAttributes": {"k": "v"}
		}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"sessionAttributes": {"k": "v"},
			"dialogAction": {
				"type": "ElicitSlot",
				"intentName": "recommendPortfolio",
				"slots": {"age": null, "investmentAmount": null},
				"slotToElicit": "age",
				"message": {"contentType": "PlainText", "content": "Sorry, you are already at retirement age! I cannot recommend a portfolio."}
			}
		}`, rr.Body.String())
	})

	t.Run("Delegate with numeric slot values", func(t *testing.T) {
		rr := postDialog(t, handler, `{
			"invocationSource": "DialogCodeHook",
			"currentIntent": {"name": "recommendPortfolio", "slots": {"age": 30, "investmentAmount": "5000"}}
		}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp lex.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, lex.ActionDelegate, resp.DialogAction.Type)
		age, _ := resp.DialogAction.Slots.Get("age")
		assert.Equal(t, "30", age)
	})

	t.Run("Close on fulfillment", func(t *testing.T) {
		rr := postDialog(t, handler, `{
			"invocationSource": "FulfillmentCodeHook",
			"currentIntent": {"name": "recommendPortfolio", "slots": {"riskLevel": "low"}}
		}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "60% bonds (AGG), 40% equities (SPY)")
		assert.Contains(t, rr.Body.String(), `"fulfillmentState":"Fulfilled"`)
	})

	t.Run("Unsupported intent", func(t *testing.T) {
		rr := postDialog(t, handler, `{"invocationSource": "DialogCodeHook", "currentIntent": {"name": "bookHotel"}}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "bookHotel")
	})

	t.Run("Unknown risk level", func(t *testing.T) {
		rr := postDialog(t, handler, `{
			"invocationSource": "FulfillmentCodeHook",
			"currentIntent": {"name": "recommendPortfolio", "slots": {"riskLevel": "extreme"}}
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rr := postDialog(t, handler, `{"currentIntent":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleDialog_SanitizerLimit(t *testing.T) {
	handler := newTestHandler(WithMaxValueSize(4))

	rr := postDialog(t, handler, `{
		"invocationSource": "DialogCodeHook",
		"currentIntent": {"name": "recommendPortfolio", "slots": {"investmentAmount": "1000000"}}
	}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "investmentAmount")
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "roboadvisor-http", resp["app"])
	assert.Equal(t, roboadvisor.Version, resp["version"])
	assert.Equal(t, "0.1.0", resp["api_version"])
	assert.Equal(t, []any{"recommendPortfolio"}, resp["intents"])
}

func TestMetricsRoute(t *testing.T) {
	without := newTestHandler()
	rr := httptest.NewRecorder()
	without.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	with := newTestHandler(WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("metrics"))
	})))
	rr = httptest.NewRecorder()
	with.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "metrics", rr.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/dialog", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/dialog"))

	handler := newTestHandler()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "operationId: handleDialog")
}
