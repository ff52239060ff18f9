package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roboadvisor/pkg/dialog"
	"github.com/aretw0/roboadvisor/pkg/lex"
)

func TestMetrics_RecordsDispatch(t *testing.T) {
	m := NewMetrics()
	d := dialog.NewDispatcher(dialog.WithHooks(m.Hooks()))
	d.Register("recommendPortfolio", func(ctx context.Context, ev *lex.Event) (*lex.Response, error) {
		return lex.Delegate(nil, nil), nil
	})

	ok := &lex.Event{
		InvocationSource: lex.SourceDialogCodeHook,
		CurrentIntent:    &lex.CurrentIntent{Name: "recommendPortfolio"},
	}
	_, err := d.Dispatch(context.Background(), ok)
	require.NoError(t, err)

	bad := &lex.Event{CurrentIntent: &lex.CurrentIntent{Name: "orderPizza"}}
	_, err = d.Dispatch(context.Background(), bad)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("recommendPortfolio", "DialogCodeHook")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Responses.WithLabelValues("recommendPortfolio", "Delegate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("orderPizza", "unsupported_intent")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.Requests.WithLabelValues("recommendPortfolio", "DialogCodeHook").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "roboadvisor_dialog_requests_total")
}
