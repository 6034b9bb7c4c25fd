package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPoll(t *testing.T) {
	okBefore := testutil.ToFloat64(PollExecutions.WithLabelValues("daily", "success"))
	errBefore := testutil.ToFloat64(PollExecutions.WithLabelValues("daily", "error"))

	RecordPoll("daily", 120*time.Millisecond, nil)
	RecordPoll("daily", time.Second, errors.New("timeout"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(PollExecutions.WithLabelValues("daily", "success")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(PollExecutions.WithLabelValues("daily", "error")))
	assert.Greater(t, testutil.ToFloat64(PollLastSuccess.WithLabelValues("daily")), 0.0)
}

func TestHandlerExposesRegisteredMetrics(t *testing.T) {
	Init()
	Init()

	GoldPrice.Set(2040.5)
	ExchangeRate.WithLabelValues("USD", "LKR").Set(300)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "gold_sentinel_price_usd_per_troy_ounce 2040.5")
	assert.Contains(t, body, `gold_sentinel_exchange_rate{from="USD",to="LKR"} 300`)
}
