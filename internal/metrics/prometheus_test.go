package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, "2xx", ClassifyStatus(201))
	assert.Equal(t, "4xx", ClassifyStatus(404))
	assert.Equal(t, "5xx", ClassifyStatus(500))
	assert.Equal(t, "unknown", ClassifyStatus(0))
	assert.Equal(t, "unknown", ClassifyStatus(700))
}

func TestRecordRequest(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues("GET", "/api/products/:id", "4xx")
	before := testutil.ToFloat64(counter)

	RecordRequest("GET", "/api/products/:id", 404, 3*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
