package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordWrite(t *testing.T) {
	before := testutil.ToFloat64(WritesTotal.WithLabelValues("register", "ok"))

	RecordWrite("register", "ok")

	assert.Equal(t, before+1, testutil.ToFloat64(WritesTotal.WithLabelValues("register", "ok")))
}

func TestRecordRejection(t *testing.T) {
	before := testutil.ToFloat64(RejectionsTotal.WithLabelValues("OutOfPeriod"))

	RecordRejection("OutOfPeriod")
	RecordRejection("OutOfPeriod")

	assert.Equal(t, before+2, testutil.ToFloat64(RejectionsTotal.WithLabelValues("OutOfPeriod")))
}

func TestRecordSummary(t *testing.T) {
	RecordSummary(3, 0.001)

	assert.Equal(t, 1, testutil.CollectAndCount(SummaryDuration))
}
