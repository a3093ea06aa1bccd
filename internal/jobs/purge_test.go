package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type fakePurger struct {
	n     int64
	err   error
	calls int
}

func (f *fakePurger) PurgePast(ctx context.Context) (int64, error) {
	f.calls++
	return f.n, f.err
}

func assertPurged(t *testing.T, m *metrics.Metrics, want int) {
	t.Helper()
	expected := fmt.Sprintf(`
# HELP blocked_dates_purged_total Past blocked-date records removed by the purge job.
# TYPE blocked_dates_purged_total counter
blocked_dates_purged_total{service="test"} %d
`, want)
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "blocked_dates_purged_total"))
}

func TestPurgeJobRecordsCount(t *testing.T) {
	p := &fakePurger{n: 4}
	m := metrics.New("test")

	NewPurgeJob(p, m, logger.Discard()).Run()

	assert.Equal(t, 1, p.calls)
	assertPurged(t, m, 4)
}

func TestPurgeJobSwallowsErrors(t *testing.T) {
	p := &fakePurger{err: errors.New("db down")}
	m := metrics.New("test")

	NewPurgeJob(p, m, logger.Discard()).Run()

	assert.Equal(t, 1, p.calls)
	assertPurged(t, m, 0)
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := NewScheduler(time.UTC)
	assert.Error(t, s.Add("not a cron", NewPurgeJob(&fakePurger{}, nil, logger.Discard())))
	assert.NoError(t, s.Add("0 3 * * *", NewPurgeJob(&fakePurger{}, nil, logger.Discard())))

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
