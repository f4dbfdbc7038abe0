package search

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/craftmarket/order-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	upserts []string
	deletes []string
	err     error
}

func (f *fakeIndex) Upsert(_ context.Context, _ string, id string, _ any) error {
	f.upserts = append(f.upserts, id)
	return f.err
}

func (f *fakeIndex) Delete(_ context.Context, _ string, id string) error {
	f.deletes = append(f.deletes, id)
	return f.err
}

func newTestDispatcher(index Index, buffer int) *Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher(logger, index, buffer)
}

func TestDispatcher_Enqueue(t *testing.T) {
	t.Run("queued tasks reach the index", func(t *testing.T) {
		idx := &fakeIndex{}
		d := newTestDispatcher(idx, 2)

		d.EnqueueOrderUpsert(entities.Order{ID: 5, Status: entities.StatusNew})
		d.EnqueueOrderDelete(6)

		d.process(context.Background(), <-d.tasks)
		d.process(context.Background(), <-d.tasks)

		require.Equal(t, []string{"5"}, idx.upserts)
		require.Equal(t, []string{"6"}, idx.deletes)
	})

	t.Run("full queue drops the task and counts it", func(t *testing.T) {
		idx := &fakeIndex{}
		d := newTestDispatcher(idx, 0)

		before := testutil.ToFloat64(syncFailures.WithLabelValues("overflow"))
		d.EnqueueOrderUpsert(entities.Order{ID: 7})
		d.EnqueueOrderDelete(8)
		after := testutil.ToFloat64(syncFailures.WithLabelValues("overflow"))

		assert.Equal(t, 2.0, after-before)
		assert.Empty(t, idx.upserts)
		assert.Empty(t, idx.deletes)
	})
}
