package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
)

type fakeEventLister struct {
	rows []*ent.Event
	err  error
}

func (f *fakeEventLister) GetEventsSince(_ context.Context, _ string, _ int, limit int) ([]*ent.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func TestEventServiceAdapter_DecodesRows(t *testing.T) {
	lister := &fakeEventLister{rows: []*ent.Event{
		{ID: 10, Payload: `{"type":"run.chunk","seq":1}`},
		{ID: 20, Payload: `{"type":"run.chunk","seq":2}`},
	}}

	adapter := NewEventServiceAdapter(lister)
	events, err := adapter.GetCatchupEvents(context.Background(), "thread:t1", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, float64(1), events[0].Payload["seq"])
	assert.Equal(t, 20, events[1].ID)
	assert.Equal(t, "run.chunk", events[1].Payload["type"])
}

func TestEventServiceAdapter_SkipsCorruptRow(t *testing.T) {
	lister := &fakeEventLister{rows: []*ent.Event{
		{ID: 1, Payload: `{"seq":1}`},
		{ID: 2, Payload: `{not json`},
		{ID: 3, Payload: `{"seq":3}`},
	}}

	adapter := NewEventServiceAdapter(lister)
	events, err := adapter.GetCatchupEvents(context.Background(), "thread:t1", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 3, events[1].ID)
}

func TestEventServiceAdapter_PropagatesQueryError(t *testing.T) {
	lister := &fakeEventLister{err: fmt.Errorf("database connection lost")}

	adapter := NewEventServiceAdapter(lister)
	events, err := adapter.GetCatchupEvents(context.Background(), "thread:t1", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection lost")
}

func TestEventServiceAdapter_Empty(t *testing.T) {
	adapter := NewEventServiceAdapter(&fakeEventLister{})
	events, err := adapter.GetCatchupEvents(context.Background(), "thread:t1", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
