package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(nil)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.channels)
	assert.Equal(t, manager, listener.manager)
}

func TestNotifyListener_WithoutConnection(t *testing.T) {
	// Without Start() there is no connection; the command path must fail
	// cleanly instead of hanging.
	manager := NewConnectionManager(nil)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	t.Run("subscribe returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "thread:abc")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "thread:abc")
		assert.NoError(t, err)
	})
}
