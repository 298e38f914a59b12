package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStore(dir, nil)

	in := []entry{{ID: "1", Name: "Margherita"}, {ID: "2", Name: "Carbonara"}}
	assert.NoError(t, st.Save(CollectionCart, in))

	out := []entry{}
	assert.NoError(t, st.Get(CollectionCart, &out))
	assert.Equal(t, in, out)
}

func TestFileStore_AbsentCollectionReadsEmpty(t *testing.T) {
	st := NewFileStore(t.TempDir(), nil)

	out := []entry{}
	assert.NoError(t, st.Get(CollectionFavorites, &out))
	assert.Empty(t, out)
}

func TestFileStore_CorruptDataFailsClosed(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStore(dir, nil)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0644))

	out := []entry{}
	assert.NoError(t, st.Get(CollectionCart, &out))
	assert.Empty(t, out)
}

func TestFileStore_SaveEmitsCollectionEvent(t *testing.T) {
	bus := NewBus()
	events := bus.Subscribe(4)
	st := NewFileStore(t.TempDir(), bus)

	assert.NoError(t, st.Save(CollectionCart, []entry{{ID: "1"}}))
	assert.NoError(t, st.Save(CollectionFavorites, []entry{{ID: "2"}}))

	select {
	case evt := <-events:
		assert.Equal(t, EventCartUpdated, evt.Name)
		assert.Equal(t, CollectionCart, evt.Collection)
	case <-time.After(time.Second):
		t.Fatal("expected a cartUpdated event")
	}
	select {
	case evt := <-events:
		assert.Equal(t, EventFavoritesUpdated, evt.Name)
	case <-time.After(time.Second):
		t.Fatal("expected a favoritesUpdated event")
	}
}

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := NewBus()
	full := bus.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(NewEvent(CollectionCart))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Len(t, full, 1, "overflow events are dropped, not queued")
}

func TestMemoryStore_LastWriterWins(t *testing.T) {
	st := NewMemoryStore(nil)

	assert.NoError(t, st.Save(CollectionCart, []entry{{ID: "1"}}))
	assert.NoError(t, st.Save(CollectionCart, []entry{{ID: "2"}, {ID: "3"}}))

	out := []entry{}
	assert.NoError(t, st.Get(CollectionCart, &out))
	assert.Len(t, out, 2)
	assert.Equal(t, "2", out[0].ID)
}
