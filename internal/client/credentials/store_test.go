package credentials

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/storage"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake durable storage ----

type fakeDurable struct {
	mu   sync.Mutex
	data map[string][]byte

	getErr    error
	setErr    error
	deleteErr error

	gets int

	// onGet, when set, runs inside Get before it answers
	onGet func()
}

func newFakeDurable() *fakeDurable {
	return &fakeDurable{data: map[string][]byte{}}
}

func (f *fakeDurable) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	f.gets++
	hook := f.onGet
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (f *fakeDurable) SetMany(_ context.Context, values map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	for k, v := range values {
		f.data[k] = append([]byte(nil), v...)
	}
	return nil
}

func (f *fakeDurable) DeleteMany(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeDurable) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

// ---- tests ----

func TestSet_ThenRead_EvenIfDurableWriteFails(t *testing.T) {
	d := newFakeDurable()
	d.setErr = errors.New("disk full")
	s := New(d, logging.NewDiscard())
	ctx := context.Background()

	s.Set(ctx, "t1", models.User{"id": float64(1)})

	tok, ok := s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "t1", tok)

	u, ok := s.User(ctx)
	require.True(t, ok)
	assert.Equal(t, models.User{"id": float64(1)}, u)

	assert.Equal(t, 0, d.getCount(), "memory must answer without a durable read")
	assert.Empty(t, d.data)
}

func TestSet_MirrorsToDurable(t *testing.T) {
	d := newFakeDurable()
	s := New(d, nil)

	s.Set(context.Background(), "abc123", models.User{"id": float64(1)})

	assert.Equal(t, []byte("abc123"), d.data[KeyToken])
	assert.JSONEq(t, `{"id":1}`, string(d.data[KeyUser]))
}

func TestClear_NullsEverything(t *testing.T) {
	d := newFakeDurable()
	s := New(d, nil)
	ctx := context.Background()

	s.Set(ctx, "t", models.User{"id": float64(2)})
	s.Clear(ctx)

	_, ok := s.Token(ctx)
	assert.False(t, ok)
	_, ok = s.User(ctx)
	assert.False(t, ok)
	assert.Empty(t, d.data)
}

func TestClear_DurableDeleteFailureIsSwallowed(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyToken] = []byte("old")
	d.deleteErr = errors.New("locked")
	s := New(d, nil)
	ctx := context.Background()

	s.Clear(ctx)

	_, ok := s.Token(ctx)
	assert.False(t, ok, "memory wins over the stale durable entry")
}

func TestToken_LazyLoadOnce(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyToken] = []byte("persisted")
	d.data[KeyUser] = []byte(`{"id": 5, "name": "Asha"}`)
	s := New(d, nil)
	ctx := context.Background()

	tok, ok := s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "persisted", tok)

	tok, ok = s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "persisted", tok)

	u, ok := s.User(ctx)
	require.True(t, ok)
	assert.Equal(t, "Asha", u.DisplayName())

	assert.Equal(t, 2, d.getCount(), "one read per slot")
}

func TestToken_MissingIsCachedAsNull(t *testing.T) {
	d := newFakeDurable()
	s := New(d, nil)
	ctx := context.Background()

	_, ok := s.Token(ctx)
	assert.False(t, ok)

	d.data[KeyToken] = []byte("appeared later")
	_, ok = s.Token(ctx)
	assert.False(t, ok)
	assert.Equal(t, 1, d.getCount())
}

func TestToken_ReadErrorYieldsNullAndRetries(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyToken] = []byte("persisted")
	d.getErr = errors.New("io")
	s := New(d, nil)
	ctx := context.Background()

	_, ok := s.Token(ctx)
	assert.False(t, ok)

	d.mu.Lock()
	d.getErr = nil
	d.mu.Unlock()

	tok, ok := s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "persisted", tok)
}

func TestToken_NeverRevertsAfterNonNull(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyToken] = []byte("persisted")
	s := New(d, nil)
	ctx := context.Background()

	tok, ok := s.Token(ctx)
	require.True(t, ok)

	d.mu.Lock()
	d.getErr = errors.New("storage went away")
	delete(d.data, KeyToken)
	d.mu.Unlock()

	for i := 0; i < 3; i++ {
		again, ok := s.Token(ctx)
		require.True(t, ok)
		assert.Equal(t, tok, again)
	}
}

func TestUser_CorruptEntryIsNull(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyUser] = []byte(`{not json`)
	s := New(d, nil)

	u, ok := s.User(context.Background())
	assert.False(t, ok)
	assert.Nil(t, u)
}

func TestSetDuringLoad_MemoryWins(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyToken] = []byte("stale")
	s := New(d, nil)
	ctx := context.Background()

	d.onGet = func() {
		d.mu.Lock()
		d.onGet = nil
		d.mu.Unlock()
		s.Set(ctx, "fresh", nil)
	}

	tok, ok := s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "fresh", tok)

	tok, _ = s.Token(ctx)
	assert.Equal(t, "fresh", tok)
}

func TestConcurrentFirstReads_BothHitStorage(t *testing.T) {
	d := newFakeDurable()
	d.data[KeyToken] = []byte("persisted")
	s := New(d, nil)
	ctx := context.Background()

	arrived := make(chan struct{}, 2)
	release := make(chan struct{})
	d.onGet = func() {
		arrived <- struct{}{}
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
	}

	var wg sync.WaitGroup
	results := make([]string, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.Token(ctx)
		}(i)
	}

	<-arrived
	<-arrived
	close(release)
	wg.Wait()

	assert.Equal(t, 2, d.getCount())
	assert.Equal(t, []string{"persisted", "persisted"}, results)
}

func TestSurvivesRestart_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "field.db")

	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	New(storage.NewSQLiteRepository(db), nil).Set(ctx, "abc123", models.User{"id": float64(1)})
	require.NoError(t, db.Close())

	db, err = storage.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	s := New(storage.NewSQLiteRepository(db), nil)
	tok, ok := s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc123", tok)

	u, ok := s.User(ctx)
	require.True(t, ok)
	assert.Equal(t, models.User{"id": float64(1)}, u)

	s.Clear(ctx)
	v, err := storage.NewSQLiteRepository(db).Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}
