package notify

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/logs"
	"roster/internal/model"
	"roster/internal/worker"
)

type memorySubscriptions struct {
	mu      sync.Mutex
	subs    []model.Subscription
	listErr error
	deleted []uint
}

func (m *memorySubscriptions) ListFor(_ context.Context, userID *uint) ([]model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Subscription
	for _, s := range m.subs {
		if userID == nil || s.UserID == *userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memorySubscriptions) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

type fakeSender struct {
	mu       sync.Mutex
	failures map[string]error
	sent     []string
	payloads [][]byte
}

func (f *fakeSender) Send(_ context.Context, sub model.Subscription, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failures[sub.Endpoint]; ok {
		return err
	}
	f.sent = append(f.sent, sub.Endpoint)
	f.payloads = append(f.payloads, payload)
	return nil
}

type inlineSubmitter struct{}

func (inlineSubmitter) Submit(job worker.Job) error {
	job(context.Background())
	return nil
}

func uid(v uint) *uint { return &v }

func TestDispatch_IsolatesFailures(t *testing.T) {
	subs := &memorySubscriptions{subs: []model.Subscription{
		{ID: 1, UserID: 3, Endpoint: "https://push.example/a"},
		{ID: 2, UserID: 3, Endpoint: "https://push.example/b"},
		{ID: 3, UserID: 4, Endpoint: "https://push.example/c"},
	}}
	sender := &fakeSender{failures: map[string]error{
		"https://push.example/a": errors.New("connection reset"),
	}}
	d := NewDispatcher(subs, sender, inlineSubmitter{}, time.Second, logs.Discard())

	report := d.Dispatch(context.Background(), uid(3), "Shift changed")

	assert.Equal(t, Report{Sent: 1, Failed: 1}, report)
	assert.Equal(t, []string{"https://push.example/b"}, sender.sent)
	assert.Equal(t, []byte("Shift changed"), sender.payloads[0])
	assert.Empty(t, subs.deleted)
}

func TestDispatch_BroadcastWhenNoTarget(t *testing.T) {
	subs := &memorySubscriptions{subs: []model.Subscription{
		{ID: 1, UserID: 3, Endpoint: "a"},
		{ID: 2, UserID: 4, Endpoint: "b"},
	}}
	sender := &fakeSender{}
	d := NewDispatcher(subs, sender, inlineSubmitter{}, time.Second, logs.Discard())

	report := d.Dispatch(context.Background(), nil, "hello")
	assert.Equal(t, 2, report.Sent)
	assert.ElementsMatch(t, []string{"a", "b"}, sender.sent)
}

func TestDispatch_PrunesGoneEndpoints(t *testing.T) {
	subs := &memorySubscriptions{subs: []model.Subscription{
		{ID: 8, UserID: 3, Endpoint: "stale"},
		{ID: 9, UserID: 3, Endpoint: "fresh"},
	}}
	sender := &fakeSender{failures: map[string]error{"stale": ErrGone}}
	d := NewDispatcher(subs, sender, inlineSubmitter{}, time.Second, logs.Discard())

	report := d.Dispatch(context.Background(), uid(3), "x")
	assert.Equal(t, Report{Sent: 1, Failed: 1, Pruned: 1}, report)
	assert.Equal(t, []uint{8}, subs.deleted)
}

func TestDispatch_NoSubscriptions(t *testing.T) {
	d := NewDispatcher(&memorySubscriptions{}, &fakeSender{}, inlineSubmitter{}, time.Second, logs.Discard())
	assert.Equal(t, Report{}, d.Dispatch(context.Background(), uid(99), "x"))
}

func TestDispatch_ListFailureIsSwallowed(t *testing.T) {
	subs := &memorySubscriptions{listErr: errors.New("db down")}
	d := NewDispatcher(subs, &fakeSender{}, inlineSubmitter{}, time.Second, logs.Discard())
	assert.Equal(t, Report{}, d.Dispatch(context.Background(), nil, "x"))
}

type panicSender struct{}

func (panicSender) Send(context.Context, model.Subscription, []byte) error { panic("boom") }

func TestDispatch_SenderPanicCountsAsFailure(t *testing.T) {
	subs := &memorySubscriptions{subs: []model.Subscription{{ID: 1, UserID: 3, Endpoint: "a"}}}
	d := NewDispatcher(subs, panicSender{}, inlineSubmitter{}, time.Second, logs.Discard())
	assert.Equal(t, Report{Failed: 1}, d.Dispatch(context.Background(), uid(3), "x"))
}

func TestEnqueue_RunsOnPool(t *testing.T) {
	subs := &memorySubscriptions{subs: []model.Subscription{{ID: 1, UserID: 3, Endpoint: "a"}}}
	sender := &fakeSender{}
	pool := worker.New(2, 10, logs.Discard())
	d := NewDispatcher(subs, sender, pool, time.Second, logs.Discard())

	target := uid(3)
	d.Enqueue(target, "queued")
	*target = 4 // caller may reuse its pointer

	require.NoError(t, pool.Shutdown(context.Background()))
	assert.Equal(t, []string{"a"}, sender.sent)
}

func TestEnqueue_DropsWhenClosed(t *testing.T) {
	sender := &fakeSender{}
	pool := worker.New(1, 1, logs.Discard())
	require.NoError(t, pool.Shutdown(context.Background()))

	d := NewDispatcher(&memorySubscriptions{subs: []model.Subscription{{ID: 1, UserID: 3, Endpoint: "a"}}}, sender, pool, time.Second, logs.Discard())
	d.Enqueue(nil, "late")
	assert.Empty(t, sender.sent)
}

func newBrowserKeys(t *testing.T) (p256dh, auth string) {
	t.Helper()
	_, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)
	secret := make([]byte, 16)
	_, err = rand.Read(secret)
	require.NoError(t, err)
	return pub, base64.RawURLEncoding.EncodeToString(secret)
}

func TestWebPushSender_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		wantAny bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "gone", status: http.StatusGone, wantErr: ErrGone},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrGone},
		{name: "rate limited", status: http.StatusTooManyRequests, wantAny: true},
	}

	priv, pub, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p256dh, auth := newBrowserKeys(t)
			sender := NewWebPushSender(pub, priv, "mailto:ops@example.com")
			err := sender.Send(context.Background(), model.Subscription{
				ID:       1,
				Endpoint: srv.URL,
				P256dh:   p256dh,
				Auth:     auth,
			}, []byte("hello"))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrGone)
			default:
				assert.NoError(t, err)
			}
			assert.Contains(t, gotAuth, "vapid")
		})
	}
}
