package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/database/filestore"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/event"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/sse"
	"github.com/osse101/GardenBot_Go/internal/worker"
	"github.com/osse101/GardenBot_Go/mocks"
)

func TestOpenGardenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("file backend", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "gardens")
		store, closeStore, err := OpenGardenStore(ctx, &config.Config{StoreBackend: config.StoreBackendFile, DataDir: dir})
		require.NoError(t, err)
		defer closeStore()

		require.NoError(t, store.Ping(ctx))
		assert.DirExists(t, dir)
	})

	t.Run("redis backend", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.Config{
			StoreBackend:   config.StoreBackendRedis,
			RedisURL:       "redis://" + mr.Addr(),
			RedisKeyPrefix: "test:garden:",
		}
		store, closeStore, err := OpenGardenStore(ctx, cfg)
		require.NoError(t, err)
		defer closeStore()

		require.NoError(t, store.SaveSnapshot(ctx, "alice", []byte(`{}`)))
		assert.True(t, mr.Exists("test:garden:alice"))
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, _, err := OpenGardenStore(ctx, &config.Config{StoreBackend: config.StoreBackendRedis, RedisURL: "redis://" + addr})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedConnectRedis)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, _, err := OpenGardenStore(ctx, &config.Config{StoreBackend: "sqlite"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownStoreBackend)
	})
}

// plainStore implements GardenStore without SessionLister
type plainStore struct{}

func (plainStore) LoadSnapshot(context.Context, string) ([]byte, error) {
	return nil, domain.ErrGardenNotFound
}
func (plainStore) SaveSnapshot(context.Context, string, []byte) error { return nil }
func (plainStore) DeleteSnapshot(context.Context, string) error       { return nil }
func (plainStore) Ping(context.Context) error                         { return nil }

type failingLister struct{ plainStore }

func (failingLister) ListSessions(context.Context, int) ([]string, error) {
	return nil, errors.New("index unavailable")
}

func TestWarmSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("opens saved gardens", func(t *testing.T) {
		store, err := filestore.New(t.TempDir())
		require.NoError(t, err)

		state := garden.NewGardenState(time.Now())
		state.Money = 1234
		data, err := garden.EncodeSnapshot(state)
		require.NoError(t, err)
		require.NoError(t, store.SaveSnapshot(ctx, "alice", data))
		require.NoError(t, store.SaveSnapshot(ctx, "bob", data))
		require.NoError(t, store.SaveSnapshot(ctx, "broken", []byte(`{not json`)))

		svc := garden.NewService(store, event.NewMemoryBus(), garden.DefaultConfig())
		warmed, err := WarmSessions(ctx, store, svc, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, warmed)

		view, err := svc.View(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1234, view.Money)
	})

	t.Run("respects limit", func(t *testing.T) {
		store, err := filestore.New(t.TempDir())
		require.NoError(t, err)
		for i := range 3 {
			require.NoError(t, store.SaveSnapshot(ctx, fmt.Sprintf("s%d", i), []byte(`{}`)))
		}

		svc := mocks.NewMockGardenService(t)
		svc.On("Open", ctx, mock.Anything).Return(&garden.GardenView{}, nil).Twice()

		warmed, err := WarmSessions(ctx, store, svc, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, warmed)
	})

	t.Run("store without listing", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		warmed, err := WarmSessions(ctx, plainStore{}, svc, 10)
		require.NoError(t, err)
		assert.Zero(t, warmed)
	})

	t.Run("listing fails", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		_, err := WarmSessions(ctx, failingLister{}, svc, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedListSessions)
	})
}

func TestInitializeEventSystem(t *testing.T) {
	deadLetter := filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")
	bus, publisher, err := InitializeEventSystem(&config.Config{EventDeadLetterPath: deadLetter})
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	defer func() { _ = publisher.Shutdown(context.Background()) }()

	assert.DirExists(t, filepath.Dir(deadLetter))

	received := 0
	bus.Subscribe(event.GardenReset, func(context.Context, event.Event) error {
		received++
		return nil
	})
	require.NoError(t, publisher.Publish(context.Background(), event.NewGardenResetEvent("alice", time.Now())))
	assert.Equal(t, 1, received)
}

type fakeExecutor struct{}

func (fakeExecutor) WebhookExecute(string, string, bool, *discordgo.WebhookParams, ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{}, nil
}

type recordingQueue struct{ jobs []worker.Job }

func (q *recordingQueue) TryEnqueue(job worker.Job) bool {
	q.jobs = append(q.jobs, job)
	return true
}

func TestRegisterEventHandlers(t *testing.T) {
	harvest := domain.Notification{Kind: domain.NotificationHarvest, Title: "Harvested Carrot"}
	wilt := domain.Notification{Kind: domain.NotificationWilt, Title: "Wilted"}

	tests := []struct {
		name        string
		webhookURL  string
		kinds       []string
		wantErr     string
		wantQueued  int
		withSSE     bool
		wantClients bool
	}{
		{name: "no webhook", wantQueued: 0},
		{name: "webhook forwards all kinds", webhookURL: "https://discord.com/api/webhooks/1/tok", wantQueued: 2},
		{name: "webhook filters kinds", webhookURL: "https://discord.com/api/webhooks/1/tok", kinds: []string{"harvest"}, wantQueued: 1},
		{name: "invalid webhook", webhookURL: "not a url", wantErr: ErrMsgFailedCreateNotifier},
		{name: "with sse hub", withSSE: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := event.NewMemoryBus()
			queue := &recordingQueue{}
			deps := EventHandlerDependencies{
				EventBus: bus,
				Queue:    queue,
				Executor: fakeExecutor{},
				Config:   &config.Config{DiscordWebhookURL: tt.webhookURL, DiscordNotifyKinds: tt.kinds},
			}

			var client *sse.Client
			if tt.withSSE {
				hub := sse.NewHub()
				hub.Start()
				defer hub.Stop()
				deps.SSEHub = hub
				client = hub.Register(nil, "alice")
				require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
			}

			err := RegisterEventHandlers(deps)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			now := time.Now()
			require.NoError(t, bus.Publish(ctx, event.NewGardenNotificationEvent("alice", harvest, now)))
			require.NoError(t, bus.Publish(ctx, event.NewGardenNotificationEvent("alice", wilt, now)))
			assert.Len(t, queue.jobs, tt.wantQueued)

			if client != nil {
				select {
				case evt := <-client.EventChannel:
					assert.Equal(t, sse.EventTypeNotification, evt.Type)
					assert.Equal(t, "alice", evt.SessionID)
				case <-time.After(time.Second):
					t.Fatal("sse client received nothing")
				}
			}
		})
	}
}

type orderRecorder struct{ calls []string }

type fakeStopper struct {
	name string
	rec  *orderRecorder
}

func (f fakeStopper) Stop() { f.rec.calls = append(f.rec.calls, f.name) }

type fakeServer struct {
	rec *orderRecorder
	err error
}

func (f fakeServer) Stop(context.Context) error {
	f.rec.calls = append(f.rec.calls, "server")
	return f.err
}

type fakePublisher struct{ rec *orderRecorder }

func (f fakePublisher) Shutdown(context.Context) error {
	f.rec.calls = append(f.rec.calls, "publisher")
	return nil
}

func TestGracefulShutdown(t *testing.T) {
	rec := &orderRecorder{}

	svc := mocks.NewMockGardenService(t)
	svc.On("Shutdown", mock.Anything).Run(func(mock.Arguments) {
		rec.calls = append(rec.calls, "garden")
	}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	GracefulShutdown(ctx, ShutdownComponents{
		Server:             fakeServer{rec: rec, err: errors.New("deadline exceeded")},
		Scheduler:          fakeStopper{name: "scheduler", rec: rec},
		WorkerPool:         fakeStopper{name: "pool", rec: rec},
		GardenService:      svc,
		ResilientPublisher: fakePublisher{rec: rec},
		CloseStore:         func() { rec.calls = append(rec.calls, "store") },
	})

	assert.Equal(t, []string{"server", "scheduler", "pool", "garden", "publisher", "store"}, rec.calls)

	// The flush context must survive the expired shutdown deadline
	flushCtx := svc.Calls[0].Arguments.Get(0).(context.Context)
	assert.NoError(t, flushCtx.Err())
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 12 {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	require.Len(t, logs, LogFileRetentionCount)
	oldestKept := fmt.Sprintf(LogFileNamePattern, base.Add(3*time.Hour).Format(LogFileTimestampFormat))
	assert.Contains(t, logs, oldestKept)
	assert.FileExists(t, filepath.Join(dir, "event_deadletter.jsonl"))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	f, err := SetupLogger(&config.Config{LogDir: dir, LogLevel: "debug", LogFormat: "json", Environment: config.EnvironmentDev})
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "startup lines should be written to the log file")
}
