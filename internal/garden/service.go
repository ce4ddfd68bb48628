package garden

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/concurrency"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/event"
	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/metrics"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// Service hosts garden sessions. Each session has exactly one writer at a
// time; every mutation is persisted as a full snapshot.
type Service interface {
	Open(ctx context.Context, sessionID string) (*GardenView, error)
	View(ctx context.Context, sessionID string) (*GardenView, error)

	Plant(ctx context.Context, sessionID, plotID, seedID string) (*ActionResult, error)
	Water(ctx context.Context, sessionID, plotID string) (*ActionResult, error)
	Harvest(ctx context.Context, sessionID, plotID string) (*ActionResult, error)
	BuySeed(ctx context.Context, sessionID, seedID string) (*ActionResult, error)
	BuyGear(ctx context.Context, sessionID, gearID string) (*ActionResult, error)
	ExchangeXP(ctx context.Context, sessionID string, amount int) (*ActionResult, error)
	CreditXP(ctx context.Context, sessionID string, amount int) (*ActionResult, error)
	Dispatch(ctx context.Context, sessionID string, action Action) (*ActionResult, error)

	TickAll(ctx context.Context) error
	Reset(ctx context.Context, sessionID string) error
	Shutdown(ctx context.Context) error
}

// Publisher delivers garden events. *event.ResilientPublisher and
// *event.MemoryBus both satisfy it.
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// ActionResult is returned by every successful action
type ActionResult struct {
	Garden        *GardenView           `json:"garden"`
	Notifications []domain.Notification `json:"notifications"`
	Harvest       *HarvestResult        `json:"harvest,omitempty"`
	// Persisted is false when the snapshot write failed twice; the
	// in-memory garden is still current and will be written again later.
	Persisted bool `json:"persisted"`
}

// Config tunes the session cache and persistence
type Config struct {
	CacheSize    int
	CacheTTL     time.Duration
	PersistRetry time.Duration
}

// DefaultConfig returns the service defaults
func DefaultConfig() Config {
	return Config{
		CacheSize:    DefaultSessionCacheSize,
		CacheTTL:     DefaultSessionCacheTTL,
		PersistRetry: DefaultPersistRetry,
	}
}

type service struct {
	store     repository.GardenStore
	publisher Publisher
	engine    *Engine
	restocker *Restocker
	reducer   *Reducer
	cache     *sessionCache
	locks     *concurrency.LockManager
	cfg       Config
	now       func() time.Time // For testing

	// parked holds sessions the cache evicted before their latest state
	// reached the store. They are handed back on next access and written
	// again by TickAll and Shutdown.
	parkedMu sync.Mutex
	parked   map[string]*session
}

// NewService creates a new garden service
func NewService(store repository.GardenStore, publisher Publisher, cfg Config) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultSessionCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultSessionCacheTTL
	}

	engine := NewEngine(nil)
	restocker := NewRestocker(nil)
	s := &service{
		store:     store,
		publisher: publisher,
		engine:    engine,
		restocker: restocker,
		reducer:   NewReducer(engine, restocker, nil),
		locks:     concurrency.NewLockManager(),
		cfg:       cfg,
		now:       time.Now,
		parked:    make(map[string]*session),
	}
	s.cache = newSessionCache(cfg.CacheSize, cfg.CacheTTL, s.onEvict)
	return s
}

// onEvict runs under the cache's own lock, so it must not call back into
// the cache.
func (s *service) onEvict(sessionID string, sess *session) {
	if !sess.dirty.Load() {
		return
	}
	s.parkedMu.Lock()
	s.parked[sessionID] = sess
	n := len(s.parked)
	s.parkedMu.Unlock()
	logger.Warn(LogMsgEvictedUnsaved, logger.AttrKeySessionID, sessionID, "parked", n)
}

func (s *service) unpark(sessionID string) (*session, bool) {
	s.parkedMu.Lock()
	defer s.parkedMu.Unlock()
	sess, ok := s.parked[sessionID]
	delete(s.parked, sessionID)
	return sess, ok
}

func (s *service) parkedIDs() []string {
	s.parkedMu.Lock()
	defer s.parkedMu.Unlock()
	ids := make([]string, 0, len(s.parked))
	for id := range s.parked {
		ids = append(ids, id)
	}
	return ids
}

// keepDirty re-adds a session whose write just failed, restarting its TTL.
// An entry evicted while clean (and only then marked dirty) comes back this
// way. Callers must hold the session lock.
func (s *service) keepDirty(sessionID string, sess *session) {
	if sess.dirty.Load() {
		s.cache.Set(sessionID, sess)
	}
}

// flushParked writes one parked session, returning it to the parked table
// when the write fails again. Callers must hold the session lock.
func (s *service) flushParked(ctx context.Context, sessionID string) {
	sess, ok := s.unpark(sessionID)
	if !ok || s.cache.Contains(sessionID) {
		return
	}
	if s.persist(ctx, sessionID, sess.state) {
		sess.dirty.Store(false)
		logger.FromContext(ctx).Info(LogMsgParkedSaved)
		return
	}
	s.parkedMu.Lock()
	s.parked[sessionID] = sess
	s.parkedMu.Unlock()
}

// Open loads (or creates) a garden and stocks its shops
func (s *service) Open(ctx context.Context, sessionID string) (*GardenView, error) {
	return s.View(ctx, sessionID)
}

// View returns the derived read model of a garden, opening it if needed
func (s *service) View(ctx context.Context, sessionID string) (*GardenView, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	ctx = logger.WithSessionID(ctx, sessionID)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := NewGardenView(s.engine, sessionID, sess.state, s.now())
	return &view, nil
}

// loadSession returns the cached session or loads it from the store.
// Callers must hold the session lock.
func (s *service) loadSession(ctx context.Context, sessionID string) (*session, error) {
	if sess, ok := s.cache.Get(sessionID); ok {
		return sess, nil
	}

	log := logger.FromContext(ctx)
	if sess, ok := s.unpark(sessionID); ok {
		log.Info(LogMsgSessionUnparked, "xp", sess.state.XP, "money", sess.state.Money)
		s.cache.Set(sessionID, sess)
		return sess, nil
	}

	now := s.now()

	var state domain.GardenState
	created := false
	data, err := s.store.LoadSnapshot(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrGardenNotFound):
		state = NewGardenState(now)
		created = true
	case err != nil:
		return nil, fmt.Errorf("failed to load garden: %w", err)
	default:
		state, err = DecodeSnapshot(data, now)
		if err != nil {
			log.Error(LogMsgSnapshotDecodeErr, "error", err)
			return nil, err
		}
	}

	// Cold start: stock both shops without moving the restock deadlines
	state, _, err = s.reducer.Apply(state, Restock{}, now)
	if err != nil {
		return nil, err
	}

	sess := &session{state: state}
	if created {
		sess.dirty.Store(!s.persist(ctx, sessionID, state))
		log.Info(LogMsgSessionCreated, "money", state.Money, "grid_size", state.GridSize)
	} else {
		log.Info(LogMsgSessionOpened, "money", state.Money, "xp", state.XP, "grid_size", state.GridSize)
	}

	s.cache.Set(sessionID, sess)
	metrics.GardenSessionsCached.Set(float64(s.cache.Len()))
	return sess, nil
}

// Plant plants an owned seed into an empty plot
func (s *service) Plant(ctx context.Context, sessionID, plotID, seedID string) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, PlantSeed{PlotID: plotID, SeedID: seedID})
}

// Water waters the plant in a plot
func (s *service) Water(ctx context.Context, sessionID, plotID string) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, WaterPlant{PlotID: plotID})
}

// Harvest harvests a ready plant
func (s *service) Harvest(ctx context.Context, sessionID, plotID string) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, HarvestPlant{PlotID: plotID})
}

// BuySeed buys a seed listing
func (s *service) BuySeed(ctx context.Context, sessionID, seedID string) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, BuySeed{SeedID: seedID})
}

// BuyGear buys a gear listing
func (s *service) BuyGear(ctx context.Context, sessionID, gearID string) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, BuyGear{GearID: gearID})
}

// ExchangeXP converts XP into coins
func (s *service) ExchangeXP(ctx context.Context, sessionID string, amount int) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, ExchangeXP{Amount: amount})
}

// CreditXP adds XP earned elsewhere (lessons, quizzes)
func (s *service) CreditXP(ctx context.Context, sessionID string, amount int) (*ActionResult, error) {
	return s.Dispatch(ctx, sessionID, CreditXP{Amount: amount})
}

// Dispatch applies one action to a session under its lock, then persists
// and publishes the outcome.
func (s *service) Dispatch(ctx context.Context, sessionID string, action Action) (*ActionResult, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	ctx = logger.WithSessionID(ctx, sessionID)
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	prev := sess.state
	next, out, err := s.reducer.Apply(prev, action, now)
	if err != nil {
		metrics.GardenActions.WithLabelValues(action.Name(), ResultRejected).Inc()
		log.Info(LogMsgActionRejected, "action", action.Name(), "reason", err.Error())
		return nil, err
	}
	metrics.GardenActions.WithLabelValues(action.Name(), ResultApplied).Inc()

	if out.Changed {
		sess.state = next
		sess.dirty.Store(!s.persist(ctx, sessionID, next))
		s.cache.Set(sessionID, sess)
		recordBusinessMetrics(action, prev, next, out)
		s.publish(ctx, sessionID, action.Name(), next, out, now)
	}

	log.Info(LogMsgActionApplied, "action", action.Name(), "money", next.Money, "xp", next.XP)

	view := NewGardenView(s.engine, sessionID, sess.state, now)
	return &ActionResult{
		Garden:        &view,
		Notifications: out.Notifications,
		Harvest:       out.Harvest,
		Persisted:     !sess.dirty.Load(),
	}, nil
}

// TickAll applies the background checks (restock + wilt) to every cached
// session. Sessions whose last write failed are written again.
func (s *service) TickAll(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.GardenTickDuration.Observe(time.Since(start).Seconds())
		metrics.GardenSessionsCached.Set(float64(s.cache.Len()))
	}()

	for _, sessionID := range s.cache.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.tickSession(logger.WithSessionID(ctx, sessionID), sessionID)
	}
	for _, sessionID := range s.parkedIDs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.withLock(sessionID, func() {
			s.flushParked(logger.WithSessionID(ctx, sessionID), sessionID)
		})
	}
	return nil
}

func (s *service) withLock(sessionID string, fn func()) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()
	fn()
}

func (s *service) tickSession(ctx context.Context, sessionID string) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	// Sessions evicted since Keys() was taken stay evicted
	sess, ok := s.cache.Get(sessionID)
	if !ok {
		return
	}

	now := s.now()
	next, out, err := s.reducer.Apply(sess.state, Tick{}, now)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgTickFailed, "error", err)
		return
	}

	if out.Changed {
		sess.state = next
		sess.dirty.Store(!s.persist(ctx, sessionID, next))
		s.keepDirty(sessionID, sess)
		s.publish(ctx, sessionID, ActionTick, next, out, now)
		return
	}
	if sess.dirty.Load() {
		sess.dirty.Store(!s.persist(ctx, sessionID, sess.state))
		s.keepDirty(sessionID, sess)
	}
}

// Reset deletes a garden. The next access starts a brand new one.
func (s *service) Reset(ctx context.Context, sessionID string) error {
	if err := ValidateSessionID(sessionID); err != nil {
		return err
	}
	ctx = logger.WithSessionID(ctx, sessionID)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.store.DeleteSnapshot(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete garden: %w", err)
	}
	s.cache.Remove(sessionID)
	s.unpark(sessionID)
	metrics.GardenSessionsCached.Set(float64(s.cache.Len()))

	now := s.now()
	if err := s.publisher.Publish(ctx, event.NewGardenResetEvent(sessionID, now)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", event.GardenReset, "error", err)
	}
	logger.FromContext(ctx).Info(LogMsgSessionReset)
	return nil
}

// Shutdown writes every cached session once, then every parked one
func (s *service) Shutdown(ctx context.Context) error {
	keys := s.cache.Keys()
	parked := s.parkedIDs()
	logger.FromContext(ctx).Info(LogMsgShuttingDown, "sessions", len(keys), "parked", len(parked))

	for _, sessionID := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.flush(logger.WithSessionID(ctx, sessionID), sessionID)
	}
	for _, sessionID := range parked {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.withLock(sessionID, func() {
			s.flushParked(logger.WithSessionID(ctx, sessionID), sessionID)
		})
	}
	return nil
}

func (s *service) flush(ctx context.Context, sessionID string) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if sess, ok := s.cache.Get(sessionID); ok {
		sess.dirty.Store(!s.persist(ctx, sessionID, sess.state))
	}
}

// persist writes the snapshot, retrying once after cfg.PersistRetry.
// It reports whether the write eventually succeeded. Failures never roll
// back the in-memory state.
func (s *service) persist(ctx context.Context, sessionID string, state domain.GardenState) bool {
	log := logger.FromContext(ctx)

	data, err := EncodeSnapshot(state)
	if err != nil {
		log.Error(LogMsgPersistFailed, "error", err)
		metrics.GardenPersistFailures.Inc()
		return false
	}

	// A client hanging up must not abort the write
	ctx = context.WithoutCancel(ctx)

	err = s.store.SaveSnapshot(ctx, sessionID, data)
	if err == nil {
		return true
	}
	log.Warn(LogMsgPersistRetry, "error", err)

	if s.cfg.PersistRetry > 0 {
		time.Sleep(s.cfg.PersistRetry)
	}
	if err = s.store.SaveSnapshot(ctx, sessionID, data); err != nil {
		log.Error(LogMsgPersistFailed, "error", err)
		metrics.GardenPersistFailures.Inc()
		return false
	}
	return true
}

func (s *service) publish(ctx context.Context, sessionID, action string, state domain.GardenState, out Outcome, now time.Time) {
	log := logger.FromContext(ctx)

	for _, n := range out.Notifications {
		if err := s.publisher.Publish(ctx, event.NewGardenNotificationEvent(sessionID, n, now)); err != nil {
			log.Warn(LogMsgPublishFailed, "event_type", event.GardenNotification, "error", err)
		}
	}
	if err := s.publisher.Publish(ctx, event.NewGardenUpdatedEvent(sessionID, action, state, now)); err != nil {
		log.Warn(LogMsgPublishFailed, "event_type", event.GardenUpdated, "error", err)
	}
}

func recordBusinessMetrics(action Action, prev, next domain.GardenState, out Outcome) {
	if out.Harvest != nil {
		metrics.GardenHarvests.WithLabelValues(string(out.Harvest.Variant)).Inc()
	}
	if a, ok := action.(ExchangeXP); ok {
		metrics.GardenXPExchanged.Add(float64(a.Amount))
	}

	switch delta := next.Money - prev.Money; {
	case delta > 0:
		metrics.GardenCoinsEarned.Add(float64(delta))
	case delta < 0:
		metrics.GardenCoinsSpent.Add(float64(-delta))
	}
}
