package manager

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/internal/worker"
	"github.com/quick-xyz/indexer-sub001/pkg/backoff"
	"go.uber.org/zap"
)

// Config tunes the supervisor.
type Config struct {
	// Workers is the initial pool size.
	Workers int
	// HeartbeatTimeout is how long a running worker may stay silent before it
	// is treated as hung and killed.
	HeartbeatTimeout time.Duration
	// MonitorInterval paces the stale-heartbeat and restart sweeps.
	MonitorInterval time.Duration
	// RestartBackoffBase and RestartBackoffCap bound the delay between
	// consecutive restarts of the same slot.
	RestartBackoffBase time.Duration
	RestartBackoffCap  time.Duration
	// ShutdownTimeout is how long Run waits for workers to exit after a stop
	// signal before force-killing them.
	ShutdownTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.HeartbeatTimeout <= 0 {
		c.HeartbeatTimeout = 30 * time.Second
	}
	if c.MonitorInterval <= 0 {
		c.MonitorInterval = 2 * time.Second
	}
	if c.RestartBackoffBase <= 0 {
		c.RestartBackoffBase = time.Second
	}
	if c.RestartBackoffCap <= 0 {
		c.RestartBackoffCap = time.Minute
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
}

// slot is one supervised worker position. The pool is a fixed set of slots;
// a crashed slot keeps its identity and restart history across respawns.
type slot struct {
	id            int
	workerID      string
	proc          Process
	state         model.WorkerState
	lastHeartbeat time.Time
	jobsProcessed uint64
	restarts      uint32
	nextRestartAt time.Time
	draining      bool
}

type event struct {
	slot    int
	hb      *worker.Heartbeat
	exited  bool
	exitErr error
}

// Manager supervises a pool of worker processes.
type Manager struct {
	cfg      Config
	launcher Launcher
	metrics  ManagerMetrics
	logger   *zap.Logger

	mu       sync.Mutex
	slots    map[int]*slot
	nextSlot int

	events chan event

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a Manager. Call Run to start supervising.
func New(cfg Config, launcher Launcher, metrics ManagerMetrics, logger *zap.Logger) *Manager {
	cfg.applyDefaults()
	return &Manager{
		cfg:      cfg,
		launcher: launcher,
		metrics:  metrics,
		logger:   logger,
		slots:    make(map[int]*slot),
		events:   make(chan event, 64),
		now:      time.Now,
	}
}

// Run spawns the initial pool and supervises it until ctx is canceled, then
// drains: workers get a stop signal and ShutdownTimeout to exit before being
// killed. Run returns once every supervised process has exited.
func (m *Manager) Run(ctx context.Context) error {
	m.mu.Lock()
	for i := 0; i < m.cfg.Workers; i++ {
		m.addSlotLocked(ctx, "start")
	}
	m.mu.Unlock()
	m.publishRunning()

	ticker := time.NewTicker(m.cfg.MonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("stopping worker pool")
			return m.drain()
		case ev := <-m.events:
			m.handleEvent(ev)
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

// Scale resizes the pool to n workers. Growing spawns immediately; shrinking
// signals the highest-numbered slots to finish their current job and exit.
func (m *Manager) Scale(ctx context.Context, n int) {
	if n < 0 {
		n = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.activeSlotsLocked()
	for len(active) < n {
		s := m.addSlotLocked(ctx, "scale")
		active = append(active, s)
	}
	if len(active) > n {
		sort.Slice(active, func(i, j int) bool { return active[i].id < active[j].id })
		for _, s := range active[n:] {
			s.draining = true
			if s.proc != nil && !terminal(s.state) {
				s.state = model.WorkerStopping
				if err := s.proc.Stop(); err != nil {
					m.logger.Warn("stop worker", zap.String("worker_id", s.workerID), zap.Error(err))
				}
			} else {
				// Nothing running in this slot; retire it immediately.
				delete(m.slots, s.id)
			}
		}
	}
	m.logger.Info("scaled worker pool", zap.Int("target", n))
}

// Snapshot reports the current state of every live slot, ordered by slot id.
func (m *Manager) Snapshot() []model.WorkerSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, 0, len(m.slots))
	for id := range m.slots {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]model.WorkerSnapshot, 0, len(ids))
	for _, id := range ids {
		s := m.slots[id]
		out = append(out, model.WorkerSnapshot{
			ID:            s.workerID,
			State:         s.state,
			LastHeartbeat: s.lastHeartbeat,
			JobsProcessed: s.jobsProcessed,
			Restarts:      s.restarts,
		})
	}
	return out
}

func (m *Manager) addSlotLocked(ctx context.Context, reason string) *slot {
	s := &slot{id: m.nextSlot, state: model.WorkerStarting}
	m.nextSlot++
	m.slots[s.id] = s
	m.spawnLocked(ctx, s, reason)
	return s
}

func (m *Manager) spawnLocked(ctx context.Context, s *slot, reason string) {
	s.workerID = fmt.Sprintf("worker-%d-%s", s.id, uuid.NewString()[:8])
	proc, err := m.launcher.Launch(ctx, s.workerID)
	if err != nil {
		s.state = model.WorkerCrashed
		s.nextRestartAt = m.now().Add(backoff.Delay(m.cfg.RestartBackoffBase, m.cfg.RestartBackoffCap, int(s.restarts)))
		s.restarts++
		m.logger.Error("spawn worker", zap.String("worker_id", s.workerID), zap.Error(err))
		return
	}
	s.proc = proc
	s.state = model.WorkerStarting
	s.lastHeartbeat = m.now()
	m.metrics.ObserveSpawn(reason)
	m.logger.Info("spawned worker",
		zap.String("worker_id", s.workerID),
		zap.String("reason", reason))
	go m.pump(s.id, proc)
}

// pump forwards one process's heartbeats into the supervision loop and
// reports its exit. One pump goroutine lives per spawn.
func (m *Manager) pump(slotID int, proc Process) {
	for hb := range proc.Heartbeats() {
		hb := hb
		m.events <- event{slot: slotID, hb: &hb}
	}
	err := <-proc.Exited()
	m.events <- event{slot: slotID, exited: true, exitErr: err}
}

func (m *Manager) handleEvent(ev event) {
	m.mu.Lock()
	s, ok := m.slots[ev.slot]
	if !ok {
		m.mu.Unlock()
		return
	}

	switch {
	case ev.hb != nil:
		if terminal(s.state) {
			break
		}
		s.lastHeartbeat = m.now()
		s.jobsProcessed = ev.hb.JobsProcessed
		if s.state == model.WorkerStarting {
			s.state = model.WorkerRunning
		}
	case ev.exited:
		s.proc = nil
		if s.draining || s.state == model.WorkerStopping {
			s.state = model.WorkerStopped
			m.logger.Info("worker exited", zap.String("worker_id", s.workerID))
			if s.draining {
				delete(m.slots, s.id)
			}
			break
		}
		s.state = model.WorkerCrashed
		s.nextRestartAt = m.now().Add(backoff.Delay(m.cfg.RestartBackoffBase, m.cfg.RestartBackoffCap, int(s.restarts)))
		s.restarts++
		m.metrics.ObserveCrash()
		m.logger.Warn("worker crashed",
			zap.String("worker_id", s.workerID),
			zap.Error(ev.exitErr))
	}
	m.mu.Unlock()
	m.publishRunning()
}

// sweep kills heartbeat-stale workers and restarts crashed slots whose
// backoff has elapsed.
func (m *Manager) sweep(ctx context.Context) {
	now := m.now()

	m.mu.Lock()
	for _, s := range m.slots {
		switch s.state {
		case model.WorkerRunning, model.WorkerStarting:
			if now.Sub(s.lastHeartbeat) > m.cfg.HeartbeatTimeout {
				m.logger.Warn("worker heartbeat stale, killing",
					zap.String("worker_id", s.workerID),
					zap.Duration("silent_for", now.Sub(s.lastHeartbeat)))
				if err := s.proc.Kill(); err != nil {
					m.logger.Error("kill worker", zap.String("worker_id", s.workerID), zap.Error(err))
				}
				// The exit event finishes the crash bookkeeping.
			}
		case model.WorkerCrashed:
			if !s.draining && !now.Before(s.nextRestartAt) {
				m.spawnLocked(ctx, s, "restart")
			}
		}
	}
	m.mu.Unlock()
	m.publishRunning()
}

// drain stops every live worker and waits for their exits, killing whatever
// is still alive when ShutdownTimeout elapses.
func (m *Manager) drain() error {
	m.mu.Lock()
	for _, s := range m.slots {
		s.draining = true
		if s.proc != nil {
			s.state = model.WorkerStopping
			if err := s.proc.Stop(); err != nil {
				m.logger.Warn("stop worker", zap.String("worker_id", s.workerID), zap.Error(err))
			}
		}
	}
	m.mu.Unlock()

	deadline := time.NewTimer(m.cfg.ShutdownTimeout)
	defer deadline.Stop()

	for m.liveCount() > 0 {
		select {
		case ev := <-m.events:
			m.handleEvent(ev)
		case <-deadline.C:
			m.killSurvivors()
		}
	}
	m.metrics.SetRunning(0)
	m.logger.Info("worker pool stopped")
	return nil
}

func (m *Manager) killSurvivors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.slots {
		if s.proc != nil {
			m.logger.Warn("worker did not exit in time, killing", zap.String("worker_id", s.workerID))
			if err := s.proc.Kill(); err != nil {
				m.logger.Error("kill worker", zap.String("worker_id", s.workerID), zap.Error(err))
			}
		}
	}
}

func (m *Manager) liveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.slots {
		if s.proc != nil {
			n++
		}
	}
	return n
}

func (m *Manager) publishRunning() {
	m.mu.Lock()
	n := 0
	for _, s := range m.slots {
		if s.state == model.WorkerRunning || s.state == model.WorkerStarting {
			n++
		}
	}
	m.mu.Unlock()
	m.metrics.SetRunning(n)
}

// activeSlotsLocked returns slots that are not draining toward removal.
func (m *Manager) activeSlotsLocked() []*slot {
	out := make([]*slot, 0, len(m.slots))
	for _, s := range m.slots {
		if !s.draining {
			out = append(out, s)
		}
	}
	return out
}

func terminal(st model.WorkerState) bool {
	return st == model.WorkerStopping || st == model.WorkerStopped
}
