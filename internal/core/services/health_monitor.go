package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// HealthStatus is the last backend probe result
type HealthStatus struct {
	Reachable bool          `json:"reachable"`
	Latency   time.Duration `json:"latency_ns"`
	CheckedAt time.Time     `json:"checked_at"`
	Error     string        `json:"error,omitempty"`
}

// Pending reports that no probe has finished yet
func (s HealthStatus) Pending() bool { return s.CheckedAt.IsZero() }

// HealthMonitor probes the backend on a cron schedule
type HealthMonitor struct {
	pinger  Pinger
	spec    string
	timeout time.Duration
	cron    *cron.Cron

	mu     sync.RWMutex
	status HealthStatus
}

// NewHealthMonitor creates a monitor running on spec, e.g. "@every 30s"
func NewHealthMonitor(pinger Pinger, spec string, timeout time.Duration) *HealthMonitor {
	if spec == "" {
		spec = "@every 30s"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthMonitor{
		pinger:  pinger,
		spec:    spec,
		timeout: timeout,
		cron:    cron.New(),
	}
}

// Start probes once and then schedules the job
func (m *HealthMonitor) Start() error {
	if _, err := m.cron.AddFunc(m.spec, func() { m.Check(context.Background()) }); err != nil {
		return err
	}
	go m.Check(context.Background())
	m.cron.Start()
	log.Printf("🚀 Backend health monitor started (%s)", m.spec)
	return nil
}

// Stop waits for a running probe to finish
func (m *HealthMonitor) Stop() {
	<-m.cron.Stop().Done()
	log.Println("🛑 Backend health monitor stopped")
}

// Check probes the backend now and records the result
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	err := m.pinger.Ping(ctx)
	st := HealthStatus{
		Reachable: err == nil,
		Latency:   time.Since(start),
		CheckedAt: time.Now(),
	}
	if err != nil {
		st.Error = err.Error()
	}

	m.mu.Lock()
	wasReachable := m.status.Reachable || m.status.CheckedAt.IsZero()
	m.status = st
	m.mu.Unlock()

	if err != nil && wasReachable {
		log.Printf("⚠️ Backend unreachable: %v", err)
	} else if err == nil && !wasReachable {
		log.Printf("✅ Backend reachable again (%s)", st.Latency)
	}
	return st
}

// Status returns the last probe result. CheckedAt is zero before the first probe.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
