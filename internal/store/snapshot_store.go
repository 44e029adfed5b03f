package store

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/haatos/visual-ci/internal/graph"
)

type snapshotEntry struct {
	graph   graph.Graph
	expires time.Time
}

// SnapshotStore keeps the last graph snapshot per editing session so a
// reconnecting editor surface can recover its canvas. Memory only: losing
// snapshots on restart is acceptable, the editor holds the live copy.
type SnapshotStore struct {
	m       sync.Mutex
	ttl     time.Duration
	entries map[string]snapshotEntry
}

func NewSnapshotStore(ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{
		ttl:     ttl,
		entries: make(map[string]snapshotEntry),
	}
}

func (ss *SnapshotStore) ScheduleDailyCleanUp(s gocron.Scheduler) {
	if _, err := s.NewJob(gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))), gocron.NewTask(func() {
		ss.RemoveExpired()
	})); err != nil {
		log.Fatal(err)
	}
}

// SetTTL changes the lifetime applied to snapshots stored from now on;
// already stored entries keep their original expiry.
func (ss *SnapshotStore) SetTTL(ttl time.Duration) {
	ss.m.Lock()
	defer ss.m.Unlock()
	ss.ttl = ttl
}

func (ss *SnapshotStore) Put(sessionID string, g graph.Graph) {
	ss.m.Lock()
	defer ss.m.Unlock()
	ss.entries[sessionID] = snapshotEntry{graph: g, expires: time.Now().Add(ss.ttl)}
}

func (ss *SnapshotStore) Get(sessionID string) (graph.Graph, bool) {
	ss.m.Lock()
	defer ss.m.Unlock()
	entry, ok := ss.entries[sessionID]
	if !ok || time.Now().After(entry.expires) {
		return graph.Graph{}, false
	}
	return entry.graph, true
}

func (ss *SnapshotStore) Remove(sessionID string) {
	ss.m.Lock()
	defer ss.m.Unlock()
	delete(ss.entries, sessionID)
}

func (ss *SnapshotStore) RemoveExpired() {
	ss.m.Lock()
	defer ss.m.Unlock()
	now := time.Now()
	for id, entry := range ss.entries {
		if now.After(entry.expires) {
			delete(ss.entries, id)
		}
	}
}
