// Package statusstore implements the process-wide publish/subscribe status
// store of §4.1. It is grounded on two teacher patterns: the
// serialized per-job owner of a job's aggregate state
// (ste/jobStatusManager.go's handleStatusUpdateMessage), generalized here
// to run per job_id instead of per whole-job-part-set, and the
// register/unregister/broadcast hub with slow-subscriber handling that
// the azcopy grpcctl package's Subscribe/Unsubscribe/fireEvent triad
// models for fanning a single update out to N listeners.
package statusstore

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rishikanthc/scriberr-engine/internal/modelspec"
)

// subscriberBuffer is the bounded per-subscriber delivery queue size. A
// subscriber that falls this far behind has its oldest buffered update
// dropped to keep the publisher non-blocking, per §4.1's "buffered with a
// bounded queue" default policy.
const subscriberBuffer = 64

// Sink is the read side of a subscription: a channel of JobStatus values in
// publication order, closed once the terminal status has been delivered or
// the caller unsubscribes.
type Sink struct {
	id uuid.UUID
	ch chan modelspec.JobStatus
}

func (s *Sink) C() <-chan modelspec.JobStatus { return s.ch }

// jobActor owns one job_id's status and subscriber set. All access to a
// given jobActor holds its mutex, giving the "concurrent set calls for the
// same id are serialized" guarantee from §4.1; jobStatusManager.go gets the
// same serialization for a whole job's transfer counters from a single
// goroutine.
type jobActor struct {
	jobID string

	mu          sync.Mutex
	current     *modelspec.JobStatus
	subscribers map[uuid.UUID]chan modelspec.JobStatus
}

func newJobActor(jobID string) *jobActor {
	return &jobActor{jobID: jobID, subscribers: make(map[uuid.UUID]chan modelspec.JobStatus)}
}

func (a *jobActor) set(status modelspec.JobStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := status.Clone()
	a.current = &snapshot

	for id, ch := range a.subscribers {
		deliver(ch, snapshot)
		if status.State.Terminal() {
			close(ch)
			delete(a.subscribers, id)
		}
	}
}

func (a *jobActor) get() (modelspec.JobStatus, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return modelspec.JobStatus{}, false
	}
	return a.current.Clone(), true
}

func (a *jobActor) subscribe() *Sink {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch := make(chan modelspec.JobStatus, subscriberBuffer)
	id := uuid.New()
	a.subscribers[id] = ch

	if a.current != nil {
		snap := a.current.Clone()
		deliver(ch, snap)
		if snap.State.Terminal() {
			close(ch)
			delete(a.subscribers, id)
		}
	}

	return &Sink{id: id, ch: ch}
}

func (a *jobActor) unsubscribe(sink *Sink) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if ch, ok := a.subscribers[sink.id]; ok {
		delete(a.subscribers, sink.id)
		close(ch)
	}
}

// deliver is a non-blocking send that drops the oldest buffered update to
// make room rather than stall the publisher, satisfying §4.1's "a slow
// subscriber must not stall publishers".
func deliver(ch chan modelspec.JobStatus, status modelspec.JobStatus) {
	for {
		select {
		case ch <- status:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// Store is the process-wide status store (§4.1).
type Store struct {
	mu    sync.Mutex
	jobs  map[string]*jobActor
}

func New() *Store {
	return &Store{jobs: make(map[string]*jobActor)}
}

func (s *Store) actor(jobID string) *jobActor {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.jobs[jobID]
	if !ok {
		a = newJobActor(jobID)
		s.jobs[jobID] = a
	}
	return a
}

// Set atomically replaces the stored status for status.JobID and fans it
// out to every current subscriber of that id.
func (s *Store) Set(status modelspec.JobStatus) {
	s.actor(status.JobID).set(status)
}

// Get returns the latest stored status, or ok=false if none exists.
func (s *Store) Get(jobID string) (modelspec.JobStatus, bool) {
	s.mu.Lock()
	a, ok := s.jobs[jobID]
	s.mu.Unlock()
	if !ok {
		return modelspec.JobStatus{}, false
	}
	return a.get()
}

// Subscribe returns a new Sink for jobID. If a status already exists, it is
// delivered as the first element.
func (s *Store) Subscribe(jobID string) *Sink {
	return s.actor(jobID).subscribe()
}

// Unsubscribe removes sink from jobID's subscriber set. Idempotent.
func (s *Store) Unsubscribe(jobID string, sink *Sink) {
	s.mu.Lock()
	a, ok := s.jobs[jobID]
	s.mu.Unlock()
	if ok {
		a.unsubscribe(sink)
	}
}

// Reset clears all statuses and subscriber sets. Test-only per §4.1.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = make(map[string]*jobActor)
}
