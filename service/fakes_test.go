package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

type scoredMember struct {
	score  float64
	member string
}

// memoryQueue is an in-memory SortedQueue.
type memoryQueue struct {
	mu         sync.Mutex
	queues     map[string][]scoredMember
	enqueueErr error
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{queues: make(map[string][]scoredMember)}
}

func (q *memoryQueue) Enqueue(_ context.Context, key string, score float64, member string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.enqueueErr != nil {
		return q.enqueueErr
	}

	entries := q.queues[key]
	entries = append(entries, scoredMember{score: score, member: member})
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].score < entries[b].score })
	q.queues[key] = entries
	return nil
}

func (q *memoryQueue) DequeTops(_ context.Context, key string, amount int64) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries := q.queues[key]
	if int64(len(entries)) < amount {
		return nil, nil
	}

	members := make([]string, 0, amount)
	for _, e := range entries[:amount] {
		members = append(members, e.member)
	}
	q.queues[key] = entries[amount:]
	return members, nil
}

func (q *memoryQueue) Count(_ context.Context, key string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.queues[key]))
}

func (q *memoryQueue) Members(_ context.Context, key string) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries := q.queues[key]
	members := make([]string, 0, len(entries))
	for idx := len(entries) - 1; idx >= 0; idx-- {
		members = append(members, entries[idx].member)
	}
	return members, nil
}

// memoryReports is an in-memory ReportRepo.
type memoryReports struct {
	mu      sync.Mutex
	reports []*dmn.Report
	saveErr error
}

func (r *memoryReports) Save(_ context.Context, report *dmn.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.reports = append(r.reports, report)
	return nil
}

func (r *memoryReports) ByOwner(_ context.Context, owner uuid.UUID, limit int64) ([]*dmn.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*dmn.Report
	for idx := len(r.reports) - 1; idx >= 0 && int64(len(result)) < limit; idx-- {
		if r.reports[idx].OwnerID == owner {
			result = append(result, r.reports[idx])
		}
	}
	return result, nil
}

// recordingLogger keeps every message by level and the last value of each field.
type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
	fields   map[string]interface{}
}

func (l *recordingLogger) WithField(key string, value interface{}) i.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fields == nil {
		l.fields = make(map[string]interface{})
	}
	l.fields[key] = value
	return l
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

// memoryUsers is an in-memory UserRepo.
type memoryUsers struct {
	byName map[string]*dmn.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byName: make(map[string]*dmn.User)}
}

func (r *memoryUsers) Save(user *dmn.User) error {
	if existing, ok := r.byName[user.Username]; ok && existing.ID != user.ID {
		return errors.New("username conflict")
	}
	r.byName[user.Username] = user
	return nil
}

func (r *memoryUsers) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *memoryUsers) ByUsername(username string) (*dmn.User, error) {
	u, ok := r.byName[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

// stubTokenizer records the claims it was asked to sign.
type stubTokenizer struct {
	claims  map[string]interface{}
	expTime time.Duration
	err     error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	s.claims = claims
	s.expTime = expTime
	if s.err != nil {
		return "", s.err
	}
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, nil
}
