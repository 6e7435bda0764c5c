package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxWidth    = 100
	defaultHistorySize = 10

	// history key string format
	historyKeyFmt = "%s:history:%s"
	historyPrefix = "maze"
)

var (
	ErrInvalidWidth    = errors.New("invalid maze width")
	ErrSessionNotFound = errors.New("maze session not found")
)

// MazeSessionConfig holds the collaborators of a MazeSessionManager.
type MazeSessionConfig struct {
	MazeFactory func(width int) (*maze.Grid, error)
	History     i.SortedQueue
	Reports     i.ReportRepo
	Logger      i.Logger

	// MaxWidth bounds the width a user may request. Defaults to 100.
	MaxWidth int

	// HistorySize is the number of recent mazes kept per owner. Defaults to 10.
	HistorySize int64
}

// MazeSessionManager generates mazes on request and keeps each user's most
// recent ones in memory. At most historySize sessions are held per owner,
// whatever the state of the Redis history.
type MazeSessionManager struct {
	sessions    map[uuid.UUID]*dmn.MazeSession
	owned       map[uuid.UUID][]uuid.UUID // Session ids per owner, oldest first
	mazeFactory func(int) (*maze.Grid, error)
	history     i.SortedQueue
	reports     i.ReportRepo
	logger      i.Logger
	maxWidth    int
	historySize int64
	sync.RWMutex
}

func NewMazeSessionManager(c *MazeSessionConfig) (*MazeSessionManager, error) {
	if c == nil || c.MazeFactory == nil || c.History == nil || c.Reports == nil || c.Logger == nil {
		return nil, errors.New("maze session manager requires a maze factory, history queue, report repository and logger")
	}

	m := &MazeSessionManager{
		sessions:    make(map[uuid.UUID]*dmn.MazeSession),
		owned:       make(map[uuid.UUID][]uuid.UUID),
		mazeFactory: c.MazeFactory,
		history:     c.History,
		reports:     c.Reports,
		logger:      c.Logger,
		maxWidth:    c.MaxWidth,
		historySize: c.HistorySize,
	}

	if m.maxWidth <= 0 {
		m.maxWidth = defaultMaxWidth
	}
	if m.maxWidth > maze.MaxWidth {
		m.maxWidth = maze.MaxWidth
	}
	if m.historySize <= 0 {
		m.historySize = defaultHistorySize
	}
	return m, nil
}

// NewSession generates, validates and solves a maze for owner, then records it
// in the owner's history and stores its report. Failing to record history or
// the report is logged and does not fail the request.
func (m *MazeSessionManager) NewSession(ctx context.Context, owner uuid.UUID, width int) (*dmn.MazeSession, error) {
	if width < 1 || width > m.maxWidth {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidWidth, m.maxWidth, width)
	}

	start := time.Now()
	grid, err := m.mazeFactory(width)
	if err != nil {
		m.logger.Error(fmt.Sprintf("generating maze of width %d: %s", width, err))
		return nil, err
	}
	elapsed := time.Since(start)

	if err := grid.Validate(); err != nil {
		m.logger.Error(fmt.Sprintf("generated maze is invalid: %s", err))
		return nil, err
	}

	path, err := grid.Solve()
	if err != nil {
		m.logger.Error(fmt.Sprintf("solving generated maze: %s", err))
		return nil, err
	}

	session := &dmn.MazeSession{
		ID:             uuid.New(),
		Owner:          owner,
		Grid:           grid,
		CreatedAt:      time.Now().UTC(),
		GenerationTime: elapsed,
	}
	m.saveSession(session)
	m.logger.
		WithField("maze", session.ID).
		WithField("owner", owner).
		WithField("width", width).
		WithField("elapsed", elapsed).
		Info("generated maze")

	m.recordHistory(ctx, session)

	report := &dmn.Report{
		ID:             uuid.New(),
		MazeID:         session.ID,
		OwnerID:        owner,
		Width:          width,
		Edges:          grid.EdgeCount(),
		PathLength:     len(path) - 1,
		GenerationTime: elapsed,
		CreatedAt:      session.CreatedAt,
	}
	if err := m.reports.Save(ctx, report); err != nil {
		m.logger.Warning(fmt.Sprintf("saving report for maze %s: %s", session.ID, err))
	}

	return session, nil
}

// Session returns the owner's session. Sessions of other users are reported
// as not found.
func (m *MazeSessionManager) Session(owner, id uuid.UUID) (*dmn.MazeSession, error) {
	m.RLock()
	defer m.RUnlock()

	session, ok := m.sessions[id]
	if !ok || session.Owner != owner {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (m *MazeSessionManager) Solve(owner, id uuid.UUID) ([]int, error) {
	session, err := m.Session(owner, id)
	if err != nil {
		return nil, err
	}
	return session.Grid.Solve()
}

// History returns the ids of the owner's most recent mazes, newest first.
// Members that are not valid ids are skipped.
func (m *MazeSessionManager) History(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error) {
	members, err := m.history.Members(ctx, historyKey(owner))
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			m.logger.Warning(fmt.Sprintf("skipping malformed history entry %q for %s", member, owner))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MazeSessionManager) Reports(ctx context.Context, owner uuid.UUID) ([]*dmn.Report, error) {
	return m.reports.ByOwner(ctx, owner, m.historySize)
}

// saveSession stores the session and drops the owner's oldest sessions
// beyond historySize.
func (m *MazeSessionManager) saveSession(session *dmn.MazeSession) {
	m.Lock()
	defer m.Unlock()
	m.sessions[session.ID] = session

	ids := append(m.owned[session.Owner], session.ID)
	if overflow := int64(len(ids)) - m.historySize; overflow > 0 {
		for _, id := range ids[:overflow] {
			delete(m.sessions, id)
		}
		ids = append([]uuid.UUID(nil), ids[overflow:]...)
	}
	m.owned[session.Owner] = ids
}

// forget removes a session and its place in the owner's list.
// The caller must hold the write lock.
func (m *MazeSessionManager) forget(id uuid.UUID) {
	session, ok := m.sessions[id]
	if !ok {
		return
	}
	delete(m.sessions, id)

	ids := m.owned[session.Owner]
	for idx, owned := range ids {
		if owned == id {
			ids = append(ids[:idx:idx], ids[idx+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(m.owned, session.Owner)
		return
	}
	m.owned[session.Owner] = ids
}

// recordHistory adds the session to its owner's history and evicts the oldest
// sessions once the history grows past its size. The in-memory bound kept by
// saveSession holds even when this fails.
func (m *MazeSessionManager) recordHistory(ctx context.Context, session *dmn.MazeSession) {
	key := historyKey(session.Owner)
	score := float64(session.CreatedAt.UnixNano())
	if err := m.history.Enqueue(ctx, key, score, session.ID.String()); err != nil {
		m.logger.Warning(fmt.Sprintf("recording history for maze %s: %s", session.ID, err))
		return
	}

	overflow := m.history.Count(ctx, key) - m.historySize
	if overflow <= 0 {
		return
	}

	evicted, err := m.history.DequeTops(ctx, key, overflow)
	if err != nil {
		m.logger.Warning(fmt.Sprintf("trimming history of %s: %s", session.Owner, err))
		return
	}

	m.Lock()
	defer m.Unlock()
	for _, member := range evicted {
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		m.forget(id)
	}
}

// Len returns the number of sessions held in memory.
func (m *MazeSessionManager) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

func historyKey(owner uuid.UUID) string {
	return fmt.Sprintf(historyKeyFmt, historyPrefix, owner)
}
