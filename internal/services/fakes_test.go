package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

func testLogger() *slog.Logger {
	return logger.New("", logger.NewTestHandler)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func offline() error {
	return errs.NewUnavailableError("query", errors.New("rpc error: code = Unavailable"))
}

type putCall struct {
	uid    string
	fields map[string]any
	merge  bool
}

// memStore is an in-memory record store shared by the service tests.
type memStore struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
	expenses map[string][]models.Expense
	puts     []putCall
	nextID   int

	getErr    error
	putErr    error
	appendErr error
	queryErr  error
	queries   [][2]int64
}

func newMemStore() *memStore {
	return &memStore{
		profiles: map[string]*models.Profile{},
		expenses: map[string][]models.Expense{},
	}
}

func (m *memStore) GetProfile(_ context.Context, uid string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.profiles[uid]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) PutProfile(_ context.Context, uid string, fields map[string]any, merge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts = append(m.puts, putCall{uid: uid, fields: fields, merge: merge})
	if m.putErr != nil {
		return m.putErr
	}

	p := &models.Profile{}
	if existing, ok := m.profiles[uid]; ok && merge {
		cp := *existing
		p = &cp
	}
	for k, v := range fields {
		switch k {
		case models.ProfileFieldUsername:
			p.Username = v.(string)
		case models.ProfileFieldEmail:
			p.Email = v.(string)
		case models.ProfileFieldBudget:
			p.Budget = v.(float64)
		case models.ProfileFieldPreviousBudget:
			p.PreviousBudget = v.(float64)
		case models.ProfileFieldLastBudgetMonth:
			if month, ok := v.(*int); ok && month != nil {
				m := *month
				p.LastBudgetMonth = &m
			} else {
				p.LastBudgetMonth = nil
			}
		default:
			return fmt.Errorf("unexpected field %q", k)
		}
	}
	m.profiles[uid] = p
	return nil
}

func (m *memStore) Append(_ context.Context, uid string, e models.Expense) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return "", m.appendErr
	}
	m.nextID++
	e.ID = fmt.Sprintf("e%d", m.nextID)
	m.expenses[uid] = append(m.expenses[uid], e)
	return e.ID, nil
}

func (m *memStore) QueryRange(_ context.Context, uid string, startMs, endMs int64) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, [2]int64{startMs, endMs})
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []models.Expense
	for _, e := range m.expenses[uid] {
		if e.Timestamp < startMs || (endMs > 0 && e.Timestamp > endMs) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memStore) seed(uid string, records ...models.Expense) {
	m.expenses[uid] = append(m.expenses[uid], records...)
}

func ms(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}
