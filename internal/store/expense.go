package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

const timestampField = "timestamp"

type expenseStore struct {
	client  *firestore.Client
	timeout time.Duration
}

func NewExpenseStore(client *firestore.Client, timeout time.Duration) *expenseStore {
	return &expenseStore{client: client, timeout: timeout}
}

func (s *expenseStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("expenses")
}

func (s *expenseStore) Append(ctx context.Context, uid string, e models.Expense) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	ref, _, err := s.collection(uid).Add(ctx, e)
	if err != nil {
		return "", storeError("append expense", "failed to add expense", err)
	}
	return ref.ID, nil
}

// QueryRange returns the user's expenses with startMs <= timestamp <= endMs,
// oldest first. endMs of zero leaves the range open. Documents that cannot be
// decoded are skipped like any other malformed record.
func (s *expenseStore) QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	q := s.collection(uid).Where(timestampField, ">=", startMs)
	if endMs > 0 {
		q = q.Where(timestampField, "<=", endMs)
	}

	iter := q.OrderBy(timestampField, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	log := logger.FromContext(ctx)
	var out []models.Expense
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError("query expenses", "failed to query expenses", err)
		}
		var e models.Expense
		if err := doc.DataTo(&e); err != nil {
			log.Debug("skipping undecodable expense", "expense_id", doc.Ref.ID, "error", err)
			continue
		}
		e.ID = doc.Ref.ID
		out = append(out, e)
	}
	return out, nil
}
