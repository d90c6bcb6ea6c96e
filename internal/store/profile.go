package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/budget-backend/internal/models"
)

type profileStore struct {
	Collection *firestore.CollectionRef
	timeout    time.Duration
}

func NewProfileStore(client *firestore.Client, timeout time.Duration) *profileStore {
	return &profileStore{
		Collection: client.Collection("users"),
		timeout:    timeout,
	}
}

// GetProfile returns nil, nil when the user has no profile document yet.
func (s *profileStore) GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := s.Collection.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, storeError("get profile", "failed to get profile", err)
	}

	var p models.Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, storeError("get profile", "failed to parse profile data", err)
	}
	return &p, nil
}

// PutProfile writes fields to the profile document. With merge the other
// fields are kept; without it the document is replaced.
func (s *profileStore) PutProfile(ctx context.Context, uid string, fields map[string]any, merge bool) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var err error
	if merge {
		_, err = s.Collection.Doc(uid).Set(ctx, fields, firestore.MergeAll)
	} else {
		_, err = s.Collection.Doc(uid).Set(ctx, fields)
	}
	if err != nil {
		return storeError("put profile", "failed to write profile", err)
	}
	return nil
}
