package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore falls back to the project of the ambient credentials when
// projectID is empty.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	return firestore.NewClient(ctx, projectID)
}
