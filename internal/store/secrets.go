package store

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
)

type secretVersionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
}

type secretStore struct {
	client    secretVersionAccessor
	projectID string
}

func NewSecretStore(client secretVersionAccessor, projectID string) *secretStore {
	return &secretStore{client: client, projectID: projectID}
}

// versionName accepts either a bare secret id or a full resource name, with or
// without a version. Missing parts default to this project and "latest".
func (s *secretStore) versionName(secret string) string {
	name := secret
	if !strings.HasPrefix(name, "projects/") {
		name = fmt.Sprintf("projects/%s/secrets/%s", s.projectID, secret)
	}
	if !strings.Contains(name, "/versions/") {
		name += "/versions/latest"
	}
	return name
}

func (s *secretStore) GetSecret(ctx context.Context, secret string) (string, error) {
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: s.versionName(secret),
	})
	if err != nil {
		return "", storeError("access secret", "failed to access secret", err)
	}
	return string(res.GetPayload().GetData()), nil
}
