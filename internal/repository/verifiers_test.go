package repository_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/postgrest-go"

	"poi-backend/internal/repository"
)

func newVerifierRepo(t *testing.T, store *fakeRowStore) (*repository.VerifierRepository, func()) {
	t.Helper()
	server := httptest.NewServer(store.handler())
	rest := postgrest.NewClient(server.URL, "", nil)
	require.Nil(t, rest.ClientError)
	return repository.NewVerifierRepository(rest), server.Close
}

func TestIsVerifier_RowPresent(t *testing.T) {
	store := &fakeRowStore{response: `[{"is_verifier": true}]`}
	repo, closeFn := newVerifierRepo(t, store)
	defer closeFn()

	userID := uuid.New().String()
	assert.True(t, repo.IsVerifier(userID))
	assert.Equal(t, "/verifiers", store.lastPath)
	assert.Contains(t, store.lastQuery, "user_id=eq."+userID)
}

func TestIsVerifier_MissingRow(t *testing.T) {
	store := &fakeRowStore{response: "[]"}
	repo, closeFn := newVerifierRepo(t, store)
	defer closeFn()

	assert.False(t, repo.IsVerifier(uuid.New().String()))
}

func TestIsVerifier_FlagFalse(t *testing.T) {
	store := &fakeRowStore{response: `[{"is_verifier": false}]`}
	repo, closeFn := newVerifierRepo(t, store)
	defer closeFn()

	assert.False(t, repo.IsVerifier(uuid.New().String()))
}

// Lookup failures must resolve to "not a verifier", never to an error that a
// caller might interpret as privilege.
func TestIsVerifier_LookupFailure(t *testing.T) {
	store := &fakeRowStore{status: http.StatusInternalServerError, response: `{"message": "boom"}`}
	repo, closeFn := newVerifierRepo(t, store)
	defer closeFn()

	assert.False(t, repo.IsVerifier(uuid.New().String()))
}

func TestGrant_UpsertsByUserID(t *testing.T) {
	store := &fakeRowStore{status: http.StatusCreated, response: "[]"}
	repo, closeFn := newVerifierRepo(t, store)
	defer closeFn()

	userID := uuid.New()
	require.NoError(t, repo.Grant(userID))

	assert.Equal(t, http.MethodPost, store.lastMethod)
	assert.Equal(t, "/verifiers", store.lastPath)
	assert.Contains(t, store.lastQuery, "on_conflict=user_id")

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(store.lastBody, &sent))
	assert.Equal(t, userID.String(), sent["user_id"])
	assert.Equal(t, true, sent["is_verifier"])
}
