package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"

	"poi-backend/internal/handlers"
	"poi-backend/internal/repository"
	"poi-backend/internal/services"
)

// verifierRouter wires a VerifierHandler against a canned PostgREST response.
func verifierRouter(t *testing.T, restHandler http.HandlerFunc) (*gin.Engine, func()) {
	t.Helper()
	server := httptest.NewServer(restHandler)

	rest := postgrest.NewClient(server.URL, "", nil)
	require.Nil(t, rest.ClientError)

	projects := repository.NewProjectRepository(rest)
	verification := services.NewVerificationService(projects, &stubNotifier{}, nil, zap.NewNop())
	h := handlers.NewVerifierHandler(projects, verification, zap.NewNop())

	router := gin.New()
	router.GET("/verifier/projects", h.ListPending)
	router.POST("/verifier/projects/:project_id/decision", h.Decide)
	return router, server.Close
}

func TestListPending_ReturnsProjectsAndStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	projectID := uuid.New()
	router, closeFn := verifierRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{
			"id": %q, "user_id": %q, "owner_email": "owner@example.com",
			"name": "Alpha Initiative", "description": "desc",
			"metric": "wells", "budget": "5000",
			"status": "Pending", "nft_minted": false, "funded": false,
			"created_at": "2025-06-01T12:00:00+00:00"
		}]`, projectID, uuid.New())
	})
	defer closeFn()

	req, _ := http.NewRequest("GET", "/verifier/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alpha Initiative")
	assert.Contains(t, w.Body.String(), `"submitted":1`)
}

func TestDecide_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	projectID := uuid.New()
	router, closeFn := verifierRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{
			"id": %q, "user_id": %q, "owner_email": "owner@example.com",
			"name": "Alpha Initiative", "description": "desc",
			"metric": "wells", "budget": "5000",
			"status": "Approved", "nft_minted": true, "funded": true,
			"created_at": "2025-06-01T12:00:00+00:00"
		}]`, projectID, uuid.New())
	})
	defer closeFn()

	w := postJSON(router, "/verifier/projects/"+projectID.String()+"/decision", `{"action": "verify"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Approved"`)
	assert.Contains(t, w.Body.String(), `"nft_minted":true`)
	assert.Contains(t, w.Body.String(), `"funded":true`)
}

func TestDecide_UnknownAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, closeFn := verifierRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("row store must not be reached for an invalid action")
	})
	defer closeFn()

	w := postJSON(router, "/verifier/projects/"+uuid.New().String()+"/decision", `{"action": "approve"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecide_InvalidProjectID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, closeFn := verifierRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("row store must not be reached for a malformed id")
	})
	defer closeFn()

	w := postJSON(router, "/verifier/projects/not-a-uuid/decision", `{"action": "verify"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecide_ProjectNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, closeFn := verifierRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[]")
	})
	defer closeFn()

	w := postJSON(router, "/verifier/projects/"+uuid.New().String()+"/decision", `{"action": "reject"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
