package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"poi-backend/internal/handlers"
	"poi-backend/internal/models"
)

type stubNotifier struct {
	calls []string
	err   error
}

func (s *stubNotifier) SendStatusUpdate(project models.Project, to string) error {
	s.calls = append(s.calls, to)
	return s.err
}

func notifyRouter(notifier *stubNotifier) *gin.Engine {
	router := gin.New()
	h := handlers.NewNotifyHandler(notifier, zap.NewNop())
	router.POST("/email", h.SendStatusEmail)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const statusEmailBody = `{
	"project": {"name": "Alpha Initiative", "status": "Approved", "budget": "5000"},
	"userEmail": "owner@example.com"
}`

func TestSendStatusEmail_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notifier := &stubNotifier{}
	router := notifyRouter(notifier)

	w := postJSON(router, "/email", statusEmailBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, []string{"owner@example.com"}, notifier.calls)
}

func TestSendStatusEmail_DeliveryFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notifier := &stubNotifier{err: errors.New("smtp down")}
	router := notifyRouter(notifier)

	w := postJSON(router, "/email", statusEmailBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send email")
	assert.Len(t, notifier.calls, 1)
}

func TestSendStatusEmail_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notifier := &stubNotifier{}
	router := notifyRouter(notifier)

	w := postJSON(router, "/email", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, notifier.calls)
}
