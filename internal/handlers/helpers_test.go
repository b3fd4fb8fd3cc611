package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learncards-backend/internal/handlers"
	"github.com/yungbote/learncards-backend/internal/repos"
	"github.com/yungbote/learncards-backend/internal/repos/testutil"
	"github.com/yungbote/learncards-backend/internal/server"
	"github.com/yungbote/learncards-backend/internal/services"
)

type topicJSON struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type cardJSON struct {
	ID        int64  `json:"id"`
	TopicID   int64  `json:"topic_id"`
	CardType  string `json:"card_type"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type createTopicJSON struct {
	Topic topicJSON  `json:"topic"`
	Cards []cardJSON `json:"cards"`
}

type errorJSON struct {
	Error        string   `json:"error"`
	AllowedTypes []string `json:"allowed_types"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	log := testutil.Logger(t)

	topicRepo := repos.NewTopicRepo(db, log)
	cardRepo := repos.NewCardRepo(db, log)
	topicSvc := services.NewTopicService(db, log, topicRepo, cardRepo)
	cardSvc := services.NewCardService(db, log, cardRepo)

	return server.NewRouter(server.RouterConfig{
		Log:           log,
		CORSOrigins:   []string{"http://localhost:3000"},
		HealthHandler: handlers.NewHealthHandler(),
		TopicHandler:  handlers.NewTopicHandler(topicSvc),
		CardHandler:   handlers.NewCardHandler(cardSvc),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func createTopic(t *testing.T, router *gin.Engine, name string, formats []string) createTopicJSON {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/topics", map[string]interface{}{
		"topic":   name,
		"formats": formats,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create topic %q: status %d, body %s", name, rec.Code, rec.Body.String())
	}
	var resp createTopicJSON
	decodeBody(t, rec, &resp)
	return resp
}
