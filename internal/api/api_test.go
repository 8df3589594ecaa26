package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/india-resources/directory-api/internal/api"
	"github.com/india-resources/directory-api/internal/config"
	"github.com/india-resources/directory-api/internal/db"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(conn))

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	return api.NewRouter(conn, cfg, zerolog.Nop())
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func registerContributor(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, router, "POST", "/auth/register", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	return decode(t, w)["token"].(string)
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, "POST", "/auth/login", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	resp := decode(t, w)
	require.Equal(t, "admin", resp["role"])
	return resp["token"].(string)
}

func sampleURLItem(name string) gin.H {
	return gin.H{
		"kind":        "url",
		"name":        name,
		"url":         "https://mygov.in",
		"category":    "Public Services",
		"state":       "All India",
		"description": "d",
		"icon":        "Users",
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/auth/register", "", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "contributor", resp["role"])
	assert.Equal(t, "alice", resp["username"])
	assert.NotEmpty(t, resp["token"])

	// Registration auto-logs-in; a later explicit login also works.
	w = doJSON(t, router, "POST", "/auth/login", "", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "contributor", decode(t, w)["role"])

	// Same username cannot be registered twice.
	w = doJSON(t, router, "POST", "/auth/register", "", gin.H{"username": "alice", "password": "secret2"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The admin name is reserved.
	w = doJSON(t, router, "POST", "/auth/register", "", gin.H{"username": "admin", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Wrong password fails.
	w = doJSON(t, router, "POST", "/auth/login", "", gin.H{"username": "alice", "password": "nope123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogin(t *testing.T) {
	router := setupTestRouter(t)

	token := loginAdmin(t, router)
	assert.NotEmpty(t, token)

	w := doJSON(t, router, "POST", "/auth/login", "", gin.H{"username": "admin", "password": "wrong1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmissionModerationFlow(t *testing.T) {
	router := setupTestRouter(t)

	aliceToken := registerContributor(t, router, "alice", "secret1")

	// Contributor submits a URL.
	w := doJSON(t, router, "POST", "/submissions", aliceToken, sampleURLItem("MyGov"))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	submission := decode(t, w)
	assert.Equal(t, "alice", submission["submitted_by"])
	submissionID := int(submission["id"].(float64))

	// Admin sees it on the queue.
	adminToken := loginAdmin(t, router)
	w = doJSON(t, router, "GET", "/submissions?kind=url", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	queue := decode(t, w)["data"].([]interface{})
	require.Len(t, queue, 1)

	// Approve publishes it.
	w = doJSON(t, router, "POST", "/submissions/"+itoa(submissionID)+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	// The queue is now empty.
	w = doJSON(t, router, "GET", "/submissions", adminToken, nil)
	assert.Empty(t, decode(t, w)["data"])

	// The item is publicly visible, without its submitter.
	w = doJSON(t, router, "GET", "/items?kind=url", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["data"].([]interface{})
	require.Len(t, items, 1)
	published := items[0].(map[string]interface{})
	assert.Equal(t, "MyGov", published["name"])
	assert.NotContains(t, published, "submitted_by")

	// The contributor sees it as approved.
	w = doJSON(t, router, "GET", "/submissions/mine", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode(t, w)["data"].([]interface{})
	require.Len(t, mine, 1)
	assert.Equal(t, "Approved", mine[0].(map[string]interface{})["status"])

	// Approving again is a 404.
	w = doJSON(t, router, "POST", "/submissions/"+itoa(submissionID)+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectFlow(t *testing.T) {
	router := setupTestRouter(t)

	aliceToken := registerContributor(t, router, "alice", "secret1")
	w := doJSON(t, router, "POST", "/submissions", aliceToken, sampleURLItem("MyGov"))
	require.Equal(t, http.StatusCreated, w.Code)
	submissionID := int(decode(t, w)["id"].(float64))

	adminToken := loginAdmin(t, router)
	w = doJSON(t, router, "POST", "/submissions/"+itoa(submissionID)+"/reject", adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Nothing published, nothing queued, nothing shown to the submitter.
	w = doJSON(t, router, "GET", "/items?kind=url", "", nil)
	assert.Empty(t, decode(t, w)["data"])
	w = doJSON(t, router, "GET", "/submissions", adminToken, nil)
	assert.Empty(t, decode(t, w)["data"])
	w = doJSON(t, router, "GET", "/submissions/mine", aliceToken, nil)
	assert.Empty(t, decode(t, w)["data"])

	w = doJSON(t, router, "POST", "/submissions/"+itoa(submissionID)+"/reject", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleGating(t *testing.T) {
	router := setupTestRouter(t)

	// Anonymous requests to protected routes are rejected.
	w := doJSON(t, router, "POST", "/submissions", "", sampleURLItem("MyGov"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "GET", "/submissions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Contributors cannot reach admin routes.
	aliceToken := registerContributor(t, router, "alice", "secret1")
	w = doJSON(t, router, "GET", "/submissions", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "POST", "/items", aliceToken, sampleURLItem("MyGov"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "DELETE", "/items/1", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "PUT", "/seo", aliceToken, gin.H{"title": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Garbage tokens are 401, not 403.
	w = doJSON(t, router, "GET", "/submissions", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestItemCRUD(t *testing.T) {
	router := setupTestRouter(t)
	adminToken := loginAdmin(t, router)

	w := doJSON(t, router, "POST", "/items", adminToken, sampleURLItem("Government of India"))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	itemID := int(decode(t, w)["id"].(float64))

	// Partial update keeps the other fields.
	w = doJSON(t, router, "PUT", "/items/"+itoa(itemID), adminToken, gin.H{"name": "GoI Portal"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/items/"+itoa(itemID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "GoI Portal", got["name"])
	assert.Equal(t, "https://mygov.in", got["url"])

	w = doJSON(t, router, "DELETE", "/items/"+itoa(itemID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "GET", "/items/"+itoa(itemID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing ids are explicit failures.
	w = doJSON(t, router, "DELETE", "/items/9999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, "PUT", "/items/9999", adminToken, gin.H{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemValidation(t *testing.T) {
	router := setupTestRouter(t)
	adminToken := loginAdmin(t, router)

	// URL items need a url.
	item := sampleURLItem("MyGov")
	delete(item, "url")
	w := doJSON(t, router, "POST", "/items", adminToken, item)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Contact items need a number.
	w = doJSON(t, router, "POST", "/items", adminToken, gin.H{
		"kind": "contact", "name": "Helpline", "category": "Emergency", "state": "All India",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown states are rejected.
	item = sampleURLItem("MyGov")
	item["state"] = "Atlantis"
	w = doJSON(t, router, "POST", "/items", adminToken, item)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Kind is required for listing.
	w = doJSON(t, router, "GET", "/items", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	adminToken := loginAdmin(t, router)

	w := doJSON(t, router, "GET", "/categories?kind=url", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	defaults := resp["defaults"].([]interface{})
	assert.Len(t, defaults, 20)
	assert.Empty(t, resp["custom"])

	// Add a custom category; it lands after the defaults.
	w = doJSON(t, router, "POST", "/categories", adminToken, gin.H{"kind": "url", "name": "Foo"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/categories?kind=url", "", nil)
	resp = decode(t, w)
	all := resp["all"].([]interface{})
	assert.Equal(t, "Foo", all[len(all)-1])

	// Duplicates and blanks are surfaced.
	w = doJSON(t, router, "POST", "/categories", adminToken, gin.H{"kind": "url", "name": "Foo"})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = doJSON(t, router, "POST", "/categories", adminToken, gin.H{"kind": "url", "name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Defaults cannot be removed.
	w = doJSON(t, router, "DELETE", "/categories", adminToken, gin.H{"kind": "url", "name": "Central Government"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Customs can.
	w = doJSON(t, router, "DELETE", "/categories", adminToken, gin.H{"kind": "url", "name": "Foo"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, "DELETE", "/categories", adminToken, gin.H{"kind": "url", "name": "Foo"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeoEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/seo", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	before := decode(t, w)
	assert.Equal(t, "India Resources Portal - Important URLs & Contacts", before["title"])

	adminToken := loginAdmin(t, router)
	w = doJSON(t, router, "PUT", "/seo", adminToken, gin.H{"title": "New Title"})
	require.Equal(t, http.StatusOK, w.Code)
	after := decode(t, w)
	assert.Equal(t, "New Title", after["title"])
	// Unpatched fields survive, the timestamp moves.
	assert.Equal(t, before["description"], after["description"])
	assert.NotEqual(t, before["last_updated"], after["last_updated"])
}

func TestMetaEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/meta/states", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	states := decode(t, w)["data"].([]interface{})
	assert.Equal(t, "All India", states[0])
	assert.Len(t, states, 37)

	w = doJSON(t, router, "GET", "/meta/icons", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	icons := decode(t, w)["data"].([]interface{})
	assert.Contains(t, icons, "Globe")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
