package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lin-avraham/Pizza2/config"
	"github.com/lin-avraham/Pizza2/database"
	"github.com/lin-avraham/Pizza2/router"
	"github.com/lin-avraham/Pizza2/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB uses a private SQLite in-memory database with the seed users.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedDefaultUsers(db))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		GinMode:      gin.TestMode,
		DBDriver:     "sqlite",
		SecretKey:    "test-secret",
		UploadFolder: t.TempDir(),
		NotifyPerMin: 30,
		DishCacheTTL: time.Minute,
		Twilio: config.TwilioConfig{
			AccountSID: "AC123",
			AuthToken:  "token",
			APIBase:    "http://127.0.0.1:1",
			From:       "whatsapp:+14155238886",
			To:         "whatsapp:+15550001111",
		},
	}
}

// setupRouterForTest wires the full application router over a fresh database.
func setupRouterForTest(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	db := setupTestDB(t)
	return router.SetupRouter(db, cfg), db
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.SessionCookie && ck.Value != "" {
			return ck
		}
	}
	return nil
}

// login signs in with the given credentials and returns the session cookie.
func login(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/login", url.Values{"username": {username}, "password": {password}}))
	require.Equal(t, http.StatusFound, w.Code)
	ck := sessionCookie(w)
	require.NotNil(t, ck, "expected a session cookie for %s", username)
	return ck
}

func do(r *gin.Engine, req *http.Request, session *http.Cookie) *httptest.ResponseRecorder {
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
