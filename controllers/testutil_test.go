package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/urbex-atlas/api-go/config"
	"github.com/urbex-atlas/api-go/controllers"
	"github.com/urbex-atlas/api-go/middleware"
	"github.com/urbex-atlas/api-go/models"
	"github.com/urbex-atlas/api-go/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBCounter int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database so gorm's connection pool sees the
	// same in-memory store on every connection.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))

	return db
}

// withClaims stands in for the JWT middleware: it injects the given claims
// into the request context, or nothing at all for an anonymous caller.
func withClaims(claims *utils.UserClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func claimsFor(user models.User) *utils.UserClaims {
	return &utils.UserClaims{UserID: user.ID, IsAdmin: user.IsAdmin}
}

// newTestRouter wires the full API surface the way routes.SetupRoutes does,
// with withClaims substituted for token parsing.
func newTestRouter(db *gorm.DB, claims *utils.UserClaims) *gin.Engine {
	r := gin.New()

	spotController := controllers.NewSpotController(db)
	interactionController := controllers.NewInteractionController(db)
	submissionController := controllers.NewSubmissionController(db)
	feedController := controllers.NewFeedController(db)

	api := r.Group("/api", withClaims(claims))
	{
		api.GET("/spots", spotController.ListSpots)
		api.GET("/spots/search", spotController.SearchSpots)
		api.GET("/spots/:id", spotController.GetSpot)
		api.POST("/spots/bulk-add", spotController.BulkAddSpots)

		api.POST("/spots/:id/checkin", interactionController.CheckIn)
		api.POST("/spots/:id/like", interactionController.LikeSpot)
		api.POST("/spots/:id/rate", interactionController.RateSpot)
		api.POST("/spots/:id/comment", interactionController.CommentSpot)

		api.POST("/spots/submit", submissionController.SubmitSpot)

		api.GET("/feed/nearby", feedController.GetNearbyFeed)
		api.GET("/feed/following", feedController.GetFollowingFeed)
	}

	admin := r.Group("/api/admin", withClaims(claims), middleware.AdminMiddleware())
	{
		admin.GET("/submissions", submissionController.GetPendingSubmissions)
		admin.POST("/submissions/:id/approve", submissionController.ApproveSubmission)
		admin.POST("/submissions/:id/reject", submissionController.RejectSubmission)
	}

	return r
}

func seedUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Name:     username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		IsAdmin:  isAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedSpot(t *testing.T, db *gorm.DB, name string, createdBy uint) models.Spot {
	t.Helper()

	spot := models.Spot{
		Name:      name,
		Latitude:  40.1,
		Longitude: -74.2,
		CreatedBy: createdBy,
	}
	require.NoError(t, db.Create(&spot).Error)
	return spot
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
