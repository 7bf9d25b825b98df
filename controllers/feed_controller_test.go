package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbex-atlas/api-go/models"
)

func feedPosts(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	raw, ok := decodeBody(t, w)["posts"].([]interface{})
	require.True(t, ok)

	posts := make([]map[string]interface{}, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, p.(map[string]interface{}))
	}
	return posts
}

func TestFollowingFeedVisibility(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	carol := seedUser(t, db, "carol", false)
	spot := seedSpot(t, db, "Old Mill", alice.ID)

	require.NoError(t, db.Create(&models.CheckIn{SpotID: spot.ID, UserID: alice.ID}).Error)
	// bob follows alice; carol follows nobody
	require.NoError(t, db.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)

	bobRouter := newTestRouter(db, claimsFor(bob))
	w := doJSON(t, bobRouter, http.MethodGet, "/api/feed/following", nil)
	require.Equal(t, http.StatusOK, w.Code)

	posts := feedPosts(t, w)
	require.Len(t, posts, 1)
	assert.EqualValues(t, spot.ID, posts[0]["spot_id"])
	assert.Equal(t, "Old Mill", posts[0]["spot_name"])
	assert.Equal(t, "alice", posts[0]["user_name"])

	// The same check-in shows up on the global feed too
	w = doJSON(t, bobRouter, http.MethodGet, "/api/feed/nearby", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, feedPosts(t, w), 1)

	// carol follows nobody, so her following feed stays empty
	carolRouter := newTestRouter(db, claimsFor(carol))
	w = doJSON(t, carolRouter, http.MethodGet, "/api/feed/following", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, feedPosts(t, w), 0)
}

func TestFollowingFeedAnonymous(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice", false)
	spot := seedSpot(t, db, "Old Mill", alice.ID)
	require.NoError(t, db.Create(&models.CheckIn{SpotID: spot.ID, UserID: alice.ID}).Error)

	r := newTestRouter(db, nil)
	w := doJSON(t, r, http.MethodGet, "/api/feed/following", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, feedPosts(t, w), 0)
}

func TestFeedOrderingAndTieBreak(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	carol := seedUser(t, db, "carol", false)
	spot := seedSpot(t, db, "Old Mill", alice.ID)

	older := time.Now().Add(-time.Hour).Truncate(time.Second)
	newer := older.Add(time.Minute)

	// Two check-ins share a timestamp; the lower id wins the tie
	first := models.CheckIn{SpotID: spot.ID, UserID: alice.ID, CreatedAt: newer}
	require.NoError(t, db.Create(&first).Error)
	second := models.CheckIn{SpotID: spot.ID, UserID: bob.ID, CreatedAt: newer}
	require.NoError(t, db.Create(&second).Error)
	third := models.CheckIn{SpotID: spot.ID, UserID: carol.ID, CreatedAt: older}
	require.NoError(t, db.Create(&third).Error)

	r := newTestRouter(db, nil)
	w := doJSON(t, r, http.MethodGet, "/api/feed/nearby", nil)
	require.Equal(t, http.StatusOK, w.Code)

	posts := feedPosts(t, w)
	require.Len(t, posts, 3)
	assert.EqualValues(t, first.ID, posts[0]["id"])
	assert.EqualValues(t, second.ID, posts[1]["id"])
	assert.EqualValues(t, third.ID, posts[2]["id"])
}

func TestFeedCapsAtLimit(t *testing.T) {
	db := setupTestDB(t)
	spotOwner := seedUser(t, db, "owner", false)
	spot := seedSpot(t, db, "Old Mill", spotOwner.ID)

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 55; i++ {
		user := seedUser(t, db, fmt.Sprintf("user%d", i), false)
		checkIn := models.CheckIn{
			SpotID:    spot.ID,
			UserID:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.Create(&checkIn).Error)
	}

	r := newTestRouter(db, nil)
	w := doJSON(t, r, http.MethodGet, "/api/feed/nearby", nil)
	require.Equal(t, http.StatusOK, w.Code)

	posts := feedPosts(t, w)
	require.Len(t, posts, 50)
	// The five oldest check-ins fall off the end
	assert.Equal(t, "user54", posts[0]["user_name"])
	assert.Equal(t, "user5", posts[49]["user_name"])
}

func TestFeedJoinedFieldsAndCounters(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	spot := seedSpot(t, db, "Old Mill", alice.ID)

	require.NoError(t, db.Create(&models.SpotImage{SpotID: spot.ID, ImageURL: "u1", UploadedBy: alice.ID}).Error)
	require.NoError(t, db.Create(&models.SpotLike{SpotID: spot.ID, UserID: bob.ID, IsLike: true}).Error)
	require.NoError(t, db.Create(&models.CheckIn{SpotID: spot.ID, UserID: alice.ID}).Error)

	r := newTestRouter(db, nil)
	w := doJSON(t, r, http.MethodGet, "/api/feed/nearby", nil)
	require.Equal(t, http.StatusOK, w.Code)

	posts := feedPosts(t, w)
	require.Len(t, posts, 1)
	post := posts[0]

	assert.Equal(t, "Old Mill", post["spot_name"])
	assert.Equal(t, "u1", post["image_url"])
	assert.EqualValues(t, 1, post["likes"])
	assert.EqualValues(t, 1, post["check_ins"])
	assert.EqualValues(t, alice.ID, post["user_id"])
	assert.Equal(t, "alice", post["user_name"])
}
