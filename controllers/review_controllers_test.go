package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/wildwest-grill/models"
)

func createCustomer(t *testing.T, r http.Handler, name string, table int) uint {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/api/customers", gin.H{"name": name, "tableNumber": table})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		CustomerID uint `json:"customerId"`
	}
	decode(t, w, &resp)
	require.NotZero(t, resp.CustomerID)
	return resp.CustomerID
}

func TestCreateReview_RatingBounds(t *testing.T) {
	r, db := setupRouter(t)
	customerID := createCustomer(t, r, "Alice", 4)

	cases := []struct {
		rating  int
		status  int
		message string
	}{
		{0, http.StatusBadRequest, "Missing required fields"},
		{6, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{-1, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{1, http.StatusOK, ""},
		{5, http.StatusOK, ""},
	}
	for _, tc := range cases {
		w := performRequest(r, http.MethodPost, "/api/reviews", gin.H{
			"customerId": customerID,
			"rating":     tc.rating,
			"comment":    "Howdy",
		})
		assert.Equal(t, tc.status, w.Code, "rating %d", tc.rating)

		var resp map[string]interface{}
		decode(t, w, &resp)
		if tc.status == http.StatusOK {
			assert.Equal(t, "Review added successfully", resp["message"])
			assert.NotZero(t, resp["reviewId"])
		} else {
			assert.Equal(t, tc.message, resp["error"])
		}
	}

	assert.EqualValues(t, 2, count(t, db, &models.Review{}))
}

func TestCreateReview_UnknownCustomer(t *testing.T) {
	r, db := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/api/reviews", gin.H{
		"customerId": 999,
		"rating":     4,
		"comment":    "Great brisket",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	decode(t, w, &resp)
	assert.Equal(t, "Customer not found", resp["error"])
	assert.Zero(t, count(t, db, &models.Review{}))
}

func TestCreateReview_MissingComment(t *testing.T) {
	r, _ := setupRouter(t)
	customerID := createCustomer(t, r, "Alice", 4)

	w := performRequest(r, http.MethodPost, "/api/reviews", gin.H{
		"customerId": customerID,
		"rating":     4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllReviews_WithCustomerName(t *testing.T) {
	r, _ := setupRouter(t)
	alice := createCustomer(t, r, "Alice", 4)
	bob := createCustomer(t, r, "Bob", 7)

	for _, body := range []gin.H{
		{"customerId": alice, "rating": 5, "comment": "Best ribs in town"},
		{"customerId": bob, "rating": 3, "comment": "Tea was warm"},
	} {
		w := performRequest(r, http.MethodPost, "/api/reviews", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	var rows []models.ReviewRow
	decode(t, performRequest(r, http.MethodGet, "/api/reviews", nil), &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0].CustomerName)
	assert.Equal(t, 3, rows[0].Rating)
	assert.Equal(t, "Alice", rows[1].CustomerName)
	require.NotNil(t, rows[1].CustomerID)
	assert.Equal(t, alice, *rows[1].CustomerID)
}
