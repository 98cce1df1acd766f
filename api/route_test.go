package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stralshund/dog-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteListIncludesAverageRating(t *testing.T) {
	a := testAPI(t)

	require.NoError(t, a.DB.Create(&model.Route{
		CreatorID:   "someone",
		Name:        "Harbor loop",
		City:        "Stralsund",
		Distance:    2500,
		RatingSum:   9,
		RatingCount: 2,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes", nil)
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"averageRating":4.5`)

	// The raw rating sum stays internal
	assert.NotContains(t, w.Body.String(), "ratingSum")
}
