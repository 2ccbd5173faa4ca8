//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_ToyTypeLifecycle walks the Blocks example end to end:
// create, read back, delete, then read again.
func TestE2E_ToyTypeLifecycle(t *testing.T) {
	ts := setupTestServer(t, withoutSeed())

	resp, env := ts.do(t, http.MethodPost, "/api/toy-types", map[string]any{
		"name":        "Blocks",
		"description": "Building blocks for kids",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	assert.True(t, env.Success)

	var created toyType
	decodeData(t, env, &created)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Blocks", created.Name)

	resp, env = ts.do(t, http.MethodGet, "/api/toy-types/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got toyType
	decodeData(t, env, &got)
	assert.Equal(t, created, got)

	resp, _ = ts.do(t, http.MethodDelete, "/api/toy-types/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = ts.do(t, http.MethodGet, "/api/toy-types/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Toy type not found", env.Message)
}

// TestE2E_SeededCatalogue verifies the demo data loaded on start.
func TestE2E_SeededCatalogue(t *testing.T) {
	ts := setupTestServer(t)

	resp, env := ts.do(t, http.MethodGet, "/api/toy-types", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var types []toyType
	decodeData(t, env, &types)
	require.Len(t, types, 4)
	require.NotNil(t, types[0].Icon)

	resp, env = ts.do(t, http.MethodGet, "/api/toys", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toys []toy
	decodeData(t, env, &toys)
	assert.Len(t, toys, 32)

	resp, env = ts.do(t, http.MethodGet, "/api/toys/1/comments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var comments []comment
	decodeData(t, env, &comments)
	require.Len(t, comments, 2)
	assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt), "comments must be newest first")
}

// TestE2E_ToysByType verifies that type 0 lists everything with the embedded
// type and that a concrete type filters.
func TestE2E_ToysByType(t *testing.T) {
	ts := setupTestServer(t)

	resp, env := ts.do(t, http.MethodGet, "/api/toys/by-type/0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, env.Count)
	assert.Equal(t, 32, *env.Count)
	require.NotNil(t, env.ToyTypeID)
	assert.Zero(t, *env.ToyTypeID)

	var all []toy
	decodeData(t, env, &all)
	for _, item := range all {
		require.NotNil(t, item.ToyType, "toy %d", item.ID)
		assert.Equal(t, item.ToyTypeID, item.ToyType.ID)
	}

	resp, env = ts.do(t, http.MethodGet, "/api/toys/by-type/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 8, *env.Count)

	var typed []toy
	decodeData(t, env, &typed)
	for _, item := range typed {
		assert.Equal(t, int64(2), item.ToyTypeID)
	}

	resp, env = ts.do(t, http.MethodGet, "/api/toys/by-type/-3", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid toy type ID, must be a number greater than or equal to 0", env.Message)
}

// TestE2E_CreateToyWithUnknownType verifies that nothing is stored when the
// referenced type does not exist.
func TestE2E_CreateToyWithUnknownType(t *testing.T) {
	ts := setupTestServer(t)

	resp, env := ts.do(t, http.MethodPost, "/api/toys", map[string]any{
		"name":              "Mystery box",
		"description":       "Nobody knows what is inside",
		"detailDescription": "",
		"price":             9.5,
		"toyTypeId":         999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Specified toy type does not exist", env.Message)

	_, env = ts.do(t, http.MethodGet, "/api/toys/by-type/0", nil)
	assert.Equal(t, 32, *env.Count)
}

// TestE2E_ToyUpdateAndDelete covers partial update, re-typing and the
// second delete of the same toy.
func TestE2E_ToyUpdateAndDelete(t *testing.T) {
	ts := setupTestServer(t)

	resp, env := ts.do(t, http.MethodPut, "/api/toys/1", map[string]any{"price": 199.5, "toyTypeId": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	var updated toy
	decodeData(t, env, &updated)
	assert.Equal(t, 199.5, updated.Price)
	assert.Equal(t, int64(3), updated.ToyTypeID)
	require.NotNil(t, updated.ToyType)
	assert.Equal(t, "Outdoor Toys", updated.ToyType.Name)
	assert.Equal(t, "LEGO Classic Creative Building Box", updated.Name)

	resp, env = ts.do(t, http.MethodPut, "/api/toys/1", map[string]any{"toyTypeId": 77})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Specified toy type does not exist", env.Message)

	resp, env = ts.do(t, http.MethodPut, "/api/toys/1", map[string]any{"price": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Input validation failed", env.Message)

	resp, _ = ts.do(t, http.MethodDelete, "/api/toys/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = ts.do(t, http.MethodDelete, "/api/toys/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Toy not found", env.Message)

	_, env = ts.do(t, http.MethodGet, "/api/toys/by-type/0", nil)
	assert.Equal(t, 31, *env.Count)
}

// TestE2E_CommentRatingBounds verifies that out-of-range ratings are rejected
// and leave the toy's comments unchanged.
func TestE2E_CommentRatingBounds(t *testing.T) {
	ts := setupTestServer(t)

	for _, rating := range []any{0, 6, -1, 2.5} {
		resp, env := ts.do(t, http.MethodPost, "/api/toys/2/comments", map[string]any{
			"author":  "Tester",
			"content": "Rating check",
			"rating":  rating,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %v", rating)
		assert.False(t, env.Success)
	}

	_, env := ts.do(t, http.MethodGet, "/api/toys/2/comments", nil)
	var comments []comment
	decodeData(t, env, &comments)
	assert.Len(t, comments, 1)
}

// TestE2E_CommentLifecycle creates, updates and deletes a review.
func TestE2E_CommentLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	resp, env := ts.do(t, http.MethodPost, "/api/toys/4/comments", map[string]any{
		"author":  "Ann",
		"content": "Flies beautifully",
		"rating":  5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	var created comment
	decodeData(t, env, &created)
	assert.Equal(t, int64(4), created.ToyID)
	assert.False(t, created.CreatedAt.IsZero())

	resp, env = ts.do(t, http.MethodPut, "/api/comments/5", map[string]any{"content": "Battery could be better", "rating": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	var updated comment
	decodeData(t, env, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "Ann", updated.Author)

	resp, _ = ts.do(t, http.MethodDelete, "/api/comments/5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = ts.do(t, http.MethodDelete, "/api/comments/5", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Comment not found", env.Message)

	resp, env = ts.do(t, http.MethodPost, "/api/toys/999/comments", map[string]any{
		"author": "Ann", "content": "Ghost toy", "rating": 4,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Toy not found", env.Message)
}
