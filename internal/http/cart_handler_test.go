package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brandbong/Vedham/internal/domain"
)

func decodeCart(t *testing.T, recorder *httptest.ResponseRecorder) CartResponseDTO {
	t.Helper()
	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}

func TestGetCart_Empty(t *testing.T) {
	srv := newTestServer(nil, nil)

	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cart", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder)
	assert.Empty(t, resp.Lines)
	assert.Equal(t, 0, resp.ItemCount)
	assert.Equal(t, int64(0), resp.Subtotal)
	assert.Contains(t, resp.WhatsAppLink, "https://wa.me/")
	assert.Equal(t, "9842909360", resp.SupportPhone)
}

func TestAddItem_Success(t *testing.T) {
	srv := newTestServer(nil, nil)

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "moringa-powder", Quantity: 2})
	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/cart/items", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)
	resp := decodeCart(t, recorder)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, int64(300), resp.Subtotal)
	assert.Equal(t, int64(50), resp.Shipping)
	assert.Equal(t, int64(350), resp.Total)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	srv := newTestServer(nil, nil)

	for _, quantity := range []int{0, -1, 100} {
		body, _ := json.Marshal(AddItemRequestDTO{ProductID: "moringa-powder", Quantity: quantity})
		recorder := httptest.NewRecorder()
		srv.router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/cart/items", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "quantity %d", quantity)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	srv := newTestServer(nil, nil)

	body, _ := json.Marshal(AddItemRequestDTO{ProductID: "no-such-product", Quantity: 1})
	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/cart/items", bytes.NewReader(body)))

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Code)
}

func TestAddItem_InvalidJSON(t *testing.T) {
	srv := newTestServer(nil, nil)

	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/cart/items", bytes.NewReader([]byte("{not json"))))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	srv := newTestServer([]domain.CartEntry{{ProductID: "moringa-powder", Quantity: 2}}, nil)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 0})
	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/api/cart/items/moringa-powder", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder)
	assert.Empty(t, resp.Lines)
}

func TestUpdateQuantity_SetsExactValue(t *testing.T) {
	srv := newTestServer([]domain.CartEntry{{ProductID: "moringa-powder", Quantity: 2}}, nil)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 5})
	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/api/cart/items/moringa-powder", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 5, resp.Lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	srv := newTestServer([]domain.CartEntry{
		{ProductID: "moringa-powder", Quantity: 2},
		{ProductID: "health-malt", Quantity: 1},
	}, nil)

	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/cart/items/moringa-powder", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "health-malt", resp.Lines[0].Product.ID)
}
