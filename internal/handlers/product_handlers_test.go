package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/storefront/internal/models"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("Widget", 10.00)
	require.Equal(t, 1, prod.ID)
	require.Equal(t, "Widget", prod.Name)
	require.Equal(t, 10.00, prod.Price)
	require.False(t, prod.CreatedAt.IsZero())

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/1", nil)
	require.NoError(t, env.P.GetProduct(withID(c, "1")))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    models.Product `json:"data"`
	}
	decodeBody(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, prod.Name, resp.Data.Name)
	require.Equal(t, prod.Price, resp.Data.Price)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"price": 10.0,
	})
	require.NoError(t, env.P.CreateProduct(c))
	requireFailure(t, rec, http.StatusBadRequest, "Name and price are required")

	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Widget",
	})
	require.NoError(t, env.P.CreateProduct(c))
	requireFailure(t, rec, http.StatusBadRequest, "Name and price are required")

	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"name":  "Widget",
		"price": 0,
	})
	require.NoError(t, env.P.CreateProduct(c))
	requireFailure(t, rec, http.StatusBadRequest, "Price must be a number greater than 0")

	rec, c = env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"name":  "Widget",
		"price": -3.5,
	})
	require.NoError(t, env.P.CreateProduct(c))
	requireFailure(t, rec, http.StatusBadRequest, "Price must be a number greater than 0")

	var total int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&total).Error)
	require.Zero(t, total)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/42", nil)
	require.NoError(t, env.P.GetProduct(withID(c, "42")))
	requireFailure(t, rec, http.StatusNotFound, "Product not found")
}

func TestGetProductsOrderedByIDDesc(t *testing.T) {
	env := newTestEnv(t)

	env.createProduct("first", 1.00)
	env.createProduct("second", 2.00)
	env.createProduct("third", 3.00)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool             `json:"success"`
		Count   int              `json:"count"`
		Data    []models.Product `json:"data"`
	}
	decodeBody(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, 3, resp.Count)
	require.Len(t, resp.Data, 3)
	require.Equal(t, "third", resp.Data[0].Name)
	require.Equal(t, "second", resp.Data[1].Name)
	require.Equal(t, "first", resp.Data[2].Name)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("Widget", 10.00)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/products/1", map[string]any{
		"name":  "Gadget",
		"price": 12.50,
	})
	require.NoError(t, env.P.UpdateProduct(withID(c, "1")))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Product `json:"data"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, prod.ID, resp.Data.ID)
	require.Equal(t, "Gadget", resp.Data.Name)
	require.Equal(t, 12.50, resp.Data.Price)
	require.WithinDuration(t, prod.CreatedAt, resp.Data.CreatedAt, time.Second)
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/products/9", map[string]any{
		"name":  "Gadget",
		"price": 12.50,
	})
	require.NoError(t, env.P.UpdateProduct(withID(c, "9")))
	requireFailure(t, rec, http.StatusNotFound, "Product not found")
}

func TestUpdateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	env.createProduct("Widget", 10.00)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/products/1", map[string]any{
		"name":  "Widget",
		"price": -1,
	})
	require.NoError(t, env.P.UpdateProduct(withID(c, "1")))
	requireFailure(t, rec, http.StatusBadRequest, "Price must be a number greater than 0")
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	env.createProduct("Widget", 10.00)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/products/1", nil)
	require.NoError(t, env.P.DeleteProduct(withID(c, "1")))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = env.doJSONRequest(http.MethodGet, "/api/v1/products/1", nil)
	require.NoError(t, env.P.GetProduct(withID(c, "1")))
	requireFailure(t, rec, http.StatusNotFound, "Product not found")
}

func TestDeleteProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/products/5", nil)
	require.NoError(t, env.P.DeleteProduct(withID(c, "5")))
	requireFailure(t, rec, http.StatusNotFound, "Product not found")
}

func TestDeleteProductWithOrdersRejected(t *testing.T) {
	env := newTestEnv(t)

	prod := env.createProduct("Widget", 10.00)
	env.createOrder(prod.ID, 3)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/products/1", nil)
	require.NoError(t, env.P.DeleteProduct(withID(c, "1")))
	requireFailure(t, rec, http.StatusConflict, "Product has existing orders")

	// the ledger row is untouched
	var orders int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&orders).Error)
	require.EqualValues(t, 1, orders)
}
