package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dkrasnov/storefront/internal/models"
	"github.com/dkrasnov/storefront/internal/repo"
	"github.com/dkrasnov/storefront/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	P  *ProductHandler
	O  *OrderHandler
	R  *ReportHandler
}

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := InitTestDB(t)
	r := repo.New(db)

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		P:  &ProductHandler{Svc: &service.CatalogService{Repo: r}},
		O:  &OrderHandler{Svc: &service.LedgerService{Repo: r}},
		R:  &ReportHandler{Svc: &service.ReportService{Repo: r}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type failBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var body failBody
	decodeBody(t, rec, &body)
	require.False(t, body.Success)
	require.Equal(t, message, body.Message)
}

func (env *testEnv) createProduct(name string, price float64) models.Product {
	env.T.Helper()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/products", map[string]any{
		"name":  name,
		"price": price,
	})
	require.NoError(env.T, env.P.CreateProduct(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var resp struct {
		Data models.Product `json:"data"`
	}
	decodeBody(env.T, rec, &resp)
	return resp.Data
}

func (env *testEnv) createOrder(productID, quantity int) int {
	env.T.Helper()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	require.NoError(env.T, env.O.CreateOrder(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			OrderID int `json:"order_id"`
		} `json:"data"`
	}
	decodeBody(env.T, rec, &resp)
	return resp.Data.OrderID
}
