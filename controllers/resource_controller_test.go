package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guid-gatherer/models"
	"guid-gatherer/repositories"
	"guid-gatherer/utils"
)

func mount[M any, P any](app *fiber.App, path string, c *ResourceController[M, P]) {
	group := app.Group(path)
	group.Get("/export", c.Export)
	group.Post("/import", c.Import)
	group.Post("/", c.Create)
	group.Get("/", c.GetAll)
	group.Get("/:id", c.GetByID)
	group.Put("/:id", c.Update)
	group.Delete("/:id", c.Delete)
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	mount(app, "/contractors", NewContractorController(repositories.NewMemoryRepository[models.Contractor]()))
	mount(app, "/suppliers", NewSupplierController(repositories.NewMemoryRepository[models.Supplier]()))
	mount(app, "/wholesalers", NewWholesalerController(repositories.NewMemoryRepository[models.Wholesaler]()))
	mount(app, "/retail-sellers", NewRetailSellerController(repositories.NewMemoryRepository[models.RetailSeller]()))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeObject(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

func decodeArray(t *testing.T, data []byte) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

const acme = `{"name":"Acme","contactNo":"1234567890","address":"1 Main St","workCategory":"Electrical"}`

func TestContractorCreateAndList(t *testing.T) {
	app := newTestApp()

	status, data := doJSON(t, app, http.MethodPost, "/contractors", acme)
	require.Equal(t, fiber.StatusOK, status, string(data))
	created := decodeObject(t, data)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Acme", created["name"])
	assert.Equal(t, "1234567890", created["contactNo"])
	assert.Equal(t, "1 Main St", created["address"])
	assert.Equal(t, "Electrical", created["workCategory"])
	assert.Nil(t, created["email"])
	assert.NotEmpty(t, created["createdAt"])

	status, data = doJSON(t, app, http.MethodGet, "/contractors", "")
	require.Equal(t, fiber.StatusOK, status)
	list := decodeArray(t, data)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0]["id"])
	assert.NotContains(t, list[0], "sNo")

	status, data = doJSON(t, app, http.MethodGet, "/contractors/"+created["id"].(string), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Acme", decodeObject(t, data)["name"])
}

func TestCreateValidation(t *testing.T) {
	app := newTestApp()

	status, data := doJSON(t, app, http.MethodPost, "/suppliers", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	body := decodeObject(t, data)
	errs := body["errors"].([]interface{})
	assert.Len(t, errs, 5)
	assert.Equal(t, "Validation failed: name, contactNo, address, category, suppliedItems", body["message"])

	status, data = doJSON(t, app, http.MethodPost, "/contractors",
		`{"name":"Acme","contactNo":"abc","address":"1 Main St","workCategory":"  "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed: contactNo, workCategory", decodeObject(t, data)["message"])

	status, _ = doJSON(t, app, http.MethodGet, "/suppliers", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	app := newTestApp()

	status, data := doJSON(t, app, http.MethodPost, "/contractors",
		`{"name":"Acme","contactNo":"1234567890","address":"1 Main St","workCategory":"Electrical","rating":5}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, `Unknown field "rating"`, decodeObject(t, data)["message"])

	_, data = doJSON(t, app, http.MethodGet, "/contractors", "")
	assert.Empty(t, decodeArray(t, data))
}

func TestUpdatePreservesUnsuppliedFields(t *testing.T) {
	app := newTestApp()

	_, data := doJSON(t, app, http.MethodPost, "/contractors", acme)
	created := decodeObject(t, data)
	id := created["id"].(string)

	status, data := doJSON(t, app, http.MethodPut, "/contractors/"+id, `{"remarks":"reliable"}`)
	require.Equal(t, fiber.StatusOK, status, string(data))
	updated := decodeObject(t, data)
	assert.Equal(t, "reliable", updated["remarks"])
	for _, field := range []string{"id", "name", "contactNo", "address", "workCategory", "email", "createdAt"} {
		assert.Equal(t, created[field], updated[field], field)
	}

	status, data = doJSON(t, app, http.MethodPut, "/contractors/"+id, `{"name":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed: name", decodeObject(t, data)["message"])
}

func TestMissingIDsAreNotFound(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/contractors/123456", "/contractors/not-an-id"} {
		status, data := doJSON(t, app, http.MethodPut, path, `{"name":"x"}`)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Contractor not found", decodeObject(t, data)["message"])

		status, _ = doJSON(t, app, http.MethodDelete, path, "")
		assert.Equal(t, fiber.StatusNotFound, status)

		status, _ = doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, fiber.StatusNotFound, status)
	}
}

func TestDeleteTwice(t *testing.T) {
	app := newTestApp()

	_, data := doJSON(t, app, http.MethodPost, "/retail-sellers",
		`{"name":"Corner","phoneNumber":"555-123-4567","address":"2 High St","product":"Tea"}`)
	id := decodeObject(t, data)["id"].(string)

	status, data := doJSON(t, app, http.MethodDelete, "/retail-sellers/"+id, "")
	require.Equal(t, fiber.StatusOK, status)
	body := decodeObject(t, data)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Retail Seller deleted successfully", body["message"])

	status, _ = doJSON(t, app, http.MethodDelete, "/retail-sellers/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestWholesalerListSequenceNumbers(t *testing.T) {
	app := newTestApp()

	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		_, data := doJSON(t, app, http.MethodPost, "/wholesalers",
			`{"name":"`+name+`","phoneNumber":"0123456789","address":"Dock 1","product":"Rice"}`)
		ids = append(ids, decodeObject(t, data)["id"].(string))
	}

	_, data := doJSON(t, app, http.MethodGet, "/wholesalers", "")
	list := decodeArray(t, data)
	require.Len(t, list, 3)
	for i, item := range list {
		assert.Equal(t, float64(i+1), item["sNo"])
		assert.Equal(t, ids[i], item["id"])
	}

	status, _ := doJSON(t, app, http.MethodDelete, "/wholesalers/"+ids[0], "")
	require.Equal(t, fiber.StatusOK, status)

	_, data = doJSON(t, app, http.MethodGet, "/wholesalers", "")
	list = decodeArray(t, data)
	require.Len(t, list, 2)
	assert.Equal(t, ids[1], list[0]["id"])
	assert.Equal(t, float64(1), list[0]["sNo"])
	assert.Equal(t, float64(2), list[1]["sNo"])

	_, data = doJSON(t, app, http.MethodGet, "/wholesalers/"+ids[1], "")
	assert.NotContains(t, decodeObject(t, data), "sNo")
}

func TestBlankOptionalFieldsAreStoredAsNull(t *testing.T) {
	app := newTestApp()

	status, data := doJSON(t, app, http.MethodPost, "/contractors",
		`{"name":"Acme","contactNo":"1234567890","address":"1 Main St","workCategory":"Electrical","email":"","remarks":""}`)
	require.Equal(t, fiber.StatusOK, status, string(data))
	created := decodeObject(t, data)
	assert.Nil(t, created["email"])
	assert.Nil(t, created["remarks"])

	status, data = doJSON(t, app, http.MethodPost, "/wholesalers",
		`{"name":"Dock","phoneNumber":"0123456789","address":"Pier 4","product":"Rice","email":"   "}`)
	require.Equal(t, fiber.StatusOK, status, string(data))
	assert.Nil(t, decodeObject(t, data)["email"])

	id := created["id"].(string)
	status, data = doJSON(t, app, http.MethodPut, "/contractors/"+id, `{"email":"acme@example.com"}`)
	require.Equal(t, fiber.StatusOK, status, string(data))
	assert.Equal(t, "acme@example.com", decodeObject(t, data)["email"])

	status, data = doJSON(t, app, http.MethodPut, "/contractors/"+id, `{"email":""}`)
	require.Equal(t, fiber.StatusOK, status, string(data))
	assert.Nil(t, decodeObject(t, data)["email"])

	status, data = doJSON(t, app, http.MethodPut, "/contractors/"+id, `{"email":"not-an-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed: email", decodeObject(t, data)["message"])
}
