package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vacinabr/vaccination-api/internal/middleware"
	"github.com/vacinabr/vaccination-api/internal/model"
	"github.com/vacinabr/vaccination-api/internal/repository"
	"github.com/vacinabr/vaccination-api/internal/server"
	"github.com/vacinabr/vaccination-api/internal/service"
	"github.com/vacinabr/vaccination-api/internal/validation"
)

// echoRequest is a minimal payload for exercising the Handle pipeline.
type echoRequest struct {
	Name  string  `json:"name" validate:"required"`
	Alias *string `json:"alias"`
}

func (r *echoRequest) Validate() error {
	return validation.Struct(r)
}

// newTestRouter builds an Echo instance with the production error
// handler so error JSON shapes can be asserted.
func newTestRouter() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(&server.Server{}).GlobalErrorHandler
	return e
}

func TestHandleWritesResult(t *testing.T) {
	e := newTestRouter()
	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (map[string]string, error) {
		return map[string]string{"name": req.Name}, nil
	}, http.StatusCreated))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"Brasil"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["name"] != "Brasil" {
		t.Errorf("name = %q", body["name"])
	}
}

func TestHandleValidationFailure(t *testing.T) {
	e := newTestRouter()
	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (map[string]string, error) {
		t.Error("handler must not run on invalid input")
		return nil, nil
	}, http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body struct {
		Code   string `json:"code"`
		Errors []struct {
			Field string `json:"field"`
			Error string `json:"error"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != "BAD_REQUEST" {
		t.Errorf("code = %q", body.Code)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "name" {
		t.Errorf("errors = %+v, want one entry for name", body.Errors)
	}
}

func TestHandleAllocatesFreshRequest(t *testing.T) {
	e := newTestRouter()
	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (*echoRequest, error) {
		return req, nil
	}, http.StatusOK))

	// First request sets the optional field.
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"a","alias":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// The second omits it; a shared prototype would leak "x" through.
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"b"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body echoRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Alias != nil {
		t.Errorf("alias leaked between requests: %q", *body.Alias)
	}
}

func TestHandleMalformedBody(t *testing.T) {
	e := newTestRouter()
	e.POST("/echo", Handle(func(c echo.Context, req *echoRequest) (map[string]string, error) {
		return nil, nil
	}, http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

// fakeCountryStore backs the end-to-end country handler tests.
type fakeCountryStore struct {
	countries []model.Country
	nextID    int64
}

func (f *fakeCountryStore) List(_ context.Context, _ repository.GeoFilter) ([]model.Country, error) {
	return f.countries, nil
}

func (f *fakeCountryStore) GetByID(_ context.Context, id int64) (*model.Country, error) {
	for i := range f.countries {
		if f.countries[i].ID == id {
			return &f.countries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCountryStore) GetByIBGECode(_ context.Context, ibgeCode string) (*model.Country, error) {
	for i := range f.countries {
		if f.countries[i].IBGECode != nil && *f.countries[i].IBGECode == ibgeCode {
			return &f.countries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCountryStore) Create(_ context.Context, name string, ibgeCode *string) (int64, error) {
	f.nextID++
	f.countries = append(f.countries, model.Country{ID: f.nextID, Name: name, IBGECode: ibgeCode})
	return f.nextID, nil
}

func (f *fakeCountryStore) Update(_ context.Context, id int64, _ map[string]any) (bool, error) {
	c, _ := f.GetByID(context.Background(), id)
	return c != nil, nil
}

func (f *fakeCountryStore) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.countries {
		if f.countries[i].ID == id {
			f.countries = append(f.countries[:i], f.countries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newCountryTestRouter() *echo.Echo {
	e := newTestRouter()
	h := NewCountryHandler(&server.Server{}, service.NewCountryService(&fakeCountryStore{}))

	e.GET("/countries", Handle(h.List, http.StatusOK))
	e.POST("/countries", Handle(h.Create, http.StatusCreated))
	e.PATCH("/countries/:id", Handle(h.Update, http.StatusOK))
	e.DELETE("/countries/:id", Handle(h.Delete, http.StatusOK))
	return e
}

func TestCountryCreateEndpoint(t *testing.T) {
	e := newCountryTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/countries", strings.NewReader(`{"name":"Brasil","ibge_code":"1058"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var body struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.ID != 1 || body.Message != "Country created successfully" {
		t.Errorf("body = %+v", body)
	}
}

func TestCountryCreateDuplicateEndpoint(t *testing.T) {
	e := newCountryTestRouter()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/countries", strings.NewReader(`{"name":"Brasil","ibge_code":"1058"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if i == 0 {
			if rec.Code != http.StatusCreated {
				t.Fatalf("first create: status = %d", rec.Code)
			}
			continue
		}

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("second create: status = %d, body %s", rec.Code, rec.Body)
		}

		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.Code != "COUNTRY_ALREADY_EXISTS" {
			t.Errorf("code = %q", body.Code)
		}
	}
}

func TestCountryUpdateEndpointNotFound(t *testing.T) {
	e := newCountryTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/countries/42", strings.NewReader(`{"name":"Brasil"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != "COUNTRY_NOT_FOUND" {
		t.Errorf("code = %q", body.Code)
	}
	if body.Message != "Country with ID 42 not found" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestCountryUpdateEndpointEmptyBody(t *testing.T) {
	e := newCountryTestRouter()

	create := httptest.NewRequest(http.MethodPost, "/countries", strings.NewReader(`{"name":"Brasil"}`))
	create.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(httptest.NewRecorder(), create)

	req := httptest.NewRequest(http.MethodPatch, "/countries/1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != "EMPTY_UPDATE" {
		t.Errorf("code = %q", body.Code)
	}
}
