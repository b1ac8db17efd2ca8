package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/homefinder/realtor-api/internal/api/middleware"
	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

type stubHomeService struct {
	listFn   func(ctx context.Context, f ports.HomeFilter) ([]ports.HomeSummary, error)
	getFn    func(ctx context.Context, id int64) (*ports.HomeDetail, error)
	createFn func(ctx context.Context, in ports.CreateHomeInput, realtor *domain.User) (*domain.Home, error)
	updateFn func(ctx context.Context, id int64, p domain.HomePatch, caller *domain.User) (*domain.Home, error)
	deleteFn func(ctx context.Context, id int64, caller *domain.User) error
}

func (s *stubHomeService) ListHomes(ctx context.Context, f ports.HomeFilter) ([]ports.HomeSummary, error) {
	return s.listFn(ctx, f)
}

func (s *stubHomeService) GetHome(ctx context.Context, id int64) (*ports.HomeDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubHomeService) CreateHome(ctx context.Context, in ports.CreateHomeInput, realtor *domain.User) (*domain.Home, error) {
	return s.createFn(ctx, in, realtor)
}

func (s *stubHomeService) UpdateHome(ctx context.Context, id int64, p domain.HomePatch, caller *domain.User) (*domain.Home, error) {
	return s.updateFn(ctx, id, p, caller)
}

func (s *stubHomeService) DeleteHome(ctx context.Context, id int64, caller *domain.User) error {
	return s.deleteFn(ctx, id, caller)
}

var testRealtor = &domain.User{ID: 2, Name: "Rita", Role: domain.RoleRealtor}

func TestHomeHandler_List(t *testing.T) {
	var got ports.HomeFilter
	stub := &stubHomeService{
		listFn: func(_ context.Context, f ports.HomeFilter) ([]ports.HomeSummary, error) {
			got = f
			return nil, nil
		},
	}
	e := newEcho()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/homes?city=Santiago&min_price=100&max_price=500&property_type=CONDO", nil)
	c := e.NewContext(req, rec)

	if err := NewHomeHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := ports.HomeFilter{City: "Santiago", MinPrice: 100, MaxPrice: 500, PropertyType: domain.PropertyCondo}
	if got != want {
		t.Fatalf("unexpected filter: %+v", got)
	}
	if rec.Body.String() != "[]\n" {
		t.Fatalf("empty search should render [], got %q", rec.Body.String())
	}
}

func TestHomeHandler_List_BadQuery(t *testing.T) {
	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/homes?min_price=cheap", nil), httptest.NewRecorder())
	assertHTTPError(t, NewHomeHandler(&stubHomeService{}).List(c), http.StatusBadRequest)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/homes?property_type=CASTLE", nil), httptest.NewRecorder())
	assertHTTPError(t, NewHomeHandler(&stubHomeService{}).List(c), http.StatusUnprocessableEntity)
}

func TestHomeHandler_Get(t *testing.T) {
	stub := &stubHomeService{
		getFn: func(_ context.Context, id int64) (*ports.HomeDetail, error) {
			if id != 5 {
				return nil, domain.ErrHomeNotFound
			}
			return &ports.HomeDetail{
				Home:    &domain.Home{ID: 5, City: "Santiago", Images: []domain.Image{{URL: "https://img/1.jpg"}}, ListedDate: time.Now()},
				Realtor: domain.Contact{Name: "Rita", Email: "rita@example.com"},
			}, nil
		},
	}
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := NewHomeHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	realtor, _ := resp["realtor"].(map[string]any)
	if resp["city"] != "Santiago" || realtor["name"] != "Rita" {
		t.Fatalf("unexpected body: %v", resp)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("6")
	if err := NewHomeHandler(stub).Get(c); !errors.Is(err, domain.ErrHomeNotFound) {
		t.Fatalf("expected ErrHomeNotFound, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")
	assertHTTPError(t, NewHomeHandler(stub).Get(c), http.StatusBadRequest)
}

func TestHomeHandler_Create(t *testing.T) {
	stub := &stubHomeService{
		createFn: func(_ context.Context, in ports.CreateHomeInput, realtor *domain.User) (*domain.Home, error) {
			if realtor.ID != testRealtor.ID || len(in.ImageURLs) != 1 || in.PropertyType != domain.PropertyResidential {
				t.Fatalf("unexpected call: %+v %+v", in, realtor)
			}
			return &domain.Home{ID: 1, PropertyType: in.PropertyType, RealtorID: realtor.ID}, nil
		},
	}
	body := `{"address":"Av 1","city":"Santiago","price":100,"land_size":50,"property_type":"RESIDENTIAL",
		"number_of_bedrooms":2,"number_of_bathrooms":1,"images":[{"url":"https://img/1.jpg"}]}`
	c, rec := jsonContext(newEcho(), http.MethodPost, "/homes", body)
	middleware.SetIdentity(c, testRealtor)

	if err := NewHomeHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestHomeHandler_Create_RequiresIdentity(t *testing.T) {
	c, _ := jsonContext(newEcho(), http.MethodPost, "/homes", `{}`)
	if err := NewHomeHandler(&stubHomeService{}).Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestHomeHandler_Update(t *testing.T) {
	stub := &stubHomeService{
		updateFn: func(_ context.Context, id int64, p domain.HomePatch, _ *domain.User) (*domain.Home, error) {
			if p.Price == nil || *p.Price != 300 || p.City != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return &domain.Home{ID: id, Price: *p.Price}, nil
		},
	}
	c, rec := jsonContext(newEcho(), http.MethodPut, "/", `{"price":300}`)
	c.SetParamNames("id")
	c.SetParamValues("9")
	middleware.SetIdentity(c, testRealtor)

	if err := NewHomeHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHomeHandler_Delete(t *testing.T) {
	stub := &stubHomeService{
		deleteFn: func(_ context.Context, id int64, caller *domain.User) error {
			if caller.ID != testRealtor.ID {
				return domain.ErrForbidden
			}
			return nil
		},
	}
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("9")
	middleware.SetIdentity(c, testRealtor)

	if err := NewHomeHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
