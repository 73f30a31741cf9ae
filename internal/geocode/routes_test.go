package geocode

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupGeocodeRouter(t *testing.T, handler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestClient(t, handler))
	return r
}

func TestGeocodeEndpoint(t *testing.T) {
	r := setupGeocodeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[{"lat":"33.7838","lon":"-84.3853"}]`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/geocode?address=Atlanta", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var coords Coordinates
	if err := json.Unmarshal(w.Body.Bytes(), &coords); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if coords.Latitude != 33.7838 || coords.Longitude != -84.3853 {
		t.Fatalf("unexpected coordinates: %+v", coords)
	}
}

func TestGeocodeEndpoint_MissingAddress(t *testing.T) {
	r := setupGeocodeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/geocode", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGeocodeEndpoint_NoMatch(t *testing.T) {
	r := setupGeocodeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/geocode?address=Nowhere", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
