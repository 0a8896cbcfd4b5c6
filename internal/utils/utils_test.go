package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"GJC1J57", "GJC1J57"},
		{"gjc-1j57", "GJC1J57"},
		{" GJC 1J57 ", "GJC1J57"},
		{"log-55\t44", "LOG5544"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePlate(tt.in))
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "abc", Stringify("abc"))
	assert.Equal(t, "4533138000107", Stringify(float64(4533138000107)))
	assert.Equal(t, "0.15", Stringify(0.15))
	assert.Equal(t, "true", Stringify(true))
}

func TestShortID(t *testing.T) {
	id := ShortID(5)
	assert.Len(t, id, 5)
	assert.Equal(t, NormalizePlate(id), id)
	assert.NotEqual(t, ShortID(8), ShortID(8))
	assert.Len(t, ShortID(100), 32)
}

func TestCalculateDistance(t *testing.T) {
	santos := GeoPoint{Latitude: -23.9615, Longitude: -46.3280}
	assert.InDelta(t, 0, CalculateDistance(santos, santos), 1e-9)

	// roughly 111 km per degree of latitude
	north := GeoPoint{Latitude: -22.9615, Longitude: -46.3280}
	assert.InDelta(t, 111.19, CalculateDistance(santos, north), 0.5)

	near := GeoPoint{Latitude: -23.9610, Longitude: -46.3285}
	assert.True(t, WithinRadius(santos, near, 0.15))
	assert.False(t, WithinRadius(santos, north, 0.15))
}

func TestEncodeGeohash(t *testing.T) {
	h := EncodeGeohash(-23.9615, -46.3280, 7)
	assert.Len(t, h, 7)
	assert.Equal(t, h[:5], EncodeGeohash(-23.9615, -46.3280, 5))
}

func TestClampLatLng(t *testing.T) {
	lat, lng := ClampLatLng(91, -181)
	assert.Equal(t, 90.0, lat)
	assert.Equal(t, -180.0, lng)
	lat, lng = ClampLatLng(-23.9, -46.3)
	assert.Equal(t, -23.9, lat)
	assert.Equal(t, -46.3, lng)
}

func TestResponses(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c echo.Context) error
		status int
		ok     bool
	}{
		{"success", func(c echo.Context) error { return SuccessResponse(c, http.StatusCreated, "created", map[string]string{"id": "T1"}) }, http.StatusCreated, true},
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "invalid") }, http.StatusBadRequest, false},
		{"unauthorized", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, false},
		{"not found", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, false},
		{"conflict", func(c echo.Context) error { return ConflictResponse(c, "busy") }, http.StatusConflict, false},
		{"internal", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.ok, body["success"])
			if !tt.ok {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
