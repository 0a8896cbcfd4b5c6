package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
	"github.com/victoreduardo21/drb-operacao/services/livemap/mocks"
)

func TestMapHandler_GetOverlays(t *testing.T) {
	hideGeofences := livemap.DefaultFilters()
	hideGeofences.ShowGeofences = false
	hideGeofences.ShowBusyDrivers = false

	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockMapUC)
		expectedStatus int
	}{
		{
			name:  "Defaults",
			query: "",
			mockSetup: func(mockUC *mocks.MockMapUC) {
				mockUC.EXPECT().Overlays(livemap.DefaultFilters(), "").Return(livemap.OverlayList{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Filters and search",
			query: "?q=LOG-5544&geofences=false&busy=0",
			mockSetup: func(mockUC *mocks.MockMapUC) {
				mockUC.EXPECT().Overlays(hideGeofences, "LOG-5544").Return(livemap.OverlayList{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid toggle",
			query:          "?free=maybe",
			mockSetup:      func(mockUC *mocks.MockMapUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockMapUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewMapHandler(mockUC)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/map/overlays"+tt.query, nil), rec)

			require.NoError(t, handler.GetOverlays(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
