package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
	"github.com/victoreduardo21/drb-operacao/services/terminals/mocks"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTerminalHandler_ListTerminals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTerminalUC(ctrl)
	mockUC.EXPECT().List().Return([]models.Terminal{{ID: "T1", Name: "Porto"}})
	mockUC.EXPECT().SheetConnected().Return(true)
	handler := NewTerminalHandler(mockUC)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/terminals", nil), rec)

	require.NoError(t, handler.ListTerminals(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, true, data["sheet_connected"])
}

func TestTerminalHandler_RegisterTerminal(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockTerminalUC)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"CD Zona Sul","lat":-23.55,"lng":-46.63,"radius":0.1,"capacity":10}`,
			mockSetup: func(mockUC *mocks.MockTerminalUC) {
				mockUC.EXPECT().
					Register(gomock.Any(), models.TerminalInput{Name: "CD Zona Sul", Lat: -23.55, Lng: -46.63, Radius: 0.1, Capacity: 10}).
					Return(models.Terminal{ID: "T9", Name: "CD Zona Sul"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid body",
			body:           `{"name":`,
			mockSetup:      func(mockUC *mocks.MockTerminalUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Validation error",
			body: `{"name":"","radius":0.1}`,
			mockSetup: func(mockUC *mocks.MockTerminalUC) {
				mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Terminal{}, models.ErrTerminalNameRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			body: `{"name":"X","radius":0.1}`,
			mockSetup: func(mockUC *mocks.MockTerminalUC) {
				mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Terminal{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTerminalUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewTerminalHandler(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/terminals", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler.RegisterTerminal(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestTerminalHandler_DeleteTerminal(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"Not found", terminals.ErrTerminalNotFound, http.StatusNotFound},
		{"Failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTerminalUC(ctrl)
			mockUC.EXPECT().Delete(gomock.Any(), "T2").Return(tt.err)
			handler := NewTerminalHandler(mockUC)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
			c.SetParamNames("id")
			c.SetParamValues("T2")

			require.NoError(t, handler.DeleteTerminal(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestTerminalHandler_SyncTerminals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTerminalUC(ctrl)
	mockUC.EXPECT().Sync(gomock.Any()).Return(terminals.SyncResult{Source: terminals.SourceFallback, Count: 2}, nil)
	handler := NewTerminalHandler(mockUC)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/terminals/sync", nil), rec)

	require.NoError(t, handler.SyncTerminals(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "fallback", data["source"])
	assert.Equal(t, float64(2), data["count"])
}
