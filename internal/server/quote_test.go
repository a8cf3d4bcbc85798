package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	quotedomain "github.com/lodgewise/lodgewise/internal/quote/domain"
)

type quoteServiceMock struct{ mock.Mock }

func (m *quoteServiceMock) Quote(ctx context.Context, req quotedomain.QuoteRequest) (*quotedomain.QuoteResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*quotedomain.QuoteResult)
	return result, args.Error(1)
}

func newTestServer(t *testing.T) (*Server, *quoteServiceMock) {
	t.Helper()

	svc := &quoteServiceMock{}
	s := NewServer(Params{
		Engine:   NewEngine(zap.NewNop()),
		Log:      zap.NewNop(),
		QuoteSvc: svc,
	})
	s.RegisterRoutes()
	return s, svc
}

func postQuote(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func validBody() map[string]any {
	return map[string]any{
		"property_id":  "1",
		"room_type_id": "10",
		"check_in":     "2026-03-01",
		"check_out":    "2026-03-04",
		"total_guests": 2,
	}
}

func TestCreateQuote_OK(t *testing.T) {
	s, svc := newTestServer(t)

	svc.On("Quote", mock.Anything, mock.Anything).Return(&quotedomain.QuoteResult{
		QuoteRef:       "01JABCDEFGH",
		TotalAmount:    840,
		PricePerNight:  240,
		NumberOfNights: 3,
	}, nil)

	rec := postQuote(t, s, validBody())
	require.Equal(t, http.StatusOK, rec.Code)

	// The result fields live at the top level of the body, no envelope.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, 840.0, raw["total_amount"])
	assert.Equal(t, 240.0, raw["price_per_night"])
	assert.Equal(t, 3.0, raw["number_of_nights"])
	assert.Equal(t, "01JABCDEFGH", raw["quote_ref"])
	assert.NotContains(t, raw, "data")

	var resp quotedomain.QuoteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 840.0, resp.TotalAmount)
	assert.Equal(t, 240.0, resp.PricePerNight)
	assert.Equal(t, 3, resp.NumberOfNights)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateQuote_MalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuote_BadDates(t *testing.T) {
	s, _ := newTestServer(t)

	body := validBody()
	body["check_in"] = "01/03/2026"
	rec := postQuote(t, s, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuote_BadIDs(t *testing.T) {
	s, _ := newTestServer(t)

	body := validBody()
	body["room_type_id"] = "not-a-snowflake"
	rec := postQuote(t, s, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = validBody()
	body["selected_services_ids"] = []string{"bogus"}
	rec = postQuote(t, s, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuote_DomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"room type not found", quotedomain.ErrRoomTypeNotFound, http.StatusNotFound},
		{"min stay violation", quotedomain.ErrMinStayViolation, http.StatusBadRequest},
		{"max stay violation", quotedomain.ErrMaxStayViolation, http.StatusBadRequest},
		{"invalid date range", quotedomain.ErrInvalidDateRange, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, svc := newTestServer(t)
			svc.On("Quote", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := postQuote(t, s, validBody())
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.err.Error(), resp["error"])
		})
	}
}

func TestCreateQuote_UpstreamFailure(t *testing.T) {
	s, svc := newTestServer(t)
	svc.On("Quote", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := postQuote(t, s, validBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp["error"])
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
