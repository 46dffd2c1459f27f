package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/catalog"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/engine"
	"energy-advisor/internal/model"
	"energy-advisor/internal/sharing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	store := data.NewMemoryStore()
	curve := &model.LoadCurve{CustomerID: "00002"}
	for h := 0; h < 60*24; h++ {
		ts := start.Add(time.Duration(h) * time.Hour)
		kwh := 0.5
		if hr := ts.Hour(); hr < 7 || hr >= 19 {
			kwh = 2.0
		}
		curve.Readings = append(curve.Readings, model.Reading{Timestamp: ts, KWh: kwh})
	}
	store.Put(curve)

	dir := data.DefaultDirectory()
	eng := engine.New(engine.Deps{
		Config:    config.Default(),
		Catalog:   catalog.Default(),
		Curves:    store,
		Directory: dir,
		Contracts: dir,
		Signals:   sharing.NewMemoryLog(),
		Log:       zerolog.Nop(),
	})

	router := gin.New()
	customers := NewCustomerHandler(eng)
	profiles := NewProfileHandler(eng)
	consumption := NewConsumptionHandler(eng, time.UTC)
	recommendations := NewRecommendationHandler(eng)
	shares := NewSharingHandler(eng)

	v1 := router.Group("/api/v1")
	v1.GET("/customers/:id", customers.GetCustomer)
	v1.GET("/customers/:id/contract", customers.GetContract)
	v1.GET("/customers/:id/consumption", consumption.GetConsumption)
	v1.GET("/customers/:id/profile", profiles.GetProfile)
	v1.GET("/customers/:id/recommendations", recommendations.GetRecommendations)
	v1.GET("/customers/:id/challenges", recommendations.GetChallenges)
	v1.GET("/customers/:id/partners", shares.GetPartners)
	v1.GET("/offers", recommendations.ListOffers)
	v1.POST("/signals", shares.SignalInterest)
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestGetCustomer(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Marie Schmidt", resp.Name)
	assert.Equal(t, "LU-2", resp.AreaCode)
}

func TestGetCustomer_Unknown(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/99999")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_CUSTOMER", errorCode(t, w))
}

func TestGetProfile(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/profile")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ev", resp.ProfileType)
	require.NotNil(t, resp.NightDayRatio)
	assert.Greater(t, *resp.NightDayRatio, 1.5)
	assert.Nil(t, resp.WinterSummerRatio, "single-season curve leaves the ratio null")
}

func TestGetProfile_InsufficientData(t *testing.T) {
	// 00001 exists in the directory but has no curve on file; the
	// store reports it as unknown.
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00001/profile")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_CUSTOMER", errorCode(t, w))
}

func TestGetConsumption(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/consumption?granularity=daily&start=2023-01-01&end=2023-01-07")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ConsumptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "daily", resp.Granularity)
	// Inclusive dates: Jan 1 through Jan 7 is seven buckets.
	assert.Len(t, resp.Buckets, 7)
	assert.Greater(t, resp.TotalKWh, 0.0)
}

func TestGetConsumption_WindowTooWide(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/consumption?granularity=hourly&start=2023-01-01&end=2023-01-31")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_WINDOW", errorCode(t, w))
}

func TestGetConsumption_BadGranularity(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/consumption?granularity=weekly&start=2023-01-01&end=2023-01-07")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
}

func TestGetConsumption_MonthlyWindow(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/consumption?granularity=monthly&start=2023-01&end=2023-02")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ConsumptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Buckets, 2)
}

func TestGetRecommendations(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/recommendations")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ev", resp.ProfileType)
	require.NotEmpty(t, resp.Offers)
	assert.Equal(t, "naturstrom-drive", resp.Offers[0].ID)
	require.NotNil(t, resp.Contract)
	assert.Equal(t, "nova-naturstroum", resp.Contract.OfferID)
}

func TestGetChallenges(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/challenges")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChallengesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Challenges)
	assert.Equal(t, "night-shift", resp.Challenges[0].ID)
}

func TestGetPartners(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/customers/00002/partners")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PartnersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 00002 is in LU-2 with a single producer.
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "PROD-3310", resp.Candidates[0].CustomerID)
}

func TestListOffers(t *testing.T) {
	router := testRouter(t)

	w := doGet(router, "/api/v1/offers")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OffersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Offers, 4)
}

func TestSignalInterest(t *testing.T) {
	router := testRouter(t)

	body := `{"consumer_id":"00002","producer_id":"PROD-3310"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.SignalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ES-00002-PROD-3310", resp.Reference)
	assert.NotEmpty(t, resp.ID)
}

func TestSignalInterest_MissingFields(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signals", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
}

func TestSignalInterest_UnknownConsumer(t *testing.T) {
	router := testRouter(t)

	body := `{"consumer_id":"99999","producer_id":"PROD-3310"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_CUSTOMER", errorCode(t, w))
}
