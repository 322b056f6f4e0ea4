package integration

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpHandler "cashback-catalog-service/internal/adapter/http/handler"
	"cashback-catalog-service/internal/adapter/storage/csvfile"
	redisStorage "cashback-catalog-service/internal/adapter/storage/redis"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_integration"

// testApp wires the full stack: real CSV storage in a temp directory, a
// miniredis-backed view cache, the real services, and the real Gin router.

type testApp struct {
	server *httptest.Server
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dataDir := t.TempDir()
	merchantRepo := csvfile.NewMerchantRepo(dataDir)
	offerRepo := csvfile.NewOfferRepo(dataDir)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	viewCache := redisStorage.NewViewCache(rdb)

	log := zerolog.Nop()
	catalogSvc := service.NewCatalogService(merchantRepo, offerRepo, viewCache, log)
	querySvc := service.NewCatalogQueryService(merchantRepo, offerRepo, viewCache, time.Minute, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		QuerySvc:       querySvc,
		CatalogSvc:     catalogSvc,
		ViewCache:      viewCache,
		WebhookSecret:  webhookSecret,
		HealthCheckers: []ports.HealthChecker{csvfile.NewHealthCheck(dataDir), redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testApp{server: srv}
}

func (a *testApp) postForm(t *testing.T, path string, values url.Values) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(a.server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func formReader(values url.Values) io.Reader {
	return strings.NewReader(values.Encode())
}

// decodeQuiet is decodeBody for goroutines, where t.Helper assertions
// cannot run. A broken body simply yields nil.
func decodeQuiet(resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	var body map[string]interface{}
	if json.Unmarshal(raw, &body) != nil {
		return nil
	}
	return body
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return nil
	}
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func (a *testApp) createMerchant(t *testing.T, name string) string {
	t.Helper()
	resp, body := a.postForm(t, "/api/v1/merchants", url.Values{
		"merchant_name":      {name},
		"merchant_image_url": {"https://cdn.example.com/" + name + ".png"},
		"merchant_days":      {"7j"},
		"about_text":         {"À propos de " + name},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["data"].(map[string]interface{})["merchant_id"].(string)
}

func (a *testApp) createOffer(t *testing.T, values url.Values) string {
	t.Helper()
	resp, body := a.postForm(t, "/api/v1/offers", values)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["data"].(map[string]interface{})["offer_id"].(string)
}

func dataRows(t *testing.T, body map[string]interface{}) []map[string]interface{} {
	t.Helper()
	raw, ok := body["data"].([]interface{})
	require.True(t, ok, "data is not an array: %v", body)
	rows := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, r.(map[string]interface{}))
	}
	return rows
}

func TestCatalogCRUDFlow(t *testing.T) {
	app := newTestApp(t)

	merchantID := app.createMerchant(t, "Acme")
	offerID := app.createOffer(t, url.Values{
		"merchant_id":           {merchantID},
		"original_offer_amount": {"10%"},
		"offer_description":     {"10% de cashback"},
		"end_date":              {"2026-12-31"},
		"available":             {"true"},
		"cond_new_clients_only": {"true"},
	})

	// Rendered view joins offer and merchant and derives display fields.
	resp, body := app.get(t, "/api/v1/offers")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := dataRows(t, body)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, offerID, row["offer_id"])
	assert.Equal(t, "Acme", row["merchant_name"])
	assert.Equal(t, "Jusqu'à 10% de cashback", row["merchant_subtitle_display"])
	assert.Equal(t, true, row["is_available"])
	conds := row["active_conditions"].([]interface{})
	require.Len(t, conds, 1)

	// Full-replace update: unchecked boxes reset to false.
	resp, _ = app.postForm(t, "/api/v1/offers/"+offerID, url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"5% de cashback"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = app.get(t, "/api/v1/offers?include_staging=true")
	rows = dataRows(t, body)
	require.Len(t, rows, 1)
	assert.Equal(t, "5% de cashback", rows[0]["offer_description"])
	assert.Equal(t, false, rows[0]["is_available"])
	assert.Empty(t, rows[0]["active_conditions"])

	// Delete the offer.
	resp, _ = app.postForm(t, "/api/v1/offers/"+offerID+"/delete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = app.get(t, "/api/v1/offers?include_staging=true")
	assert.Empty(t, dataRows(t, body))
}

func TestUpdateOfferWithoutMerchantIDKeepsOwner(t *testing.T) {
	app := newTestApp(t)

	merchantID := app.createMerchant(t, "Acme")
	offerID := app.createOffer(t, url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"10% de cashback"},
		"available":         {"true"},
	})

	// The edit form never resubmits the owning merchant.
	resp, _ := app.postForm(t, "/api/v1/offers/"+offerID, url.Values{
		"offer_description": {"15% de cashback"},
		"available":         {"true"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := app.get(t, "/api/v1/offers")
	rows := dataRows(t, body)
	require.Len(t, rows, 1)
	assert.Equal(t, "15% de cashback", rows[0]["offer_description"])
	assert.Equal(t, "Acme", rows[0]["merchant_name"], "offer still joins to its original merchant")
}

func TestStagingOffersHiddenByDefault(t *testing.T) {
	app := newTestApp(t)

	merchantID := app.createMerchant(t, "Acme")
	app.createOffer(t, url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"brouillon"},
	})
	live := app.createOffer(t, url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"en ligne"},
		"available":         {"true"},
	})

	_, body := app.get(t, "/api/v1/offers")
	rows := dataRows(t, body)
	require.Len(t, rows, 1)
	assert.Equal(t, live, rows[0]["offer_id"])

	_, body = app.get(t, "/api/v1/offers?include_staging=true")
	assert.Len(t, dataRows(t, body), 2)
}

func TestMerchantDeleteLeavesOrphanedOffers(t *testing.T) {
	app := newTestApp(t)

	merchantID := app.createMerchant(t, "Acme")
	offerID := app.createOffer(t, url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"10% de cashback"},
		"available":         {"true"},
	})

	// Delete is not blocked by the offer still pointing at the merchant.
	resp, _ := app.postForm(t, "/api/v1/merchants/"+merchantID+"/delete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The offer drops out of the rendered view.
	_, body := app.get(t, "/api/v1/offers?include_staging=true")
	assert.Empty(t, dataRows(t, body))

	// But surfaces in the orphan listing.
	_, body = app.get(t, "/api/v1/offers/orphaned")
	rows := dataRows(t, body)
	require.Len(t, rows, 1)
	assert.Equal(t, offerID, rows[0]["offer_id"])
}

func TestDuplicateMerchantNameRejected(t *testing.T) {
	app := newTestApp(t)
	app.createMerchant(t, "Acme")

	resp, body := app.postForm(t, "/api/v1/merchants", url.Values{"merchant_name": {"Acme"}})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CAT_003", body["error_code"])
}

func TestOfferForUnknownMerchantRejected(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.postForm(t, "/api/v1/offers", url.Values{
		"merchant_id":       {"mer_00000000"},
		"offer_description": {"x"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "CAT_002", body["error_code"])
}

func TestMalformedEndDateRejected(t *testing.T) {
	app := newTestApp(t)
	merchantID := app.createMerchant(t, "Acme")

	resp, body := app.postForm(t, "/api/v1/offers", url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"x"},
		"end_date":          {"31/12/2026"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])
}

func TestUpdateMissingOfferIsNotFound(t *testing.T) {
	app := newTestApp(t)
	merchantID := app.createMerchant(t, "Acme")

	resp, body := app.postForm(t, "/api/v1/offers/off_00000000", url.Values{
		"merchant_id":       {merchantID},
		"offer_description": {"x"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CAT_001", body["error_code"])
}

func TestMerchantListSortedByName(t *testing.T) {
	app := newTestApp(t)
	app.createMerchant(t, "Zed")
	app.createMerchant(t, "Acme")
	app.createMerchant(t, "Mid")

	_, body := app.get(t, "/api/v1/merchants")
	rows := dataRows(t, body)
	require.Len(t, rows, 3)
	assert.Equal(t, "Acme", rows[0]["merchant_name"])
	assert.Equal(t, "Mid", rows[1]["merchant_name"])
	assert.Equal(t, "Zed", rows[2]["merchant_name"])
}

func TestWebhookHandshakeAndSignedEvent(t *testing.T) {
	app := newTestApp(t)

	// Handshake: no signature yet, token acknowledged with empty 200.
	resp, err := http.Post(app.server.URL+"/webhooks/catalog-sync", "application/json",
		strings.NewReader(`{"verification_token":"vt_abc"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Signed event.
	payload := []byte(`{"type":"catalog.updated"}`)
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(payload)
	sig := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest("POST", app.server.URL+"/webhooks/catalog-sync", strings.NewReader(string(payload)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpHandler.HeaderSignature, sig)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["received"])

	// Tampered signature is rejected.
	req, err = http.NewRequest("POST", app.server.URL+"/webhooks/catalog-sync", strings.NewReader(string(payload)))
	require.NoError(t, err)
	req.Header.Set(httpHandler.HeaderSignature, "sha256=deadbeef")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.get(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])

	deps := body["dependencies"].(map[string]interface{})
	assert.Contains(t, deps, "csv-data-dir")
	assert.Contains(t, deps, "redis")
}
