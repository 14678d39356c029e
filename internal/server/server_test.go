package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChicagoDave/measure/pkg/validation"
	"github.com/ChicagoDave/measure/pkg/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(0, slog.New(slog.NewTextHandler(io.Discard, nil))).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestUnits(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/units")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got map[string][]unitInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got["length"], 7)
	assert.Len(t, got["weight"], 4)
	assert.Equal(t, unitInfo{Name: "kilometer", Symbol: "km"}, got["length"][3])
}

func TestConvert(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/api/convert", `{"magnitude":"2","unit":"km","to":"m"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got worksheet.Outcome
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "2000 m", got.Result)
}

func TestConvertAcrossFamilies(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/api/convert", `{"magnitude":"2","unit":"km","to":"kg"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var report validation.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, validation.LevelConversion, report.Errors[0].Level)
}

func TestConvertBadJSON(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/api/convert", `{"magnitude":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEval(t *testing.T) {
	srv := newTestServer(t)
	body := `{"steps":[
		{"name":"a","op":"plus","value":{"magnitude":"100","unit":"g"},"other":{"magnitude":"1","unit":"kg"}},
		{"name":"b","op":"times","value":{"magnitude":"1.5","unit":"ft"},"scalar":"4"}
	]}`
	resp := post(t, srv.URL+"/api/eval", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Outcomes []worksheet.Outcome `json:"outcomes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Outcomes, 2)
	assert.Equal(t, "1100 g", got.Outcomes[0].Result)
	assert.Equal(t, "6 ft", got.Outcomes[1].Result)
}

func TestValidate(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/api/validate", `{"steps":[{"name":"a","op":"div","value":{"magnitude":"1","unit":"g"},"scalar":"0"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report validation.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.False(t, report.Valid)
	assert.Equal(t, "steps[0].scalar", report.Errors[0].Path)
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t)
	post(t, srv.URL+"/api/convert", `{"magnitude":"1","unit":"lb","to":"oz"}`)
	post(t, srv.URL+"/api/convert", `{"magnitude":"1","unit":"lb","to":"m"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `measure_operations_total{family="weight",op="convert",outcome="ok"} 1`)
	assert.Contains(t, string(body), `measure_operations_total{family="weight",op="convert",outcome="invalid"} 1`)
}

func TestMetricsCountOnlyTheFailingStep(t *testing.T) {
	h := New(0, slog.New(slog.NewTextHandler(io.Discard, nil))).Handler()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	body := `{"steps":[
		{"name":"a","op":"times","value":{"magnitude":"1","unit":"m"},"scalar":"2"},
		{"name":"b","op":"times","value":{"magnitude":"1","unit":"kg"},"scalar":"2"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/eval", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	metrics := rec.Body.String()

	assert.Contains(t, metrics, `measure_operations_total{family="length",op="times",outcome="error"} 1`)
	assert.NotContains(t, metrics, `family="weight"`)
	assert.NotContains(t, metrics, `outcome="ok"`)
}
