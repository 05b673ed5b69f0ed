package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/guides"
	"github.com/abhisek/hairharmony/internal/metrics"
	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
	"github.com/abhisek/hairharmony/internal/store"
)

type testServer struct {
	*Server
	results store.ResultRepo
}

func newTestServer(t *testing.T, opts ...analysis.Option) *testServer {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)
	svc := analysis.NewService(analysis.DefaultConfig(), append([]analysis.Option{analysis.WithMetrics(m)}, opts...)...)

	return &testServer{
		Server:  New(svc, Options{Results: st.ResultRepo(), Metrics: m, Gatherer: reg}),
		results: st.ResultRepo(),
	}
}

func (ts *testServer) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", "", "X-Request-ID", "req-123")
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestQuestions(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []quiz.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Questions, 11)
	assert.Equal(t, quiz.SkinTone, body.Questions[0].ID)
	assert.Equal(t, quiz.KindText, body.Questions[10].Kind)
}

func TestAnalyzeColor_Preview(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/analyze-color", `{"answers":{"1":"warm-tan","2":"dark-brown","6":"warm-tones"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var p analysis.Preview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.True(t, p.IsPreview)
	assert.Equal(t, "*****", p.Season)
	assert.Equal(t, season.Autumn, p.PreviewSeason)
	assert.Equal(t, guides.DefaultCatalog().CheckoutURL(), p.CheckoutURL)
	assert.NotContains(t, rec.Body.String(), `"confidence":9`)
}

func TestAnalyzeColor_MalformedBody(t *testing.T) {
	ts := newTestServer(t)
	for _, body := range []string{`not json`, `{"answers":"blonde"}`, ``} {
		rec := ts.do(t, http.MethodPost, "/api/analyze-color", body)
		require.Equal(t, http.StatusOK, rec.Code, "body %q", body)

		var p analysis.Preview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, season.Spring, p.PreviewSeason, "body %q", body)
	}
}

func TestAnalyzeColorFull_SavesWithClientKey(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/analyze-color-full",
		`{"answers":{"1":"deep-brown","2":"black","3":"black","6":"cool-tones"}}`,
		ClientKeyHeader, "browser-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var res analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, season.Winter, res.Season)
	assert.Equal(t, analysis.SourceRules, res.Source)
	assert.True(t, res.FullAnalysis)
	assert.Equal(t, guides.DefaultCatalog().PDFURL(season.Winter), res.PDFURL)

	saved, err := ts.results.Get(context.Background(), "browser-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "winter", saved.Season)
	assert.Equal(t, "cool-tones", saved.Answers["6"])

	got := ts.do(t, http.MethodGet, "/api/results/browser-1", "")
	require.Equal(t, http.StatusOK, got.Code)
	var back analysis.Result
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &back))
	assert.Equal(t, res.Season, back.Season)
	assert.Equal(t, res.Reasoning, back.Reasoning)
	assert.Equal(t, res.Override, back.Override)
}

func TestAnalyzeColorFull_WithoutKeyDoesNotSave(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/analyze-color-full", `{"answers":{"10":"summer"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	all, err := ts.results.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAnalyzeColorFull_MalformedBody(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/analyze-color-full", `{"answers":`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, season.Spring, res.Season)
	assert.Equal(t, 70, res.Confidence)
}

type stubClassifier struct {
	verdict analysis.Verdict
	err     error
}

func (s stubClassifier) ClassifySeason(context.Context, quiz.Answers) (analysis.Verdict, error) {
	return s.verdict, s.err
}

func TestAnalyzeColorFull_External(t *testing.T) {
	ts := newTestServer(t, analysis.WithClassifier(stubClassifier{
		verdict: analysis.Verdict{Season: season.Summer, Confidence: 90, Reasoning: "Cool and soft."},
	}))
	rec := ts.do(t, http.MethodPost, "/api/analyze-color-full", `{"answers":{"1":"light-neutral"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, season.Summer, res.Season)
	assert.Equal(t, 90, res.Confidence)
	assert.Equal(t, analysis.SourceLLM, res.Source)
	assert.False(t, res.Fallback)
}

func TestAnalyzeSeason(t *testing.T) {
	ts := newTestServer(t, analysis.WithClassifier(stubClassifier{err: errors.New("offline")}))

	tests := []struct {
		name string
		body string
		code int
		want string
	}{
		{"rules fallback", `{"answers":{"10":"winter"}}`, http.StatusOK, `{"season":"winter"}`},
		{"numeric keys and values", `{"answers":{"4":"very-tanned","11":42}}`, http.StatusOK, `{"season":"winter"}`},
		{"empty answers", `{"answers":{}}`, http.StatusOK, `{"season":"spring"}`},
		{"missing answers", `{}`, http.StatusBadRequest, `{"error":"Invalid answers provided"}`},
		{"answers not an object", `{"answers":["spring"]}`, http.StatusBadRequest, `{"error":"Invalid answers provided"}`},
		{"null answers", `{"answers":null}`, http.StatusBadRequest, `{"error":"Invalid answers provided"}`},
		{"unparseable body", `{{{`, http.StatusOK, `{"season":"spring"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/analyze-season", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestResult_NotFound(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/results/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResult_NoStore(t *testing.T) {
	svc := analysis.NewService(analysis.DefaultConfig())
	s := New(svc, Options{Gatherer: prometheus.NewRegistry()})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/results/x", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuideRedirect(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/guides/Winter", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, guides.DefaultCatalog().PDFURL(season.Winter), rec.Header().Get("Location"))

	rec = ts.do(t, http.MethodGet, "/api/guides/monsoon", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutRedirect(t *testing.T) {
	catalog := guides.New(nil, "https://pay.example.com/c")
	ts := newTestServer(t, analysis.WithGuides(catalog))

	rec := ts.do(t, http.MethodGet, "/api/checkout", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://pay.example.com/c", rec.Header().Get("Location"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPost, "/api/analyze-color-full", `{"answers":{"10":"autumn"}}`)

	rec := ts.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "hairharmony_analysis_results_total")
	assert.Contains(t, body, `hairharmony_http_requests_total{method="POST",route="/api/analyze-color-full",status="2xx"} 1`)
}

func TestDecodeAnswers(t *testing.T) {
	got, err := decodeAnswers(json.RawMessage(`{"1":"fair-pink","2":true,"3":1.5,"4":null,"x":"ignored","99":"ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, quiz.Answers{
		quiz.SkinTone:  "fair-pink",
		quiz.HairColor: "true",
		quiz.EyeColor:  "1.5",
	}, got)

	_, err = decodeAnswers(nil)
	assert.Error(t, err)
}
