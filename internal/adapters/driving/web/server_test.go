package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/adapters/driven/metrics"
	"github.com/ictam/agmsite/internal/adapters/driven/notify"
	"github.com/ictam/agmsite/internal/adapters/driven/storage/memory"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/services"
)

func siteContent() *domain.Content {
	return &domain.Content{
		Speakers: []domain.Speaker{
			{Name: "Dr. Jane Ansah SC.", Title: "Legal Counsel", Biography: "Works on **data protection**."},
			{Name: "Kwame Boateng", Title: "CTO", Topic: "AI in Public Services"},
		},
		Sponsors: []domain.Sponsor{
			{ID: "acme", Name: "Acme Corp", Tier: domain.TierGold, About: "Makes things."},
		},
		Programme: domain.Programme{
			Event: "ICTAM AGM 2025",
			Schedule: []domain.ProgrammeDay{{
				Day: "Wednesday, 19 November 2025",
				Sessions: []domain.Session{
					{Title: "Opening Ceremony", Time: "08:00", Type: "Ceremony"},
					{Title: "Keynote: AI & Society", Time: "10:00", Type: "Keynote", Speaker: "Kwame Boateng"},
				},
			}},
		},
		Links: []domain.Link{
			{Title: "ICTAM Website", Description: "Association site", URL: "https://ictam.org", Category: "Association"},
		},
	}
}

type testSite struct {
	server  *Server
	metrics *metrics.Observer
	sink    *bytes.Buffer
}

func newTestSite(t *testing.T, mutate ...func(*domain.SiteSettings)) *testSite {
	t.Helper()

	cache := services.NewContentCache(memory.NewContentSource(siteContent()))
	sink := &bytes.Buffer{}
	observer := metrics.NewObserver()

	search := services.NewSearchService(cache)
	search.SetObserver(observer)

	settings := domain.DefaultSiteSettings()
	settings.Server.Gzip = false
	settings.Contact.Rate = 100
	settings.Contact.Burst = 100
	for _, m := range mutate {
		m(&settings)
	}

	srv, err := NewServer(Services{
		Search:    search,
		Directory: services.NewDirectoryService(cache),
		Programme: services.NewProgrammeService(cache),
		Contact:   services.NewContactService(notify.NewLogSink(sink)),
	}, settings, observer)
	require.NoError(t, err)
	srv.now = func() time.Time { return domain.DefaultEventStart.Add(-26 * time.Hour) }

	return &testSite{server: srv, metrics: observer, sink: sink}
}

func (s *testSite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *testSite) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_APISearch(t *testing.T) {
	site := newTestSite(t)

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{"single term", "q=AI", []string{"Kwame Boateng", "Keynote: AI & Society"}},
		{"all terms required", "q=keynote+society", []string{"Keynote: AI & Society"}},
		{"kind filter", "q=AI&kind=session", []string{"Keynote: AI & Society"}},
		{"comma separated kinds", "q=AI&kind=speaker,session", []string{"Kwame Boateng", "Keynote: AI & Society"}},
		{"limit", "q=AI&limit=1", []string{"Kwame Boateng"}},
		{"offset", "q=AI&offset=1", []string{"Keynote: AI & Society"}},
		{"blank query", "q=+", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := site.get("/api/search?" + tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[searchResponse](t, rec)
			var titles []string
			for _, r := range resp.Results {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.titles, titles)
			assert.Equal(t, len(tt.titles), resp.Count)
		})
	}
}

func TestServer_APISearch_RejectsBadParameters(t *testing.T) {
	site := newTestSite(t)

	for _, query := range []string{"q=a&kind=bogus", "q=a&limit=-1", "q=a&offset=x"} {
		rec := site.get("/api/search?" + query)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, query)
		assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
	}
}

func TestServer_APISearch_TargetsResolve(t *testing.T) {
	site := newTestSite(t)

	rec := site.get("/api/search?q=a")
	resp := decode[searchResponse](t, rec)
	require.NotEmpty(t, resp.Results)

	for _, r := range resp.Results {
		if r.IsExternal() || strings.HasPrefix(r.Target, "/#") {
			continue
		}
		page := site.get(r.Target)
		assert.Equal(t, http.StatusOK, page.Code, "target %s of %q", r.Target, r.Title)
	}
}

func TestServer_APIDirectory(t *testing.T) {
	site := newTestSite(t)

	rec := site.get("/api/speakers")
	require.Equal(t, http.StatusOK, rec.Code)
	speakers := decode[[]speakerResponse](t, rec)
	require.Len(t, speakers, 2)
	assert.Equal(t, "dr-jane-ansah-sc", speakers[0].Slug)
	assert.Equal(t, "/speakers/dr-jane-ansah-sc", speakers[0].URL)

	rec = site.get("/api/speakers/kwame-boateng")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kwame Boateng", decode[speakerResponse](t, rec).Name)

	assert.Equal(t, http.StatusNotFound, site.get("/api/speakers/nobody").Code)
	assert.Equal(t, http.StatusNotFound, site.get("/api/speakers/Kwame-Boateng").Code)
	assert.Equal(t, http.StatusNotFound, site.get("/speakers/Kwame-Boateng").Code)

	rec = site.get("/api/sponsors/acme-corp")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", decode[sponsorResponse](t, rec).ID)

	rec = site.get("/api/sponsors?tier=platinum")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]sponsorResponse](t, rec))
}

func TestServer_APIProgramme(t *testing.T) {
	site := newTestSite(t)

	rec := site.get("/api/programme?type=Keynote")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[programmeResponse](t, rec)
	assert.Equal(t, "ICTAM AGM 2025", resp.Event)
	assert.Equal(t, []string{"Ceremony", "Keynote"}, resp.SessionTypes)
	require.Len(t, resp.Schedule, 1)
	require.Len(t, resp.Schedule[0].Sessions, 1)
	assert.Equal(t, "Keynote: AI & Society", resp.Schedule[0].Sessions[0].Title)

	assert.Equal(t, http.StatusUnprocessableEntity, site.get("/api/programme?day=5").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, site.get("/api/programme?day=first").Code)
}

func TestServer_Pages(t *testing.T) {
	site := newTestSite(t)

	tests := []struct {
		path     string
		code     int
		contains []string
	}{
		{"/", http.StatusOK, []string{"ICTAM AGM 2025", `href="/speakers/kwame-boateng"`, "Gold Sponsor", "<strong>1</strong> days", "<strong>2</strong> hours", "Virtual Pass"}},
		{"/speakers", http.StatusOK, []string{"Dr. Jane Ansah SC.", "AI in Public Services"}},
		{"/speakers/dr-jane-ansah-sc", http.StatusOK, []string{"<strong>data protection</strong>", "Legal Counsel"}},
		{"/sponsors", http.StatusOK, []string{"Gold Sponsor", `href="/sponsors/acme-corp"`}},
		{"/sponsors/acme", http.StatusOK, []string{"Acme Corp", "Makes things."}},
		{"/programme", http.StatusOK, []string{"Opening Ceremony", "Wed, 19 Nov"}},
		{"/search?q=acme", http.StatusOK, []string{"1 results", `href="/sponsors/acme-corp"`, "Sponsor"}},
		{"/search?q=zzz", http.StatusOK, []string{"No results found"}},
		{"/search", http.StatusOK, []string{"Type in the search box"}},
		{"/speakers/nobody", http.StatusNotFound, []string{"Page not found"}},
		{"/no/such/page", http.StatusNotFound, []string{"Page not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := site.get(tt.path)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestServer_ProgrammePagePrefilledFromSessionLink(t *testing.T) {
	site := newTestSite(t)

	rec := site.get(domain.SessionRoute("Keynote: AI & Society"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Keynote: AI &amp; Society")
	assert.NotContains(t, body, "<h3>Opening Ceremony</h3>")
}

func TestServer_HomeAfterEventStart(t *testing.T) {
	site := newTestSite(t)
	site.server.now = func() time.Time { return domain.DefaultEventStart.Add(time.Hour) }

	rec := site.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "under way")
}

func jsonRequest(t *testing.T, path string, v any) *http.Request {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_Contact(t *testing.T) {
	site := newTestSite(t)

	rec := site.do(jsonRequest(t, "/contact", domain.ContactSubmission{
		Name: "Ama", Email: "ama@example.com", Subject: "Hello", Message: "Hi there",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Contains(t, site.sink.String(), `"form":"contact"`)

	rec = site.do(jsonRequest(t, "/contact", domain.ContactSubmission{Name: "Ama", Email: "nope"}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[errorResponse](t, rec)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "subject")

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusUnprocessableEntity, site.do(req).Code)
}

func TestServer_RegisterHTMLForm(t *testing.T) {
	site := newTestSite(t)

	form := url.Values{
		"fullName":   {"Kofi Mensah"},
		"email":      {"kofi@example.com"},
		"passType":   {string(domain.PassVirtual)},
		"newsletter": {"on"},
	}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")

	rec := site.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration received")
	assert.Contains(t, site.sink.String(), `"newsletter":true`)

	form.Set("passType", "Gold Pass")
	req = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")

	rec = site.do(req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "passType")
}

func TestServer_FormsAreRateLimited(t *testing.T) {
	site := newTestSite(t, func(s *domain.SiteSettings) {
		s.Contact.Rate = 0.001
		s.Contact.Burst = 1
	})

	valid := domain.ContactSubmission{Name: "Ama", Email: "ama@example.com", Subject: "Hi", Message: "Hello"}
	assert.Equal(t, http.StatusCreated, site.do(jsonRequest(t, "/contact", valid)).Code)

	rec := site.do(jsonRequest(t, "/contact", valid))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	other := jsonRequest(t, "/contact", valid)
	other.RemoteAddr = "203.0.113.9:4000"
	assert.Equal(t, http.StatusCreated, site.do(other).Code)
}

func TestServer_Gzip(t *testing.T) {
	site := newTestSite(t, func(s *domain.SiteSettings) { s.Server.Gzip = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := site.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestServer_HealthAndMetrics(t *testing.T) {
	site := newTestSite(t)

	rec := site.get("/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 7, health["records"])

	site.get("/speakers/kwame-boateng")
	site.get("/api/search?q=ai")

	rec = site.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `route="GET /speakers/{slug}"`)
	assert.Contains(t, body, "agmsite_search_duration_seconds")
	assert.Contains(t, body, "agmsite_index_builds_total 1")
}

func TestServer_Serve(t *testing.T) {
	site := newTestSite(t)
	require.NoError(t, site.server.Listen("127.0.0.1:0"))
	require.NotEmpty(t, site.server.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- site.server.Serve(ctx) }()

	resp, err := http.Get("http://" + site.server.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
