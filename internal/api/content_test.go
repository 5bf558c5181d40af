package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// fakeContent stores at most one page per type, the way the real backend
// does, and can be told to answer GETs with either shape.
type fakeContent struct {
	mu        sync.Mutex
	pages     map[models.ContentType]models.Content
	nextID    int
	asObject  bool
	putCalls  int
	postCalls int
}

func (f *fakeContent) handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/content", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		page, ok := f.pages[models.ContentType(req.URL.Query().Get("type"))]
		if f.asObject {
			if !ok {
				w.Write([]byte("null"))
				return
			}
			json.NewEncoder(w).Encode(page)
			return
		}
		if !ok {
			w.Write([]byte("[]"))
			return
		}
		json.NewEncoder(w).Encode([]models.Content{page})
	}).Methods("GET")

	r.HandleFunc("/content", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body models.ContentRequest
		json.NewDecoder(req.Body).Decode(&body)
		f.postCalls++
		f.nextID++
		page := models.Content{
			ID:      fmt.Sprintf("page-%d", f.nextID),
			Type:    body.Type,
			Content: body.Content,
		}
		f.pages[body.Type] = page
		json.NewEncoder(w).Encode(page)
	}).Methods("POST")

	r.HandleFunc("/content/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body models.ContentRequest
		json.NewDecoder(req.Body).Decode(&body)
		f.putCalls++
		for t, page := range f.pages {
			if page.ID == mux.Vars(req)["id"] {
				page.Content = body.Content
				f.pages[t] = page
				json.NewEncoder(w).Encode(page)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"content not found"}`))
	}).Methods("PUT")

	return r
}

func newContentFixture(t *testing.T, f *fakeContent) *ContentService {
	t.Helper()
	if f.pages == nil {
		f.pages = make(map[models.ContentType]models.Content)
	}
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	client := transport.NewClient(server.URL, transport.TokenFunc(func() string { return "tok" }), zap.NewNop())
	return NewContent(client, cache.NewInvalidator(), zap.NewNop())
}

func TestGetByTypeMissingPage(t *testing.T) {
	svc := newContentFixture(t, &fakeContent{})

	_, err := svc.GetByType(context.Background(), models.ContentAboutUs)
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestGetByTypeNormalizesArrayAndObject(t *testing.T) {
	f := &fakeContent{pages: map[models.ContentType]models.Content{
		models.ContentAboutUs: {ID: "page-1", Type: models.ContentAboutUs, Content: "<p>hello</p>"},
	}}
	svc := newContentFixture(t, f)

	fromArray, err := svc.GetByType(context.Background(), models.ContentAboutUs)
	require.NoError(t, err)
	assert.Equal(t, "page-1", fromArray.ID)

	f.mu.Lock()
	f.asObject = true
	f.mu.Unlock()

	fromObject, err := svc.GetByType(context.Background(), models.ContentAboutUs)
	require.NoError(t, err)
	assert.Equal(t, fromArray, fromObject)
}

func TestGetByTypeDecodesEntities(t *testing.T) {
	f := &fakeContent{pages: map[models.ContentType]models.Content{
		models.ContentPrivacyPolicy: {
			ID:      "page-1",
			Type:    models.ContentPrivacyPolicy,
			Content: "Terms &amp; conditions &lt;here&gt;",
		},
	}}
	svc := newContentFixture(t, f)

	page, err := svc.GetByType(context.Background(), models.ContentPrivacyPolicy)
	require.NoError(t, err)
	assert.Equal(t, "Terms & conditions <here>", page.Content)
}

func TestGetByTypeRejectsUnknownType(t *testing.T) {
	svc := newContentFixture(t, &fakeContent{})

	_, err := svc.GetByType(context.Background(), "faq")
	require.ErrorIs(t, err, ErrInvalidContentType)
}

func TestSaveCreatesThenUpdates(t *testing.T) {
	f := &fakeContent{}
	svc := newContentFixture(t, f)
	ctx := context.Background()

	created, err := svc.Save(ctx, models.ContentAboutUs, "first draft")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.Save(ctx, models.ContentAboutUs, "second draft")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "saving again must update the existing record")
	assert.Equal(t, "second draft", updated.Content)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, 1, f.postCalls)
	assert.Equal(t, 1, f.putCalls)
	assert.Len(t, f.pages, 1)
}

func TestSaveKeepsTypesIndependent(t *testing.T) {
	f := &fakeContent{}
	svc := newContentFixture(t, f)
	ctx := context.Background()

	about, err := svc.Save(ctx, models.ContentAboutUs, "about body")
	require.NoError(t, err)
	terms, err := svc.Save(ctx, models.ContentTermsAndConditions, "terms body")
	require.NoError(t, err)
	assert.NotEqual(t, about.ID, terms.ID)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, 2, f.postCalls)
	assert.Zero(t, f.putCalls)
}

func TestWatchRedeliversAfterSave(t *testing.T) {
	f := &fakeContent{pages: map[models.ContentType]models.Content{
		models.ContentAboutUs: {ID: "page-1", Type: models.ContentAboutUs, Content: "old"},
	}}
	svc := newContentFixture(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watch := svc.Watch(ctx, models.ContentAboutUs)
	initial := recvResult(t, watch)
	require.NoError(t, initial.Err)
	require.Len(t, initial.Records, 1)
	assert.Equal(t, "old", initial.Records[0].Content)

	_, err := svc.Save(ctx, models.ContentAboutUs, "new")
	require.NoError(t, err)

	refreshed := recvResult(t, watch)
	require.NoError(t, refreshed.Err)
	require.Len(t, refreshed.Records, 1)
	assert.Equal(t, "new", refreshed.Records[0].Content)
}

func TestNormalizeContentShapes(t *testing.T) {
	_, err := normalizeContent(json.RawMessage(`null`))
	require.ErrorIs(t, err, ErrContentNotFound)

	_, err = normalizeContent(json.RawMessage(`[]`))
	require.ErrorIs(t, err, ErrContentNotFound)

	_, err = normalizeContent(json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrContentNotFound)

	record, err := normalizeContent(json.RawMessage(`[{"_id":"a","type":"about-us","content":"x"},{"_id":"b"}]`))
	require.NoError(t, err)
	assert.Equal(t, "a", record.ID)

	_, err = normalizeContent(json.RawMessage(`"surprise"`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrContentNotFound)

	_, err = normalizeContent(json.RawMessage(`42`))
	require.Error(t, err)
}
