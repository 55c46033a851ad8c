package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu      sync.Mutex
	studios map[string]*Studio
	clock   time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{studios: map[string]*Studio{}, clock: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (m *memRepo) List(ctx context.Context) ([]*Studio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*Studio{}
	for _, s := range m.studios {
		c := *s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Studio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.studios[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, nil
}

func (m *memRepo) Create(ctx context.Context, s *Studio) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock = m.clock.Add(time.Minute)
	s.CreatedAt, s.UpdatedAt = m.clock, m.clock
	c := *s
	m.studios[s.ID] = &c
	return nil
}

func (m *memRepo) Update(ctx context.Context, s *Studio) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.studios[s.ID]
	if !ok {
		return ErrStudioNotFound
	}
	s.CreatedAt, s.UpdatedAt = cur.CreatedAt, m.clock
	c := *s
	m.studios[s.ID] = &c
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.studios[id]; !ok {
		return ErrStudioNotFound
	}
	delete(m.studios, id)
	return nil
}

type lookupStub struct {
	names map[int64]string
	calls [][]int64
}

func (l *lookupStub) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	l.calls = append(l.calls, ids)
	out := map[int64]string{}
	for _, id := range ids {
		if n, ok := l.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(repo Repository, lookup EquipmentLookup) http.Handler {
	svc := NewService(repo, lookup)
	n := 0
	svc.newID = func() string { n++; return fmt.Sprintf("studio-%d", n) }
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Mount("/studios", h.PublicRoutes())
	r.Mount("/admin/studios", h.AdminRoutes(passthrough))
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

const podcastBody = `{
	"name": "Studio Podcast Pro",
	"area": 25,
	"category": "Podcast",
	"description": "Isolation acoustique optimale",
	"images": ["/api/uploads/a.jpg", "/api/uploads/b.jpg"],
	"equipment": [1, 2, 1],
	"price": "150.00"
}`

func TestCreateStudioResolvesEquipmentNames(t *testing.T) {
	lookup := &lookupStub{names: map[int64]string{1: "Mic A"}}
	router := newTestRouter(newMemRepo(), lookup)

	code, env := do(t, router, http.MethodPost, "/admin/studios", podcastBody)
	require.Equal(t, http.StatusCreated, code)

	var st StudioResponse
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, "studio-1", st.ID)
	assert.Equal(t, 150.0, st.Price)
	assert.Equal(t, []string{"1", "2"}, st.EquipmentIDs)
	assert.Equal(t, []string{"Mic A", "Equipment 2"}, st.Equipment)
	assert.Equal(t, []string{"/api/uploads/a.jpg", "/api/uploads/b.jpg"}, st.Images)
}

func TestDeletedEquipmentRendersPlaceholder(t *testing.T) {
	lookup := &lookupStub{names: map[int64]string{7: "Mic A"}}
	router := newTestRouter(newMemRepo(), lookup)

	body := `{"name":"S","area":10,"category":"Streaming","description":"d","equipment":[7],"price":10}`
	code, _ := do(t, router, http.MethodPost, "/admin/studios", body)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, router, http.MethodGet, "/studios/studio-1", "")
	require.Equal(t, http.StatusOK, code)
	var st StudioResponse
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, []string{"Mic A"}, st.Equipment)

	delete(lookup.names, 7)

	code, env = do(t, router, http.MethodGet, "/studios/studio-1", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, []string{"Equipment 7"}, st.Equipment)
}

func TestListIsStableAndBatchesLookup(t *testing.T) {
	lookup := &lookupStub{names: map[int64]string{1: "Mic A", 2: "Cam"}}
	router := newTestRouter(newMemRepo(), lookup)

	for i, eq := range []string{"[1]", "[1,2]", "[]"} {
		body := fmt.Sprintf(`{"name":"S%d","area":10,"category":"Production","description":"d","equipment":%s,"price":1}`, i, eq)
		code, _ := do(t, router, http.MethodPost, "/admin/studios", body)
		require.Equal(t, http.StatusCreated, code)
	}

	lookup.calls = nil
	_, first := do(t, router, http.MethodGet, "/studios", "")
	_, second := do(t, router, http.MethodGet, "/studios", "")
	assert.JSONEq(t, string(first.Data), string(second.Data))

	var list []StudioResponse
	require.NoError(t, json.Unmarshal(first.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "S2", list[0].Name)
	assert.Equal(t, "S0", list[2].Name)

	require.Len(t, lookup.calls, 2)
	assert.ElementsMatch(t, []int64{1, 2}, lookup.calls[0])
}

func TestStudioValidation(t *testing.T) {
	router := newTestRouter(newMemRepo(), &lookupStub{})

	cases := map[string]struct {
		body  string
		field string
	}{
		"bad category":  {`{"name":"S","area":10,"category":"Karaoke","description":"d","price":1}`, "category"},
		"zero area":     {`{"name":"S","area":0,"category":"Podcast","description":"d","price":1}`, "area"},
		"negative area": {`{"name":"S","area":-3,"category":"Podcast","description":"d","price":1}`, "area"},
		"negative":      {`{"name":"S","area":10,"category":"Podcast","description":"d","price":-1}`, "price"},
		"missing price": {`{"name":"S","area":10,"category":"Podcast","description":"d"}`, "price"},
		"text price":    {`{"name":"S","area":10,"category":"Podcast","description":"d","price":"cheap"}`, "price"},
		"blank name":    {`{"name":"   ","area":10,"category":"Podcast","description":"d","price":1}`, "name"},
		"bad equipment": {`{"name":"S","area":10,"category":"Podcast","description":"d","price":1,"equipment":[0]}`, "equipment[0]"},
		"string area":   {`{"name":"S","area":"25","category":"Podcast","description":"d","price":1}`, "area"},
		"decimal area":  {`{"name":"S","area":10.5,"category":"Podcast","description":"d","price":1}`, "area"},
		"huge area":     {`{"name":"S","area":2147483648,"category":"Podcast","description":"d","price":1}`, "area"},
		"huge price":    {`{"name":"S","area":10,"category":"Podcast","description":"d","price":100000000}`, "price"},
		"text images":   {`{"name":"S","area":10,"category":"Podcast","description":"d","price":1,"images":"a.jpg"}`, "images"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, env := do(t, router, http.MethodPost, "/admin/studios", tc.body)
			require.Equal(t, http.StatusBadRequest, code)
			require.NotNil(t, env.Error)
			assert.Contains(t, env.Error.Details, tc.field)
		})
	}
}

func TestUpdateAndDeleteUnknownStudio(t *testing.T) {
	router := newTestRouter(newMemRepo(), &lookupStub{})
	body := `{"name":"S","area":10,"category":"Podcast","description":"d","price":"12.5"}`

	code, _ := do(t, router, http.MethodPut, "/admin/studios/studio-nope", body)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodDelete, "/admin/studios/studio-nope", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodGet, "/studios/studio-nope", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUpdateStudioReplacesFields(t *testing.T) {
	router := newTestRouter(newMemRepo(), &lookupStub{})
	code, _ := do(t, router, http.MethodPost, "/admin/studios", podcastBody)
	require.Equal(t, http.StatusCreated, code)

	body := `{"name":"Renamed","area":30,"category":"Enregistrement","description":"new","price":99.9}`
	code, env := do(t, router, http.MethodPut, "/admin/studios/studio-1", body)
	require.Equal(t, http.StatusOK, code)

	var st StudioResponse
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, "Renamed", st.Name)
	assert.Equal(t, 99.9, st.Price)
	assert.Empty(t, st.Images)
	assert.Empty(t, st.Equipment)
}
