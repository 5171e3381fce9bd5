package binder_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	type searchRequest struct {
		Title     string   `query:"title"`
		MinSalary *int     `query:"minSalary"`
		HasEquity string   `query:"hasEquity"`
		Tags      []string `query:"tags"`
		Page      int
		Internal  string `query:"-"`
	}

	t.Run("binds present values", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/jobs?title=eng&minSalary=50000&hasEquity=true&tags=a,b&tags=c&page=2&internal=x", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))

		assert.Equal(t, "eng", got.Title)
		require.NotNil(t, got.MinSalary)
		assert.Equal(t, 50000, *got.MinSalary)
		assert.Equal(t, "true", got.HasEquity)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		assert.Equal(t, 2, got.Page)
		assert.Empty(t, got.Internal)
	})

	t.Run("empty values are absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/jobs?minSalary=&title=", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Nil(t, got.MinSalary)
		assert.Empty(t, got.Title)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/jobs?minSalary=lots", nil)

		var got searchRequest
		err := binder.Query()(req, &got)
		require.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))

		var verr core.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "must be an integer", verr.Get("minSalary"))
	})

	t.Run("rejects non-struct target", func(t *testing.T) {
		t.Parallel()

		var s string
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &s)
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	type jobRequest struct {
		Username string `path:"username"`
		ID       int64  `path:"id"`
		Skipped  string `path:"-"`
	}

	var got jobRequest
	var bindErr error
	r := chi.NewRouter()
	r.Post("/users/{username}/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = jobRequest{}
		bindErr = binder.Path(binder.ChiParam)(r, &got)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users/u1/jobs/42", nil))
	require.NoError(t, bindErr)
	assert.Equal(t, jobRequest{Username: "u1", ID: 42}, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users/u1/jobs/abc", nil))
	require.ErrorIs(t, bindErr, binder.ErrFailedToParsePath)
	assert.Equal(t, http.StatusBadRequest, core.StatusCode(bindErr))
}

func TestPathCustomExtractor(t *testing.T) {
	t.Parallel()

	params := map[string]string{"handle": "c1"}
	extractor := func(_ *http.Request, name string) string { return params[name] }

	var got struct {
		Handle string `path:"handle"`
	}
	require.NoError(t, binder.Path(extractor)(httptest.NewRequest(http.MethodGet, "/", nil), &got))
	assert.Equal(t, "c1", got.Handle)
}

type createJob struct {
	Title  string  `json:"title"`
	Salary *int    `json:"salary"`
	Equity *string `json:"equity"`
}

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
		wantField   string
	}{
		{name: "valid", body: `{"title":"new","salary":100}`, contentType: "application/json", wantStatus: 200},
		{name: "charset param", body: `{"title":"new"}`, contentType: "application/json; charset=utf-8", wantStatus: 200},
		{name: "missing content type", body: `{"title":"new"}`, wantStatus: 200},
		{name: "wrong media type", body: `title=new`, contentType: "application/x-www-form-urlencoded", wantStatus: 415},
		{name: "unknown field", body: `{"title":"new","bogus":1}`, contentType: "application/json", wantStatus: 400, wantField: "body"},
		{name: "wrong type", body: `{"salary":"lots"}`, contentType: "application/json", wantStatus: 400, wantField: "salary"},
		{name: "empty body", body: ``, contentType: "application/json", wantStatus: 400, wantField: "body"},
		{name: "trailing data", body: `{"title":"a"} {"title":"b"}`, contentType: "application/json", wantStatus: 400, wantField: "body"},
		{name: "too large", body: `{"title":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, contentType: "application/json", wantStatus: 400, wantField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got createJob
			err := binder.JSON()(jsonRequest(tt.body, tt.contentType), &got)
			assert.Equal(t, tt.wantStatus, core.StatusCode(err))
			if tt.wantField != "" {
				var verr core.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.True(t, verr.Has(tt.wantField), "fields: %v", verr)
			}
		})
	}
}

type selfDecoding struct {
	Keys []string
}

func (s *selfDecoding) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) == 0 {
		return core.Invalid("data", "no data supplied")
	}
	for k := range m {
		s.Keys = append(s.Keys, k)
	}
	return nil
}

func TestJSONCustomUnmarshaler(t *testing.T) {
	t.Parallel()

	var got selfDecoding
	require.NoError(t, binder.JSON()(jsonRequest(`{"anything":1}`, "application/json"), &got))
	assert.Equal(t, []string{"anything"}, got.Keys)

	err := binder.JSON()(jsonRequest(`{}`, "application/json"), &selfDecoding{})
	var verr core.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("data"))
}

type stubValidator struct {
	err    error
	gotID  string
	gotDoc string
}

func (s *stubValidator) Validate(doc []byte, id string) error {
	s.gotID, s.gotDoc = id, string(doc)
	return s.err
}

func TestSchema(t *testing.T) {
	t.Parallel()

	t.Run("valid document is decoded", func(t *testing.T) {
		t.Parallel()

		v := &stubValidator{}
		var got createJob
		require.NoError(t, binder.Schema(v, "jobNew")(jsonRequest(`{"title":"new"}`, "application/json"), &got))
		assert.Equal(t, "jobNew", v.gotID)
		assert.Equal(t, `{"title":"new"}`, v.gotDoc)
		assert.Equal(t, "new", got.Title)
	})

	t.Run("schema violation stops decoding", func(t *testing.T) {
		t.Parallel()

		violation := errors.Join(errors.New("invalid"), core.Invalid("salary", "Invalid type"))
		v := &stubValidator{err: violation}
		var got createJob
		err := binder.Schema(v, "jobNew")(jsonRequest(`{"title":"new","salary":"x"}`, "application/json"), &got)
		require.ErrorIs(t, err, violation)
		assert.Empty(t, got.Title)
	})
}
