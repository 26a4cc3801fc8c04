package httptransport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"mottak/internal/task"
	"mottak/pkg/sentinel"
)

type fakeSubmitter struct {
	submitted []task.Task
	err       error
}

func (f *fakeSubmitter) Submit(t task.Task) error {
	if f.err != nil {
		return f.err
	}
	f.submitted = append(f.submitted, t)
	return nil
}

type RouterSuite struct {
	suite.Suite

	submitter *fakeSubmitter
	router    http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.submitter = &fakeSubmitter{}
	s.router = NewRouter(NewHandler(s.submitter, nil), prometheus.NewRegistry())
}

func (s *RouterSuite) post(body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/internal/task", strings.NewReader(body))
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestSubmitTask() {
	s.Run("accepts a well-formed task", func() {
		s.SetupTest()
		rec := s.post(`{"type":"ROUTE_JOURNAL_ENTRY","payload":{"journalId":"j1"}}`)
		s.Equal(http.StatusAccepted, rec.Code)
		s.Require().Len(s.submitter.submitted, 1)
		s.Equal("ROUTE_JOURNAL_ENTRY", s.submitter.submitted[0].Type)
		s.NotEmpty(s.submitter.submitted[0].ID)
	})

	s.Run("rejects malformed bodies", func() {
		s.SetupTest()
		rec := s.post(`{`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects missing type", func() {
		s.SetupTest()
		rec := s.post(`{"payload":{}}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown task type maps to bad request", func() {
		s.SetupTest()
		s.submitter.err = sentinel.ErrNotFound
		rec := s.post(`{"type":"NO_SUCH_TYPE"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("full inbox maps to service unavailable", func() {
		s.SetupTest()
		s.submitter.err = sentinel.ErrUnavailable
		rec := s.post(`{"type":"ROUTE_JOURNAL_ENTRY"}`)
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("other errors map to internal error", func() {
		s.SetupTest()
		s.submitter.err = errors.New("boom")
		rec := s.post(`{"type":"ROUTE_JOURNAL_ENTRY"}`)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *RouterSuite) TestHealth() {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/internal/health", nil)
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"ok"`)
}

func (s *RouterSuite) TestMetricsEndpointServes() {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
}
