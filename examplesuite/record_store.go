package examplesuite

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
)

const recordsPathPrefix = "/records/"

// recordStore is a fake database with an HTTP interface. Unlike a fixture, it lives for the
// whole suite run, so anything an example writes to it has to be removed again afterward.
//
//	PUT    /records/{key}  stores the request body
//	GET    /records/{key}  returns it, or 404
//	DELETE /records/{key}  removes it
type recordStore struct {
	server   *httptest.Server
	records  map[string]string
	received []string
	lastKey  int
	lock     sync.Mutex
}

func newRecordStore() *recordStore {
	s := &recordStore{records: make(map[string]string)}
	s.server = httptest.NewServer(s.handler())
	return s
}

func (s *recordStore) handler() http.Handler {
	byMethod := httphelpers.HandlerForMethod("GET", http.HandlerFunc(s.getRecord),
		httphelpers.HandlerForMethod("PUT", http.HandlerFunc(s.putRecord),
			httphelpers.HandlerForMethod("DELETE", http.HandlerFunc(s.deleteRecord),
				httphelpers.HandlerWithStatus(http.StatusMethodNotAllowed))))
	recorded := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.lock.Lock()
		s.received = append(s.received, req.Method+" "+recordKey(req))
		s.lock.Unlock()
		byMethod.ServeHTTP(w, req)
	})
	return httphelpers.HandlerForPathRegex("^"+recordsPathPrefix+"[^/]+$", recorded, nil)
}

func recordKey(req *http.Request) string {
	return strings.TrimPrefix(req.URL.Path, recordsPathPrefix)
}

func (s *recordStore) getRecord(w http.ResponseWriter, req *http.Request) {
	s.lock.Lock()
	value, ok := s.records[recordKey(req)]
	s.lock.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(value))
}

func (s *recordStore) putRecord(w http.ResponseWriter, req *http.Request) {
	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.lock.Lock()
	s.records[recordKey(req)] = string(data)
	s.lock.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *recordStore) deleteRecord(w http.ResponseWriter, req *http.Request) {
	s.lock.Lock()
	delete(s.records, recordKey(req))
	s.lock.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *recordStore) nextKey() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.lastKey++
	return "record-" + strconv.Itoa(s.lastKey)
}

func (s *recordStore) size() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.records)
}

func (s *recordStore) url(key string) string {
	return s.server.URL + recordsPathPrefix + key
}

// requests returns a "METHOD key" line for every record request received so far.
func (s *recordStore) requests() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]string(nil), s.received...)
}

func (s *recordStore) close() {
	s.server.Close()
}
