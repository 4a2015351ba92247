package examplesuite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/bdd-examples/framework"
	"github.com/launchdarkly/bdd-examples/framework/ldtest"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultIDs(results []framework.TestResult) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.TestID.String())
	}
	return ret
}

func describeFailures(results framework.Results) string {
	var s string
	for _, f := range results.Failures {
		s += f.TestID.String() + ":"
		for _, err := range f.Errors {
			s += " " + err.Error()
		}
		s += "\n"
	}
	return s
}

func TestSuitePasses(t *testing.T) {
	s := NewSuite()
	defer s.Close()

	results := s.Run(nil, nil)
	require.True(t, results.OK(), describeFailures(results))

	passed, failed, pending := results.Counts()
	assert.Equal(t, 0, failed)
	assert.Equal(t, 2, pending)
	assert.Equal(t, len(results.Tests)-2, passed)
	assert.Equal(t, []string{
		"pending/handles leap years",
		"pending/can decide to be pending partway through",
	}, resultIDs(results.Pending))
}

func TestGroupsAreReportedInRegistrationOrder(t *testing.T) {
	s := NewSuite()
	defer s.Close()

	var expected []string
	for _, g := range s.Groups() {
		for _, e := range g.Examples {
			expected = append(expected, g.Label+"/"+e.Label)
		}
	}
	results := s.Run(nil, nil)
	assert.Equal(t, expected, resultIDs(results.Tests))
}

func TestCleanupRevertsEveryRecord(t *testing.T) {
	s := NewSuite()
	defer s.Close()

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^cleanup contexts/"))
	results := s.Run(filters.AsFilter, nil)
	require.True(t, results.OK(), describeFailures(results))
	assert.Len(t, results.Tests, 2)

	assert.Equal(t, 0, s.store.size())
	assert.Equal(t, []string{
		"PUT record-1", "GET record-1", "DELETE record-1",
		"PUT record-2", "DELETE record-2",
	}, s.store.requests())
}

func TestRecordStoreKeepsRequestBodies(t *testing.T) {
	s := NewSuite()
	defer s.Close()

	results := ldtest.RunGroups([]ldtest.ExampleGroup{
		ldtest.Describe("store", ldtest.ItWith("x", s.newRecordContext, func(t *ldtest.T, r *recordContext) {
			key := r.put(t, "Tel Aviv")
			value, found := r.get(t, key)
			require.True(t, found)
			assert.Equal(t, "Tel Aviv", value)
		})),
	}, nil, nil)
	require.True(t, results.OK(), describeFailures(results))
}

func TestRecordContextRevertsWriteEvenIfStoreReportsFailure(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(http.StatusInternalServerError))
	store := &recordStore{records: make(map[string]string)}
	store.server = httptest.NewServer(handler)
	s := &Suite{store: store}
	defer s.Close()

	results := ldtest.RunGroups([]ldtest.ExampleGroup{
		ldtest.Describe("store", ldtest.ItWith("x", s.newRecordContext, func(t *ldtest.T, r *recordContext) {
			r.put(t, "Haifa")
		})),
	}, nil, nil)
	assert.False(t, results.OK())

	put, del := <-requestsCh, <-requestsCh
	assert.Equal(t, "PUT", put.Request.Method)
	assert.Equal(t, "DELETE", del.Request.Method)
	assert.Equal(t, put.Request.URL.Path, del.Request.URL.Path)
}

func TestRecordContextCleanupReportsStoreErrors(t *testing.T) {
	s := NewSuite()
	r := s.newRecordContext()
	r.written = []string{"record-1"}
	s.Close()

	err := r.After()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not revert record-1")
}

func TestValueContextsAreIndependent(t *testing.T) {
	a, b := newValueContext(), newValueContext()
	a.months[3] = "March"
	a.numbers[0] = 100
	assert.Len(t, b.months, 2)
	assert.Equal(t, 1, b.numbers[0])
}
