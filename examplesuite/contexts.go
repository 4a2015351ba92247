package examplesuite

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/launchdarkly/bdd-examples/framework"
	"github.com/launchdarkly/bdd-examples/framework/ldtest"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/require"
)

// valueContext holds plain values for examples to check and modify. A new one is built for
// every example that uses it.
type valueContext struct {
	count    int
	address  string
	name     ldvalue.OptionalString
	nickname ldvalue.OptionalString
	numbers  []int
	months   map[int]string
}

func newValueContext() *valueContext {
	return &valueContext{
		address: "40 Hanamal St., Tel Aviv, Israel",
		name:    ldvalue.NewOptionalString("Bob"),
		numbers: []int{1, 2, 3},
		months:  map[int]string{1: "January", 2: "February"},
	}
}

// recordContext lets an example write to the shared record store. Its After hook deletes
// whatever the example wrote, so the next example starts with an empty store.
type recordContext struct {
	store   *recordStore
	client  *http.Client
	written []string
	logger  framework.Logger
}

func (s *Suite) newRecordContext() *recordContext {
	return &recordContext{
		store:  s.store,
		client: s.store.server.Client(),
		logger: framework.NullLogger(),
	}
}

// put writes a record under a new key and returns the key.
func (r *recordContext) put(t *ldtest.T, value string) string {
	r.logger = framework.LoggerWithPrefix(t.DebugLogger(), "[record store] ")
	key := r.store.nextKey()
	r.written = append(r.written, key) // the store may have saved it even if the request fails
	req, err := http.NewRequest("PUT", r.store.url(key), bytes.NewBufferString(value))
	require.NoError(t, err)
	resp, err := r.client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	r.logger.Printf("wrote %s", key)
	return key
}

// get reads a record, returning false if it does not exist.
func (r *recordContext) get(t *ldtest.T, key string) (string, bool) {
	resp, err := r.client.Get(r.store.url(key))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return "", false
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data), true
}

func (r *recordContext) After() error {
	var firstErr error
	for _, key := range r.written {
		if err := r.delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.written = nil
	return firstErr
}

func (r *recordContext) delete(key string) error {
	req, err := http.NewRequest("DELETE", r.store.url(key), nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not revert %s: %w", key, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("could not revert %s: store returned HTTP status %d", key, resp.StatusCode)
	}
	r.logger.Printf("reverted %s", key)
	return nil
}
