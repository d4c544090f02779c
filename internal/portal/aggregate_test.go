package portal

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
)

// fakeLister scripts per-section responses. A section whose entry is nil
// fails; the "" key serves the unfiltered fallback fetch.
type fakeLister struct {
	mu      sync.Mutex
	byKey   map[string][]api.PolicyRecord
	fullErr error
	calls   []string
}

func (f *fakeLister) ApprovedPolicies(ctx context.Context, section string) ([]api.PolicyRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, section)
	f.mu.Unlock()
	if section == "" && f.fullErr != nil {
		return nil, f.fullErr
	}
	records, ok := f.byKey[section]
	if !ok {
		return nil, errors.New("section unavailable")
	}
	return records, nil
}

func record(id, name, section string) api.PolicyRecord {
	return api.PolicyRecord{PolicyID: id, PolicyName: name, Section: section, Status: "approved"}
}

func TestFetchGroupsPerSection(t *testing.T) {
	lister := &fakeLister{byKey: map[string][]api.PolicyRecord{
		"1": {record("1.2.1", "Alpha", "1"), record("1.1.5", "Beta", "1")},
		"2": {record("2.1", "Gamma", "2")},
		"3": {},
	}}

	groups, err := NewAggregator(lister, nil).FetchGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Section 1", groups[0].Section.Label)
	require.Len(t, groups[0].Documents, 2)
	// Sorted segment-wise, so 1.1.5 comes before 1.2.1.
	assert.Equal(t, "1.1.5", groups[0].Documents[0].DisplayID)
	assert.Equal(t, "1.2.1", groups[0].Documents[1].DisplayID)
	assert.Len(t, groups[1].Documents, 1)
	assert.Empty(t, groups[2].Documents)
}

func TestFetchGroupsFallbackOnPartialFailure(t *testing.T) {
	// Section 2 fails; sections 1 and 3 succeed but their results must be
	// discarded in favor of one unfiltered fetch grouped client-side.
	lister := &fakeLister{byKey: map[string][]api.PolicyRecord{
		"1": {record("1.1", "Alpha", "1")},
		"3": {record("3.1", "Gamma", "3")},
		"": {
			record("1.1", "Alpha", "1"),
			record("2.1", "Beta", "2"),
			record("9.1", "Orphan", "9"), // unknown section buckets under the first
		},
	}}

	groups, err := NewAggregator(lister, nil).FetchGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	require.Len(t, groups[0].Documents, 2)
	assert.Equal(t, "1.1", groups[0].Documents[0].DisplayID)
	assert.Equal(t, "9.1", groups[0].Documents[1].DisplayID)
	require.Len(t, groups[1].Documents, 1)
	assert.Equal(t, "2.1", groups[1].Documents[0].DisplayID)
	assert.Empty(t, groups[2].Documents)
	assert.Contains(t, lister.calls, "")
}

func TestFetchGroupsBothPathsFail(t *testing.T) {
	lister := &fakeLister{
		byKey:   map[string][]api.PolicyRecord{},
		fullErr: errors.New("api down"),
	}

	groups, err := NewAggregator(lister, nil).FetchGroups(context.Background())
	require.Error(t, err)
	assert.Nil(t, groups)
	assert.EqualError(t, err, "api down")
}

func TestGroupBySectionSortsEachBucket(t *testing.T) {
	lister := &fakeLister{byKey: map[string][]api.PolicyRecord{
		"": {
			record("1.10.1", "Ten", "1"),
			record("1.2", "Two", "1"),
		},
	}}
	// Force the fallback path by failing every section.
	groups, err := NewAggregator(lister, nil).FetchGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2", groups[0].Documents[0].DisplayID)
	assert.Equal(t, "1.10.1", groups[0].Documents[1].DisplayID)
}
