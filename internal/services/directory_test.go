package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
	"github.com/mondalsurojit/swipe-assignment/internal/repositories"
)

func newDirectoryWith(t *testing.T, candidates ...models.Candidate) *CandidateDirectory {
	t.Helper()

	directory := NewCandidateDirectory(repositories.NewMemoryCandidateRepository(), nil, zap.NewNop())
	for _, c := range candidates {
		require.NoError(t, directory.Add(context.Background(), c))
	}
	return directory
}

func directoryFixture() []models.Candidate {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []models.Candidate{
		{SessionID: "s1", Name: "Ada Lovelace", Email: "ada@example.com", FinalScore: 7.5, CompletedAt: base},
		{SessionID: "s2", Name: "Grace Hopper", Email: "grace@navy.mil", FinalScore: 9.0, CompletedAt: base.Add(time.Hour)},
		{SessionID: "s3", Name: "Alan Turing", Email: "alan@bletchley.uk", FinalScore: 7.5, CompletedAt: base.Add(2 * time.Hour)},
		{SessionID: "s4", Name: "Edsger Dijkstra", Email: "ewd@utexas.edu", FinalScore: 6.0, CompletedAt: base.Add(3 * time.Hour), Terminated: true},
	}
}

func TestDirectorySearchIsCaseInsensitive(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	byName, err := d.List("ADA", "", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "s1", byName[0].SessionID)

	byEmail, err := d.List("NAVY.MIL", "", "")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "s2", byEmail[0].SessionID)

	substring, err := d.List("al", "", "asc")
	require.NoError(t, err)
	// "Alan Turing" by name and "ada@example.com" does not contain "al",
	// but "alan@bletchley.uk" does; s1 has neither.
	ids := []string{substring[0].SessionID}
	for _, c := range substring[1:] {
		ids = append(ids, c.SessionID)
	}
	assert.Contains(t, ids, "s3")
	assert.NotContains(t, ids, "s2")
}

func TestDirectorySortByFinalScore(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	desc, err := d.List("", "finalScore", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s1", "s3", "s4"}, sessionIDs(desc))

	asc, err := d.List("", "finalScore", "asc")
	require.NoError(t, err)
	assert.Equal(t, "s4", asc[0].SessionID)
}

func TestDirectorySortIsStable(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	// s1 and s3 share a score; insertion order must survive both directions.
	desc, err := d.List("", "finalScore", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s3"}, sessionIDs(desc)[1:3])

	asc, err := d.List("", "finalScore", "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s3"}, sessionIDs(asc)[1:3])
}

func TestDirectorySortByCompletedAt(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	desc, err := d.List("", "completedAt", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"s4", "s3", "s2", "s1"}, sessionIDs(desc))
}

func TestDirectoryUnknownSortKeyKeepsInsertionOrder(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	out, err := d.List("", "nonsense", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, sessionIDs(out))
}

func TestDirectoryGet(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	candidate, err := d.Get("s2")
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", candidate.Name)

	_, err = d.Get("missing")
	assert.ErrorIs(t, err, models.ErrCandidateNotFound)
}

func TestDirectorySemanticSearchDisabled(t *testing.T) {
	d := newDirectoryWith(t, directoryFixture()...)

	assert.False(t, d.SemanticEnabled())

	_, err := d.SemanticSearch(context.Background(), "react hooks", 5)
	assert.Error(t, err)
}

func sessionIDs(candidates []models.Candidate) []string {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.SessionID
	}
	return ids
}
