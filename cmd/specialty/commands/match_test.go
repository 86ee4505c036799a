package commands

import (
	"bytes"
	"testing"

	"specialty-match/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCmd_TopFlag(t *testing.T) {
	cmd := NewMatchCmd()

	flag := cmd.Flags().Lookup("top")
	require.NotNil(t, flag)
	assert.Equal(t, "k", flag.Shorthand)
	assert.Equal(t, "5", flag.DefValue)
}

func TestMatchCmd_PrintsMatches(t *testing.T) {
	matcher := new(MockMatchService)
	matcher.On("FindSimilar", mock.Anything, "A", 5).Return([]domain.Match{
		{Name: "B", Score: 1},
		{Name: "C", Score: 0},
	}, nil)
	useServices(t, &services{match: matcher})

	out, err := runRoot(t, "match", "A")

	require.NoError(t, err)
	assert.Equal(t, "Top 5 most similar specialties:\nB: 1.0000\nC: 0.0000\n", out)
	matcher.AssertExpectations(t)
}

func TestMatchCmd_CustomTop(t *testing.T) {
	matcher := new(MockMatchService)
	matcher.On("FindSimilar", mock.Anything, "Tax Law", 2).Return([]domain.Match{
		{Name: "Corporate Tax", Score: 0.91234},
		{Name: "International Tax", Score: 0.85},
	}, nil)
	useServices(t, &services{match: matcher})

	out, err := runRoot(t, "match", "-k", "2", "Tax Law")

	require.NoError(t, err)
	assert.Equal(t, "Top 2 most similar specialties:\nCorporate Tax: 0.9123\nInternational Tax: 0.8500\n", out)
}

func TestMatchCmd_NotFound(t *testing.T) {
	matcher := new(MockMatchService)
	matcher.On("FindSimilar", mock.Anything, "Space Law", 5).Return(nil, domain.NewSpecialtyNotFoundError("Space Law"))
	useServices(t, &services{match: matcher})

	out, err := runRoot(t, "match", "Space Law")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no embedding found for specialty: Space Law")
	assert.Empty(t, out)
}

func TestMatchCmd_RejectsNonPositiveTop(t *testing.T) {
	matcher := new(MockMatchService)
	useServices(t, &services{match: matcher})

	_, err := runRoot(t, "match", "--top", "0", "Tax Law")

	assert.EqualError(t, err, "top must be positive, got 0")
	matcher.AssertNotCalled(t, "FindSimilar", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchCmd_RequiresLabel(t *testing.T) {
	useServices(t, &services{match: new(MockMatchService)})

	_, err := runRoot(t, "match")

	assert.Error(t, err)
}
