package commands

import (
	"testing"

	"specialty-match/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReindexCmd(t *testing.T) {
	ingest := new(MockIngestService)
	ingest.On("Reindex", mock.Anything).Return(68, nil).Once()
	useServices(t, &services{ingest: ingest})

	out, err := runRoot(t, "reindex")

	require.NoError(t, err)
	assert.Equal(t, "Indexed 68 specialties\n", out)
	ingest.AssertExpectations(t)
}

func TestReindexCmd_NoIndex(t *testing.T) {
	ingest := new(MockIngestService)
	ingest.On("Reindex", mock.Anything).Return(0, domain.NewInvalidInputError("no vector index configured")).Once()
	useServices(t, &services{ingest: ingest})

	_, err := runRoot(t, "reindex")

	assert.EqualError(t, err, "no vector index configured")
}
