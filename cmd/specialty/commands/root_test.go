package commands

import (
	"bytes"
	"errors"
	"testing"

	"specialty-match/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "specialty", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"embed", "match", "add", "search", "list", "reindex"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	useServices(t, &services{})

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"frobnicate"})

	assert.Error(t, cmd.Execute())
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt(1, "top"))
	assert.EqualError(t, validatePositiveInt(0, "top"), "top must be positive, got 0")
	assert.EqualError(t, validatePositiveInt(-3, "top"), "top must be positive, got -3")
}

func TestExecute_TearsDownAfterFailedCommand(t *testing.T) {
	matcher := new(MockMatchService)
	matcher.On("FindSimilar", mock.Anything, "A", 5).Return(nil, errors.New("store unreachable"))
	useServices(t, &services{match: matcher})
	container = &bootstrap.Container{}
	t.Cleanup(func() { container = nil })

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"match", "A"})

	err := execute(cmd)

	assert.EqualError(t, err, "store unreachable")
	assert.Nil(t, container)
	assert.Nil(t, app)
}
