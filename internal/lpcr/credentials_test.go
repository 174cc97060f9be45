package lpcr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "lpcr-submit/internal/common/errors"
)

func TestResolveToken_ExplicitWins(t *testing.T) {
	t.Setenv("LPCR_TOKEN", "from-env")

	token, err := ResolveToken(StaticToken("from-flag"), EnvToken("LPCR_TOKEN"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", token)
}

func TestResolveToken_FallsBackToEnv(t *testing.T) {
	t.Setenv("LPCR_TOKEN", "from-env")

	token, err := ResolveToken(StaticToken(""), EnvToken("LPCR_TOKEN"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestResolveToken_AllSourcesEmpty(t *testing.T) {
	t.Setenv("LPCR_TOKEN", "")

	_, err := ResolveToken(StaticToken(""), EnvToken("LPCR_TOKEN"))
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeTokenMissing, stdErr.Code)
	assert.Contains(t, stdErr.Details, "LPCR_TOKEN")
}
