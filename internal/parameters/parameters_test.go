package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("max_depth=4, eval=mob,parallel,,expr=a=b")
	assert.Equal(t, Params{"max_depth": "4", "eval": "mob", "parallel": "", "expr": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("max_depth=4,eval=mob,parallel,randomness=0.5,stalemate_draw=false")

	depth, err := PopParamOr(params, "max_depth", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, depth)

	eval, err := PopParamOr(params, "eval", "mat")
	require.NoError(t, err)
	assert.Equal(t, "mob", eval)

	parallel, err := PopParamOr(params, "parallel", false)
	require.NoError(t, err)
	assert.True(t, parallel)

	draw, err := PopParamOr(params, "stalemate_draw", true)
	require.NoError(t, err)
	assert.False(t, draw)

	randomness, err := PopParamOr(params, "randomness", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), randomness)

	// Missing keys take the default.
	parallelism, err := PopParamOr(params, "parallelism", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, parallelism)

	assert.Empty(t, params)
	assert.NoError(t, CheckAllUsed(params))
}

func TestParseErrors(t *testing.T) {
	params := NewFromConfigString("max_depth=deep,parallel=maybe,foo,bar=1")
	_, err := GetParamOr(params, "max_depth", 3)
	assert.ErrorContains(t, err, "max_depth")
	_, err = PopParamOr(params, "parallel", false)
	assert.ErrorContains(t, err, "parallel")
	assert.Len(t, params, 4, "failed parameters are not removed")

	err = CheckAllUsed(Params{"foo": "", "bar": "1"})
	require.Error(t, err)
	assert.Equal(t, `unknown parameters "bar", "foo"`, err.Error())
}
