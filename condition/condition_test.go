package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cond, err := New("price > 100 && sym == 'BTC'")
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(map[string]interface{}{"price": 150, "sym": "BTC"}))
	assert.False(t, cond.Evaluate(map[string]interface{}{"price": 50, "sym": "BTC"}))
	assert.False(t, cond.Evaluate(map[string]interface{}{"price": 150, "sym": "ETH"}))
}

func TestUndefinedVariableDoesNotMatch(t *testing.T) {
	cond, err := New("price > 100")
	require.NoError(t, err)

	assert.False(t, cond.Evaluate(map[string]interface{}{"sym": "BTC"}))
}

func TestCompileError(t *testing.T) {
	_, err := New("price >")
	require.Error(t, err)
}

func TestLikeMatch(t *testing.T) {
	cond, err := New(`like_match(sym, "BTC%")`)
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(map[string]interface{}{"sym": "BTCUSD"}))
	assert.True(t, cond.Evaluate(map[string]interface{}{"sym": "BTC"}))
	assert.False(t, cond.Evaluate(map[string]interface{}{"sym": "ETHUSD"}))

	cond, err = New(`like_match(sym, "B_C")`)
	require.NoError(t, err)
	assert.True(t, cond.Evaluate(map[string]interface{}{"sym": "BTC"}))
	assert.False(t, cond.Evaluate(map[string]interface{}{"sym": "BTTC"}))
}

func TestLikeMetaCharactersAreLiteral(t *testing.T) {
	cond, err := New(`like_match(path, "a.b%")`)
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(map[string]interface{}{"path": "a.b.c"}))
	assert.False(t, cond.Evaluate(map[string]interface{}{"path": "aXb.c"}))
}
