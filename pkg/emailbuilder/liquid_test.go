package emailbuilder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureLiquidEngineRender(t *testing.T) {
	engine := NewSecureLiquidEngine()

	out, err := engine.Render("Hello {{ first_name }}!", map[string]interface{}{
		"first_name": "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada!", out)
}

func TestSecureLiquidEngineSkipsPlainContent(t *testing.T) {
	engine := NewSecureLiquidEngine()

	out, err := engine.Render("no placeholders here", nil)
	require.NoError(t, err)
	assert.Equal(t, "no placeholders here", out)
}

func TestSecureLiquidEngineSizeLimit(t *testing.T) {
	engine := NewSecureLiquidEngineWithOptions(time.Second, 64)

	big := "{{ a }}" + strings.Repeat("x", 100)
	_, err := engine.Render(big, map[string]interface{}{"a": "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum allowed size")
}

func TestSecureLiquidEngineReportsTemplateErrors(t *testing.T) {
	engine := NewSecureLiquidEngine()

	_, err := engine.Render("{% invalid_tag %}", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "liquid rendering error")
}

func TestSecureLiquidEngineControlFlow(t *testing.T) {
	engine := NewSecureLiquidEngine()

	out, err := engine.Render(
		"{% if vip %}Welcome back{% else %}Hello{% endif %}",
		map[string]interface{}{"vip": true},
	)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back", out)
}
