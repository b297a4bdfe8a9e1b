package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestAddRuleOverridesBuiltins(t *testing.T) {
	e := itn.NewEngine()
	e.AddRule("my co", "MyCo Inc.")
	assert.Equal(t, "MyCo Inc.", mustNormalize(t, e, "my co"))
}

func TestAddRuleUpsertKeepsPosition(t *testing.T) {
	e := itn.NewEngine()
	e.AddRule("alpha", "Alpha")
	e.AddRule("beta", "Beta")
	e.AddRule("alpha", "Alpha Prime")

	assert.Equal(t, uint(2), e.RuleCount())
	assert.Equal(t, "Alpha Prime", mustNormalize(t, e, "alpha"))
	assert.Equal(t, "Beta", mustNormalize(t, e, "beta"))
}

func TestRemoveRule(t *testing.T) {
	e := itn.NewEngine()
	e.AddRule("my co", "MyCo Inc.")
	assert.True(t, e.RemoveRule("my co"))
	assert.False(t, e.RemoveRule("my co"))
	assert.Equal(t, uint(0), e.RuleCount())
}

func TestClearRules(t *testing.T) {
	e := itn.NewEngine()
	e.AddRule("a", "A")
	e.AddRule("b", "B")
	e.ClearRules()
	assert.Equal(t, uint(0), e.RuleCount())
}

func TestDefaultEngineRules(t *testing.T) {
	itn.Reset()
	defer itn.Reset()

	itn.AddRule("my co", "MyCo Inc.")
	assert.Equal(t, uint(1), itn.RuleCount())
	assert.Equal(t, "MyCo Inc.", itn.Normalize("my co"))
	assert.True(t, itn.RemoveRule("my co"))
}

func mustNormalize(t *testing.T, e *itn.Engine, input string) string {
	t.Helper()
	return e.Normalize(input)
}
