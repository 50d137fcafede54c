package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
)

var greetingKey = NewEnvironmentKey("greeting", "hello")

type greeting struct{}

func (greeting) View() string { return greeting{}.ViewWithContext(DefaultContext()) }

func (greeting) ViewWithContext(ctx RenderContext) string { return greetingKey.From(ctx) }

func TestEnvironmentKeyDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	var env Environment
	assert.Equal(t, "hello", greetingKey.Get(env))
	assert.False(t, greetingKey.IsSet(env))

	child := greetingKey.Set(env, "hi")
	assert.Equal(t, "hi", greetingKey.Get(child))
	assert.True(t, greetingKey.IsSet(child))
	assert.Equal(t, "hello", greetingKey.Get(env), "parent is unchanged")

	grandchild := greetingKey.Set(child, "hey")
	assert.Equal(t, "hey", greetingKey.Get(grandchild))
	assert.Equal(t, "hi", greetingKey.Get(child))
}

func TestEnvironmentKeysAreDistinctByIdentity(t *testing.T) {
	t.Parallel()

	other := NewEnvironmentKey("greeting", "other default")
	env := greetingKey.Set(Environment{}, "hi")

	assert.Equal(t, "other default", other.Get(env))
	assert.Equal(t, "greeting", other.Name())
	assert.Equal(t, "other default", other.Default())
}

func TestEnvironmentOverrideScopesToSubtree(t *testing.T) {
	t.Parallel()

	view := VStack(
		WithEnvironmentValue[string](greeting{}, greetingKey, "bonjour"),
		greeting{},
		TransformEnvironment(greeting{}, func(env Environment) Environment {
			return greetingKey.Set(env, greetingKey.Get(env)+"!")
		}),
	)

	assert.Equal(t, "bonjour\nhello\nhello!", view.View())
}

func TestEnvironmentOverrideNestsInnermostFirst(t *testing.T) {
	t.Parallel()

	var inner ui.Renderable = WithEnvironmentValue[string](greeting{}, greetingKey, "inner")
	outer := WithEnvironmentValue(inner, greetingKey, "outer")

	assert.Equal(t, "inner", outer.View())
	assert.Equal(t, inner, outer.Child())
}
