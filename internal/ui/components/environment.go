package components

import (
	"github.com/alexisbeaulieu97/mdblocks/internal/ui"
)

// Environment is an immutable set of keyed values inherited by every component
// rendered below the point where it was installed. The zero value is empty.
//
// Writing never mutates an existing Environment; it returns a new one whose
// lookups see the new value first and then fall through to the parent.
type Environment struct {
	head *envEntry
}

type envEntry struct {
	parent *envEntry
	key    any
	value  any
}

func (e Environment) lookup(key any) (any, bool) {
	for n := e.head; n != nil; n = n.parent {
		if n.key == key {
			return n.value, true
		}
	}
	return nil, false
}

func (e Environment) with(key, value any) Environment {
	return Environment{head: &envEntry{parent: e.head, key: key, value: value}}
}

// EnvironmentKey names a typed slot in the Environment. Reading a slot that was
// never written yields the key's default.
type EnvironmentKey[T any] struct {
	name string
	def  T
}

// NewEnvironmentKey creates a slot with the supplied default. Keys are compared
// by identity, so each call creates a distinct slot.
func NewEnvironmentKey[T any](name string, def T) *EnvironmentKey[T] {
	return &EnvironmentKey[T]{name: name, def: def}
}

// Name returns the key's diagnostic name.
func (k *EnvironmentKey[T]) Name() string {
	return k.name
}

// Default returns the value used when the slot was never written.
func (k *EnvironmentKey[T]) Default() T {
	return k.def
}

// Get reads the slot from env.
func (k *EnvironmentKey[T]) Get(env Environment) T {
	if v, ok := env.lookup(k); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return k.def
}

// IsSet reports whether the slot was written anywhere in env.
func (k *EnvironmentKey[T]) IsSet(env Environment) bool {
	_, ok := env.lookup(k)
	return ok
}

// Set returns a copy of env with the slot written.
func (k *EnvironmentKey[T]) Set(env Environment, value T) Environment {
	return env.with(k, value)
}

// From reads the slot from a render context.
func (k *EnvironmentKey[T]) From(ctx RenderContext) T {
	return k.Get(ctx.Env)
}

// In returns a copy of ctx with the slot written.
func (k *EnvironmentKey[T]) In(ctx RenderContext, value T) RenderContext {
	return ctx.WithEnv(k.Set(ctx.Env, value))
}

// EnvironmentOverride renders its child with an environment derived from the
// one it receives. The derived environment is only visible to the child's
// subtree.
type EnvironmentOverride struct {
	child  ui.Renderable
	derive func(Environment) Environment
}

// WithEnvironmentValue installs value under key for child and its descendants.
func WithEnvironmentValue[T any](child ui.Renderable, key *EnvironmentKey[T], value T) *EnvironmentOverride {
	return &EnvironmentOverride{
		child: child,
		derive: func(env Environment) Environment {
			return key.Set(env, value)
		},
	}
}

// TransformEnvironment installs an arbitrary derivation for child's subtree.
func TransformEnvironment(child ui.Renderable, derive func(Environment) Environment) *EnvironmentOverride {
	return &EnvironmentOverride{child: child, derive: derive}
}

// View renders the override with the default context.
func (o *EnvironmentOverride) View() string {
	return o.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child with the derived environment.
func (o *EnvironmentOverride) ViewWithContext(ctx RenderContext) string {
	if o.derive != nil {
		ctx = ctx.WithEnv(o.derive(ctx.Env))
	}
	return RenderWithContext(o.child, ctx)
}

// Child returns the wrapped renderable.
func (o *EnvironmentOverride) Child() ui.Renderable {
	return o.child
}
