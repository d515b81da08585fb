package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllable_Uncontrolled_TracksLastSet(t *testing.T) {
	c := New(Options[bool]{Default: false})

	assert.False(t, c.Controlled())
	assert.False(t, c.Get())

	sequence := []bool{true, true, false, true, false}
	for _, v := range sequence {
		c.Set(v)
		assert.Equal(t, v, c.Get(), "Get should return the most recently set value")
	}
}

func TestControllable_Uncontrolled_LazyDefault(t *testing.T) {
	calls := 0
	c := New(Options[int]{
		Default: -1,
		DefaultFunc: func() int {
			calls++
			return 42
		},
	})

	assert.Equal(t, 1, calls, "thunk should be evaluated exactly once")
	assert.Equal(t, 42, c.Get(), "DefaultFunc should take precedence over Default")
}

func TestControllable_Uncontrolled_OnChange(t *testing.T) {
	var seen []int
	c := New(Options[int]{
		Default:  0,
		OnChange: func(v int) { seen = append(seen, v) },
	})

	c.Set(1)
	c.Set(2)
	c.SetFunc(func(v int) int { return v + 10 })

	assert.Equal(t, []int{1, 2, 12}, seen)
	assert.Equal(t, 12, c.Get())
}

func TestControllable_Controlled_SetDoesNotMutate(t *testing.T) {
	external := true
	var requested []bool
	c := New(Options[bool]{
		Value:    &external,
		OnChange: func(v bool) { requested = append(requested, v) },
	})

	assert.True(t, c.Controlled())
	assert.True(t, c.Get())

	c.Set(false)
	assert.True(t, c.Get(), "controlled Set must not mutate the cell")
	assert.Equal(t, []bool{false}, requested)

	// The owner accepts the change and syncs it back.
	c.Sync(false)
	assert.False(t, c.Get())

	c.SetFunc(func(v bool) bool { return !v })
	assert.False(t, c.Get(), "controlled SetFunc must not mutate the cell")
	assert.Equal(t, []bool{false, true}, requested, "transform applies to the current value")
}

func TestControllable_Controlled_GetFollowsSync(t *testing.T) {
	external := 1
	c := New(Options[int]{Value: &external})

	for _, v := range []int{2, 3, 5, 8} {
		c.Sync(v)
		assert.Equal(t, v, c.Get(), "Get should track the latest synced external value")
	}
}

func TestControllable_Controlled_NoOnChange(t *testing.T) {
	external := false
	c := New(Options[bool]{Value: &external})

	// Must not panic when no OnChange is supplied.
	c.Set(true)
	assert.False(t, c.Get())
}

func TestControllable_Sync_NoOpWhenUncontrolled(t *testing.T) {
	c := New(Options[int]{Default: 7})

	c.Sync(99)
	assert.Equal(t, 7, c.Get())
}
