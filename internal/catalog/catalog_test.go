package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Firstyear/checklists/internal/checklist"
)

func TestPhotographyNamesSorted(t *testing.T) {
	c := Photography()
	assert.Equal(t, []string{
		"food restaurant",
		"outdoor flash",
		"outdoor pole",
		"outdoor reflector",
		"poleshow",
	}, c.Names())
	assert.Equal(t, 5, c.Len())
}

func TestOutdoorPoleSharesFlashSteps(t *testing.T) {
	c := Photography()
	flash, ok := c.Get("outdoor flash")
	require.True(t, ok)
	pole, ok := c.Get("outdoor pole")
	require.True(t, ok)

	require.Len(t, flash, 9)
	require.Len(t, pole, 16)
	assert.Equal(t, flash, pole[:len(flash)])
	assert.Equal(t, "Reflector could be used", pole[len(pole)-1])
}

func TestGetUnknown(t *testing.T) {
	_, ok := Photography().Get("studio")
	assert.False(t, ok)
	_, ok = Photography().Checklist("studio")
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	src := map[string][]string{"a": {"one", "two"}}
	c := New(src)
	src["a"][0] = "changed"

	steps, _ := c.Get("a")
	assert.Equal(t, "one", steps[0])
	steps[1] = "changed"
	again, _ := c.Get("a")
	assert.Equal(t, "two", again[1])

	names := c.Names()
	names[0] = "z"
	assert.Equal(t, []string{"a"}, c.Names())
}

func TestChecklistConversion(t *testing.T) {
	cl, ok := Photography().Checklist("outdoor reflector")
	require.True(t, ok)
	assert.Equal(t, "outdoor reflector", cl.Name)
	require.Len(t, cl.Items, 5)
	assert.Equal(t, "IBIS off", cl.Items[0].Name)
	for _, it := range cl.Items {
		assert.Equal(t, checklist.Unchecked, it.Status)
		assert.Nil(t, it.Comment)
	}
}
