package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecstore"
)

func newTestStore(t *testing.T, dim int) (*vecstore.VectorStore, *vecstore.Keyspace) {
	t.Helper()
	store := vecstore.New("vis_test")
	ks, err := store.CreateKeyspace(dim, "points")
	require.NoError(t, err)
	return store, ks
}

func TestNewModel(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		store, _ := newTestStore(t, 2)
		m, err := NewModel(store, "points")
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("MissingKeyspace", func(t *testing.T) {
		store, _ := newTestStore(t, 2)
		_, err := NewModel(store, "nope")
		require.ErrorIs(t, err, vecstore.ErrNotFound)
	})

	t.Run("UnrenderableDimension", func(t *testing.T) {
		store, _ := newTestStore(t, 5)
		_, err := NewModel(store, "points")
		require.Error(t, err)
	})
}

func TestModelUpdateKeys(t *testing.T) {
	store, _ := newTestStore(t, 3)
	m, err := NewModel(store, "points")
	require.NoError(t, err)

	key := func(s string) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	scale := m.scale
	m.Update(key("+"))
	assert.Greater(t, m.scale, scale)

	m.Update(key("-"))
	assert.InDelta(t, scale, m.scale, 1e-12)

	m.Update(key("r"))
	assert.Greater(t, m.angle, 0.0)

	m.Update(key("0"))
	assert.Zero(t, m.angle)

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
}

func TestModelView(t *testing.T) {
	store, ks := newTestStore(t, 2)
	require.NoError(t, ks.AddVector(vecstore.VectorFromSlice([]float64{1, 1})))

	m, err := NewModel(store, "points")
	require.NoError(t, err)

	t.Run("BeforeResize", func(t *testing.T) {
		assert.Contains(t, m.View(), "Initializing")
	})

	t.Run("RendersPoint", func(t *testing.T) {
		m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
		view := m.View()
		assert.True(t, strings.ContainsRune(view, pointRune))
		assert.Contains(t, view, "keyspace=points")
	})
}

func TestProject(t *testing.T) {
	t.Run("2DPassThrough", func(t *testing.T) {
		x, y := project(vecstore.VectorFromSlice([]float64{1, 2}), math.Pi/2)
		assert.Equal(t, 1.0, x)
		assert.Equal(t, 2.0, y)
	})

	t.Run("3DQuarterTurn", func(t *testing.T) {
		// Rotating (0,0,1) by 90° about the y axis lands on the x axis.
		x, y := project(vecstore.VectorFromSlice([]float64{0, 0, 1}), math.Pi/2)
		assert.InDelta(t, 1.0, x, 1e-12)
		assert.InDelta(t, 0.0, y, 1e-12)
	})

	t.Run("3DNoRotation", func(t *testing.T) {
		x, y := project(vecstore.VectorFromSlice([]float64{3, 4, 5}), 0)
		assert.InDelta(t, 3.0, x, 1e-12)
		assert.InDelta(t, 4.0, y, 1e-12)
	})
}
