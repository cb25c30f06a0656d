package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_PushBack(t *testing.T) {
	n := NewNavigator(ScreenLogin)
	n.Push(ScreenHome)
	n.Push(ScreenPublications)
	assert.Equal(t, ScreenPublications, n.Current())

	top, ok := n.Back()
	require.True(t, ok)
	assert.Equal(t, ScreenPublications, top)
	assert.Equal(t, ScreenHome, n.Current())

	_, _ = n.Back()
	_, ok = n.Back()
	assert.False(t, ok)
	assert.Equal(t, ScreenLogin, n.Current())
}

func TestNavigator_NavigateToExistingPops(t *testing.T) {
	n := NewNavigator(ScreenLogin)
	n.Push(ScreenHome)
	n.Push(ScreenPublications)
	n.Push(ScreenPublicationDetail)

	popped := n.Navigate(ScreenHome)
	assert.Equal(t, []Screen{ScreenPublicationDetail, ScreenPublications}, popped)
	assert.Equal(t, ScreenHome, n.Current())
	assert.Equal(t, 2, n.Depth())
}

func TestNavigator_NavigateToNewPushes(t *testing.T) {
	n := NewNavigator(ScreenHome)
	assert.Nil(t, n.Navigate(ScreenCreatePublication))
	assert.Equal(t, ScreenCreatePublication, n.Current())
	assert.Equal(t, 2, n.Depth())
}

func TestNavigator_Reset(t *testing.T) {
	n := NewNavigator(ScreenLogin)
	n.Push(ScreenHome)
	n.Reset(ScreenLogin)
	assert.Equal(t, 1, n.Depth())
	assert.Equal(t, ScreenLogin, n.Current())
}
