//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/blogscan"
	"github.com/fwojciec/blogscan/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_RecyclesBrowserAfterMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
	require.NoError(t, err)
	defer manager.Close()

	firstPID := manager.LauncherPID()
	require.NotZero(t, firstPID)

	for range 2 {
		page, err := manager.Page()
		require.NoError(t, err)
		require.NoError(t, manager.Release(page))
	}

	page, err := manager.Page()
	require.NoError(t, err)
	defer manager.Release(page)

	assert.NotEqual(t, firstPID, manager.LauncherPID())
}

func TestBrowserManager_DoesNotRecycleWhilePagesAreOpen(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(1))
	require.NoError(t, err)
	defer manager.Close()

	firstPID := manager.LauncherPID()

	held, err := manager.Page()
	require.NoError(t, err)
	defer manager.Release(held)

	second, err := manager.Page()
	require.NoError(t, err)
	defer manager.Release(second)

	assert.Equal(t, firstPID, manager.LauncherPID())
}

func TestBrowserManager_StealthPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithStealthPages(true))
	require.NoError(t, err)
	defer manager.Close()

	page, err := manager.Page()
	require.NoError(t, err)
	defer manager.Release(page)

	res, err := page.Eval(`() => navigator.webdriver`)
	require.NoError(t, err)
	assert.False(t, res.Value.Bool())
}

func TestBrowserManager_PageAfterClose(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())

	_, err = manager.Page()

	require.Error(t, err)
	assert.Equal(t, blogscan.EINVALID, blogscan.ErrorCode(err))
}
