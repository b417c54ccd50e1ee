package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacedex/spacedex/pkg/logger"
)

func newTestFavoritesStore(t *testing.T, blobs *BlobStore) *FavoritesStore {
	t.Helper()

	favorites, err := NewFavoritesStore(blobs, logger.NewNop())
	require.NoError(t, err)
	return favorites
}

func TestAddLaunchDeduplicates(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddLaunch("l1")
	favorites.AddLaunch("l1")

	assert.True(t, favorites.IsFavoriteLaunch("l1"))
	assert.Equal(t, []string{"l1"}, favorites.Launches())
}

func TestAddRocketDeduplicates(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddRocket("r1")
	favorites.AddRocket("r1")

	assert.True(t, favorites.IsFavoriteRocket("r1"))
	assert.Equal(t, []string{"r1"}, favorites.Rockets())
}

func TestRemoveLaunch(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddLaunch("l1")
	favorites.AddLaunch("l2")
	favorites.RemoveLaunch("l1")

	assert.False(t, favorites.IsFavoriteLaunch("l1"))
	assert.Equal(t, []string{"l2"}, favorites.Launches())
}

func TestRemoveMissingLaunchIsNoop(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddLaunch("l1")
	favorites.RemoveLaunch("other")

	assert.Equal(t, []string{"l1"}, favorites.Launches())
}

func TestLaunchAndRocketSetsAreIndependent(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddLaunch("x1")
	favorites.AddRocket("x2")

	assert.False(t, favorites.IsFavoriteRocket("x1"))
	assert.False(t, favorites.IsFavoriteLaunch("x2"))
}

func TestFavoritesPreserveInsertionOrder(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddLaunch("l3")
	favorites.AddLaunch("l1")
	favorites.AddLaunch("l2")

	assert.Equal(t, []string{"l3", "l1", "l2"}, favorites.Launches())
}

func TestFavoritesSurviveRestart(t *testing.T) {
	blobs := newTestBlobStore(t)

	first := newTestFavoritesStore(t, blobs)
	first.AddLaunch("l1")
	first.AddRocket("r1")

	reopened := newTestFavoritesStore(t, blobs)

	assert.Equal(t, []string{"l1"}, reopened.Launches())
	assert.Equal(t, []string{"r1"}, reopened.Rockets())
}

func TestLaunchesReturnsACopy(t *testing.T) {
	favorites := newTestFavoritesStore(t, newTestBlobStore(t))

	favorites.AddLaunch("l1")
	list := favorites.Launches()
	list[0] = "mutated"

	assert.Equal(t, []string{"l1"}, favorites.Launches())
}
