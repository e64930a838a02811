package store

import (
	"testing"

	"enrollapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreSaveAssignsIDs(t *testing.T) {
	s := NewUserStore()

	jane := s.Save(models.User{Name: "Jane", Email: "j@d"})
	bob := s.Save(models.User{ID: 99, Name: "Bob", Email: "b@c"})

	assert.Equal(t, 1, jane.ID)
	// A caller-supplied id is overwritten by the store.
	assert.Equal(t, 2, bob.ID)

	got, found := s.GetByID(1)
	require.True(t, found)
	assert.Equal(t, jane, got)
}

func TestUserStoreIDsNotReusedAfterDelete(t *testing.T) {
	s := NewUserStore()

	s.Save(models.User{Name: "Jane", Email: "j@d"})
	s.Save(models.User{Name: "Bob", Email: "b@c"})

	_, found := s.DeleteByID(2)
	require.True(t, found)

	carol := s.Save(models.User{Name: "Carol", Email: "c@d"})
	assert.Equal(t, 3, carol.ID)
}

func TestUserStoreGetByIDAbsent(t *testing.T) {
	s := NewUserStore()

	_, found := s.GetByID(1)
	assert.False(t, found)
}

func TestUserStoreFiltersAreExactMatch(t *testing.T) {
	s := NewUserStore()

	s.Save(models.User{Name: "Jane", Email: "j@d"})
	s.Save(models.User{Name: "Jane", Email: "x@y"})
	s.Save(models.User{Name: "Bob", Email: "j@d"})

	assert.Len(t, s.GetByName("Jane"), 2)
	// No case folding.
	assert.Empty(t, s.GetByName("jane"))
	assert.Len(t, s.GetByEmail("j@d"), 2)
	assert.Len(t, s.GetByEmailAndName("j@d", "Jane"), 1)
	assert.Empty(t, s.GetByEmailAndName("x@y", "Bob"))
	assert.Len(t, s.List(), 3)
}

func TestUserStoreUpdatePartialPatch(t *testing.T) {
	s := NewUserStore()
	s.Save(models.User{Name: "Jane", Email: "j@d"})

	// Empty values leave the record untouched.
	unchanged, found := s.Update(1, "", "")
	require.True(t, found)
	assert.Equal(t, "Jane", unchanged.Name)
	assert.Equal(t, "j@d", unchanged.Email)

	renamed, found := s.Update(1, "Janet", "")
	require.True(t, found)
	assert.Equal(t, "Janet", renamed.Name)
	assert.Equal(t, "j@d", renamed.Email)

	_, found = s.Update(42, "Nobody", "n@b")
	assert.False(t, found)
}

func TestUserStoreDeleteByID(t *testing.T) {
	s := NewUserStore()
	s.Save(models.User{Name: "Jane", Email: "j@d"})

	deleted, found := s.DeleteByID(1)
	require.True(t, found)
	assert.Equal(t, "Jane", deleted.Name)

	_, found = s.GetByID(1)
	assert.False(t, found)

	_, found = s.DeleteByID(1)
	assert.False(t, found)
}
