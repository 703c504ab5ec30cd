package dashboard

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModalController_OpenRespectsCapability(t *testing.T) {
	t.Run("Editor", func(t *testing.T) {
		c := NewModalController(func() bool { return true })
		q := url.Values{}

		c.Open("item-1", q)
		assert.Equal(t, ModalEdit, c.State())
		assert.Equal(t, "item-1", q.Get("id"))
	})

	t.Run("Viewer", func(t *testing.T) {
		c := NewModalController(func() bool { return false })
		q := url.Values{}

		c.Open("item-1", q)
		assert.Equal(t, ModalDetails, c.State())
	})
}

func TestModalController_CapabilityEvaluatedPerOpen(t *testing.T) {
	// A role change mid-session must affect the next open, not be frozen
	// at construction time.
	editable := false
	c := NewModalController(func() bool { return editable })
	q := url.Values{}

	c.Open("item-1", q)
	assert.Equal(t, ModalDetails, c.State())

	editable = true
	assert.Equal(t, ModalEdit, c.State())
}

func TestModalController_MembersOverride(t *testing.T) {
	c := NewModalController(func() bool { return true })
	q := url.Values{}

	c.OpenMembers("item-1", q)
	assert.Equal(t, ModalMembers, c.State())
	assert.Equal(t, "item-1", c.SelectedItemID())
	// The members modal is in-memory only; the URL stays untouched.
	assert.Empty(t, q.Get("id"))

	// Opening the regular modal clears the override.
	c.Open("item-1", q)
	assert.Equal(t, ModalEdit, c.State())
}

func TestModalController_Close(t *testing.T) {
	c := NewModalController(func() bool { return true })
	q := url.Values{}

	c.Open("item-1", q)
	c.Close(q)

	assert.Equal(t, ModalClosed, c.State())
	assert.Empty(t, c.SelectedItemID())
	assert.Empty(t, q.Get("id"))
}

func TestModalController_SyncQuery(t *testing.T) {
	c := NewModalController(func() bool { return true })
	q := url.Values{}

	t.Run("BackButtonClearsSelection", func(t *testing.T) {
		c.OpenMembers("item-1", q)
		c.SyncQuery(url.Values{})
		assert.Equal(t, ModalClosed, c.State())
	})

	t.Run("DeepLinkSelectsItem", func(t *testing.T) {
		c.SyncQuery(url.Values{"id": []string{"item-2"}})
		assert.Equal(t, ModalEdit, c.State())
		assert.Equal(t, "item-2", c.SelectedItemID())
	})

	t.Run("NewIdDropsMembersOverride", func(t *testing.T) {
		c.OpenMembers("item-2", q)
		c.SyncQuery(url.Values{"id": []string{"item-3"}})
		assert.Equal(t, ModalEdit, c.State())
	})
}
