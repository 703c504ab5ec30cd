// Package dashboard holds the deep-link modal controller shared by the
// dashboard list pages. The controller maps URL query state plus an
// in-memory override to one modal presentation mode.
package dashboard

import "net/url"

type ModalState string

const (
	ModalClosed  ModalState = "closed"
	ModalEdit    ModalState = "edit"
	ModalDetails ModalState = "details"
	ModalMembers ModalState = "members"
)

// queryParam is the deep-link key. Only the selected item's id survives a
// reload; the members override is in-memory only.
const queryParam = "id"

// ModalController drives which modal a list page shows. Two independent
// inputs: the URL query (persisted across reloads) and an override flag
// used only for the Members modal. canEdit is a capability check
// evaluated on every open, so a role change mid-session takes effect on
// the next open rather than being frozen at construction.
type ModalController struct {
	canEdit        func() bool
	selectedItemID string
	membersOpen    bool
}

func NewModalController(canEdit func() bool) *ModalController {
	if canEdit == nil {
		canEdit = func() bool { return false }
	}
	return &ModalController{canEdit: canEdit}
}

// State reports the current modal mode.
func (c *ModalController) State() ModalState {
	if c.selectedItemID == "" {
		return ModalClosed
	}
	if c.membersOpen {
		return ModalMembers
	}
	if c.canEdit() {
		return ModalEdit
	}
	return ModalDetails
}

// SelectedItemID returns the id of the item the open modal is showing,
// or "" when closed.
func (c *ModalController) SelectedItemID() string {
	return c.selectedItemID
}

// Open selects an item and writes its id into the query values. The
// resulting state is Edit for callers with edit capability and Details
// otherwise; the caller does not choose between the two.
func (c *ModalController) Open(itemID string, query url.Values) {
	c.selectedItemID = itemID
	c.membersOpen = false
	query.Set(queryParam, itemID)
}

// OpenMembers shows the members modal for an item without touching the
// URL, so a reload falls back to the query-driven state.
func (c *ModalController) OpenMembers(itemID string, query url.Values) {
	c.selectedItemID = itemID
	c.membersOpen = true
}

// Close clears the query param, the selection and the override.
func (c *ModalController) Close(query url.Values) {
	query.Del(queryParam)
	c.selectedItemID = ""
	c.membersOpen = false
}

// SyncQuery reconciles the controller with externally changed query
// values (back button, manual URL edit). Absence of the id param clears
// the selection and the members override; presence selects that item.
func (c *ModalController) SyncQuery(query url.Values) {
	id := query.Get(queryParam)
	if id == "" {
		c.selectedItemID = ""
		c.membersOpen = false
		return
	}
	if id != c.selectedItemID {
		c.selectedItemID = id
		c.membersOpen = false
	}
}
