package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func notice(id string, read, auto bool) Notification {
	return Notification{
		ID:            id,
		EmployeeID:    "emp-1",
		Title:         "title " + id,
		Message:       "message " + id,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Read:          read,
		AutoGenerated: auto,
	}
}

func TestUpsert_InsertsUnread(t *testing.T) {
	fresh := notice("a", true, false)
	out := Upsert(nil, fresh, false)

	assert.Len(t, out, 1)
	// Inserts always land unread no matter what the producer set.
	assert.False(t, out[0].Read)
}

func TestUpsert_MergePreservesReadAndCreatedAt(t *testing.T) {
	existing := notice("a", true, false)
	list := []Notification{existing}

	fresh := notice("a", false, false)
	fresh.Title = "updated title"
	fresh.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	out := Upsert(list, fresh, false)

	assert.Len(t, out, 1)
	assert.Equal(t, "updated title", out[0].Title)
	assert.True(t, out[0].Read)
	assert.Equal(t, existing.CreatedAt, out[0].CreatedAt)
}

func TestUpsert_ForceUnreadResurfaces(t *testing.T) {
	list := []Notification{notice("a", true, false)}

	out := Upsert(list, notice("a", false, false), true)

	assert.False(t, out[0].Read)
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	list := []Notification{notice("a", true, false)}
	_ = Upsert(list, notice("a", false, false), true)

	assert.True(t, list[0].Read)
}

func TestRegenerateAuto_KeepsManualVerbatim(t *testing.T) {
	list := []Notification{
		notice("manual-1", true, false),
		notice("auto-1", false, true),
	}

	out := RegenerateAuto(list, nil)

	assert.Len(t, out, 1)
	assert.Equal(t, "manual-1", out[0].ID)
	assert.True(t, out[0].Read)
}

func TestRegenerateAuto_PreservesReadStateAcrossSweeps(t *testing.T) {
	dismissed := notice("profile-incomplete:badge:emp-1", true, true)
	list := []Notification{dismissed}

	fresh := notice("profile-incomplete:badge:emp-1", false, false)
	fresh.Message = "still missing"
	fresh.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	out := RegenerateAuto(list, []Notification{fresh})

	assert.Len(t, out, 1)
	assert.Equal(t, "still missing", out[0].Message)
	// A still-true condition does not ping the user again.
	assert.True(t, out[0].Read)
	assert.Equal(t, dismissed.CreatedAt, out[0].CreatedAt)
	assert.True(t, out[0].AutoGenerated)
}

func TestRegenerateAuto_NewConditionArrivesUnread(t *testing.T) {
	out := RegenerateAuto(nil, []Notification{notice("auto-new", true, false)})

	assert.Len(t, out, 1)
	assert.False(t, out[0].Read)
	assert.True(t, out[0].AutoGenerated)
}

func TestRegenerateAuto_StaleAutoDropped(t *testing.T) {
	list := []Notification{
		notice("auto-old", false, true),
		notice("manual-1", false, false),
	}
	fresh := []Notification{notice("auto-new", false, false)}

	out := RegenerateAuto(list, fresh)

	ids := []string{out[0].ID, out[1].ID}
	assert.ElementsMatch(t, []string{"manual-1", "auto-new"}, ids)
}

func TestMarkRead(t *testing.T) {
	list := []Notification{notice("a", false, false)}

	out, ok := MarkRead(list, "a")
	assert.True(t, ok)
	assert.True(t, out[0].Read)
	// Original slice is untouched.
	assert.False(t, list[0].Read)

	_, ok = MarkRead(list, "missing")
	assert.False(t, ok)
}
