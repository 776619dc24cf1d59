package notification

// Upsert merges n into list by semantic id. A new id inserts unread. An
// existing id takes the fresh title and message but keeps its original
// CreatedAt, and its read flag survives unless forceUnread demands a
// re-surface: routine regeneration of a still-true condition must not
// reopen a notice the user already dismissed, while a genuine state
// transition must.
func Upsert(list []Notification, n Notification, forceUnread bool) []Notification {
	byID := make(map[string]int, len(list))
	for i, existing := range list {
		byID[existing.ID] = i
	}

	idx, exists := byID[n.ID]
	if !exists {
		n.Read = false
		return append(list, n)
	}

	merged := list[idx]
	merged.Title = n.Title
	merged.Message = n.Message
	merged.EmployeeID = n.EmployeeID
	merged.AutoGenerated = n.AutoGenerated
	if forceUnread {
		merged.Read = false
	}

	out := make([]Notification, len(list))
	copy(out, list)
	out[idx] = merged
	return out
}

// RegenerateAuto replaces the auto-generated subset of list with fresh,
// keeping manual notices verbatim. Fresh entries that share an id with a
// prior auto notice keep that notice's CreatedAt and read state, so a
// half-finished profile does not ping the user every sweep.
func RegenerateAuto(list []Notification, fresh []Notification) []Notification {
	prior := make(map[string]Notification)
	out := make([]Notification, 0, len(list)+len(fresh))
	for _, n := range list {
		if n.AutoGenerated {
			prior[n.ID] = n
			continue
		}
		out = append(out, n)
	}

	for _, f := range fresh {
		f.AutoGenerated = true
		if old, ok := prior[f.ID]; ok {
			f.CreatedAt = old.CreatedAt
			f.Read = old.Read
		} else {
			f.Read = false
		}
		out = append(out, f)
	}

	return out
}

// MarkRead flips the read flag of one notice, reporting whether it was
// found.
func MarkRead(list []Notification, id string) ([]Notification, bool) {
	for i, n := range list {
		if n.ID == id {
			out := make([]Notification, len(list))
			copy(out, list)
			out[i].Read = true
			return out, true
		}
	}
	return list, false
}
