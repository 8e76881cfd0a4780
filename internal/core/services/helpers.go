package services

// RefreshQueue schedules a background recomputation of a user's insights.
type RefreshQueue interface {
	Enqueue(userID string)
}

func enqueue(q RefreshQueue, userID string) {
	if q != nil {
		q.Enqueue(userID)
	}
}
