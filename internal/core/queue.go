package core

// Queue is the user's playback queue as Spotify reports it.
type Queue struct {
	Current *Track  `json:"current"`
	Items   []Track `json:"items"`
}

// Len returns the number of tracks waiting after the current one.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Items)
}

// Empty reports whether nothing is playing and nothing is queued.
func (q *Queue) Empty() bool {
	return q == nil || (q.Current == nil && len(q.Items) == 0)
}
