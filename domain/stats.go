package domain

// UserCount is the number of messages one sender posted.
type UserCount struct {
	Username string
	Count    int
}

// Stats summarizes a conversation. PerUser is ordered by first appearance.
type Stats struct {
	TotalMessages   int
	PerUser         []UserCount
	DurationSeconds float64
}

func (s Stats) Count(username string) int {
	for _, uc := range s.PerUser {
		if uc.Username == username {
			return uc.Count
		}
	}
	return 0
}

func (s Stats) PerUserMap() map[string]int {
	m := make(map[string]int, len(s.PerUser))
	for _, uc := range s.PerUser {
		m[uc.Username] = uc.Count
	}
	return m
}
