package domain

type Dashboard struct {
	UserStats       UserStats
	TeamStats       []TeamStats
	RecentStandups  []*Standup
	RecentResponses []*StandupResponse
}

type UserStats struct {
	TeamsCount        int
	ResponsesThisWeek int
	CurrentStreak     int
	AvgMoodThisWeek   float64
}

type TeamStats struct {
	TeamID            int
	TeamName          string
	StandupsThisWeek  int
	AvgCompletionRate float64
	UserParticipation int
}
