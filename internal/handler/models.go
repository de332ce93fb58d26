package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	TeamName    string `json:"team_name"`
	Description string `json:"description"`
}

type UpdateTeamRequest struct {
	TeamID      int    `json:"team_id"`
	TeamName    string `json:"team_name"`
	Description string `json:"description"`
}

type DeleteTeamRequest struct {
	TeamID int `json:"team_id"`
}

type TeamResponse struct {
	TeamID      int     `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
	MemberCount int     `json:"member_count"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type UpdateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type AddMemberRequest struct {
	TeamID     int    `json:"team_id"`
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	ChatUserID string `json:"chat_user_id"`
}

type RemoveMemberRequest struct {
	TeamID int    `json:"team_id"`
	UserID string `json:"user_id"`
}

type TeamMemberResponse struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	ChatUserID string `json:"chat_user_id,omitempty"`
	IsActive   bool   `json:"is_active"`
	JoinedAt   string `json:"joined_at"`
}

type AddMemberResponse struct {
	Member TeamMemberResponse `json:"member"`
}

type ListMembersResponse struct {
	Members []TeamMemberResponse `json:"members"`
}

type ScheduleRequest struct {
	TeamID       int    `json:"team_id"`
	Weekdays     []int  `json:"weekdays"`
	ReminderTime string `json:"reminder_time"`
	EndTime      string `json:"end_time"`
	Timezone     string `json:"timezone"`
}

type DeleteScheduleRequest struct {
	TeamID int `json:"team_id"`
}

type ScheduleResponse struct {
	ScheduleID   int    `json:"schedule_id"`
	TeamID       int    `json:"team_id"`
	Weekdays     []int  `json:"weekdays"`
	ReminderTime string `json:"reminder_time"`
	EndTime      string `json:"end_time"`
	Timezone     string `json:"timezone"`
	IsActive     bool   `json:"is_active"`
}

type CreateScheduleResponse struct {
	Schedule ScheduleResponse `json:"schedule"`
}

type UpdateScheduleResponse struct {
	Schedule ScheduleResponse `json:"schedule"`
}

type StandupActionRequest struct {
	StandupID int `json:"standup_id"`
}

type StandupResponseModel struct {
	StandupID      int     `json:"standup_id"`
	TeamID         int     `json:"team_id"`
	TeamName       string  `json:"team_name"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	StartedAt      *string `json:"started_at,omitempty"`
	EndedAt        *string `json:"ended_at,omitempty"`
	ResponseCount  int     `json:"response_count"`
	MemberCount    int     `json:"member_count"`
	CompletionRate float64 `json:"completion_rate"`
}

type StandupEnvelope struct {
	Standup StandupResponseModel `json:"standup"`
}

type ListStandupsResponse struct {
	Standups []StandupResponseModel `json:"standups"`
}

type SubmitResponseRequest struct {
	StandupID     int    `json:"standup_id"`
	YesterdayWork string `json:"yesterday_work"`
	TodayWork     string `json:"today_work"`
	Blockers      string `json:"blockers"`
	Mood          string `json:"mood"`
}

type ResponseModel struct {
	ResponseID    int    `json:"response_id"`
	StandupID     int    `json:"standup_id"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	TeamID        int    `json:"team_id"`
	TeamName      string `json:"team_name"`
	StandupDate   string `json:"standup_date"`
	YesterdayWork string `json:"yesterday_work"`
	TodayWork     string `json:"today_work"`
	Blockers      string `json:"blockers,omitempty"`
	Mood          string `json:"mood"`
	SubmittedAt   string `json:"submitted_at"`
}

type SubmitResponseResponse struct {
	Response ResponseModel `json:"response"`
}

type ListResponsesResponse struct {
	Responses []ResponseModel `json:"responses"`
}

type MissingMembersResponse struct {
	Members []TeamMemberResponse `json:"members"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	IsActive bool   `json:"is_active"`
}

type RegisterUserResponse struct {
	User UserResponse `json:"user"`
}

type OverviewResponse struct {
	TotalStandups        int      `json:"total_standups"`
	StandupsChange       *float64 `json:"standups_change"`
	TotalResponses       int      `json:"total_responses"`
	ResponsesChange      *float64 `json:"responses_change"`
	AvgParticipationRate float64  `json:"avg_participation_rate"`
	ParticipationChange  *float64 `json:"participation_change"`
	AvgMoodScore         float64  `json:"avg_mood_score"`
	MoodChange           *float64 `json:"mood_change"`
}

type TrendPointResponse struct {
	Date              string  `json:"date"`
	ParticipationRate float64 `json:"participation_rate"`
}

type MoodSliceResponse struct {
	Mood       string  `json:"mood"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MoodAnalysisResponse struct {
	MoodDistribution []MoodSliceResponse `json:"mood_distribution"`
}

type TeamPerformanceResponse struct {
	TeamID               int      `json:"team_id"`
	TeamName             string   `json:"team_name"`
	StandupsCount        int      `json:"standups_count"`
	AvgParticipationRate float64  `json:"avg_participation_rate"`
	TotalResponses       int      `json:"total_responses"`
	AvgMoodScore         float64  `json:"avg_mood_score"`
	AvgResponseTimeHours *float64 `json:"avg_response_time_hours"`
}

type HourCountResponse struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type DayCountResponse struct {
	DayName string `json:"day_name"`
	Count   int    `json:"count"`
}

type ResponsePatternsResponse struct {
	HourlyDistribution []HourCountResponse `json:"hourly_distribution"`
	DailyDistribution  []DayCountResponse  `json:"daily_distribution"`
}

type AnalyticsResponse struct {
	Overview            OverviewResponse          `json:"overview"`
	ParticipationTrends []TrendPointResponse      `json:"participation_trends"`
	MoodAnalysis        MoodAnalysisResponse      `json:"mood_analysis"`
	TeamPerformance     []TeamPerformanceResponse `json:"team_performance"`
	ResponsePatterns    ResponsePatternsResponse  `json:"response_patterns"`
}

type UserStatsResponse struct {
	TeamsCount        int     `json:"teams_count"`
	ResponsesThisWeek int     `json:"responses_this_week"`
	CurrentStreak     int     `json:"current_streak"`
	AvgMoodThisWeek   float64 `json:"avg_mood_this_week"`
}

type TeamStatsResponse struct {
	TeamID            int     `json:"team_id"`
	TeamName          string  `json:"team_name"`
	StandupsThisWeek  int     `json:"standups_this_week"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`
	UserParticipation int     `json:"user_participation"`
}

type DashboardResponse struct {
	UserStats       UserStatsResponse      `json:"user_stats"`
	TeamStats       []TeamStatsResponse    `json:"team_stats"`
	RecentStandups  []StandupResponseModel `json:"recent_standups"`
	RecentResponses []ResponseModel        `json:"recent_responses"`
}
