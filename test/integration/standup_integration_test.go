//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/service"
)

func TestStandupLifecycle(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	// 1. Администратор регистрирует лида и четырёх участников
	admin := e.registerAdmin(t, "boss")
	lead := e.registerUser(t, "lead")
	leadActor := domain.Actor{UserID: lead.ID}

	var members []*domain.User
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		members = append(members, e.registerUser(t, name))
	}

	// 2. Администратор создаёт команду и назначает лида; лид набирает состав
	team := e.newTeam(t, admin, "backend", lead)
	require.True(t, team.IsActive)

	for _, member := range members {
		_, err := e.membershipService.AddMember(ctx, leadActor, team.ID, member.ID, domain.RoleMember, "")
		require.NoError(t, err)
	}

	teamMembers, err := e.membershipService.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, teamMembers, 5)

	// 3. Открываем стендап на сегодня; повторный вызов возвращает тот же
	today := time.Now().UTC().Truncate(24 * time.Hour)
	standup, err := e.standupService.StartForDate(ctx, team.ID, today)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, standup.Status)
	require.NotNil(t, standup.StartedAt)

	again, err := e.standupService.StartForDate(ctx, team.ID, today)
	require.NoError(t, err)
	assert.Equal(t, standup.ID, again.ID)

	// 4. Отвечают лид и двое участников
	input := service.SubmitResponseInput{
		YesterdayWork: "закрыл задачи",
		TodayWork:     "работаю над фичей",
		Mood:          domain.MoodGood,
	}
	for _, userID := range []string{lead.ID, members[0].ID, members[1].ID} {
		_, err := e.responseService.Submit(ctx, domain.Actor{UserID: userID}, standup.ID, input)
		require.NoError(t, err)
	}

	// Повторный ответ отклоняется
	_, err = e.responseService.Submit(ctx, domain.Actor{UserID: members[0].ID}, standup.ID, input)
	assert.ErrorIs(t, err, domain.ErrDuplicateResponse)

	// Не участник команды не может отвечать
	outsider := e.registerUser(t, "outsider")
	_, err = e.responseService.Submit(ctx, domain.Actor{UserID: outsider.ID}, standup.ID, input)
	assert.ErrorIs(t, err, domain.ErrNotTeamMember)

	// 5. Без ответа остались двое
	missing, err := e.standupService.MissingMembers(ctx, standup.ID)
	require.NoError(t, err)
	assert.Len(t, missing, 2)

	// 6. Лид завершает стендап: 3 ответа из 5 участников
	ended, err := e.standupService.End(ctx, leadActor, standup.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, ended.Status)
	require.NotNil(t, ended.EndedAt)
	assert.Equal(t, 3, ended.ResponseCount)
	assert.Equal(t, 5, ended.MemberCount)
	assert.InDelta(t, 60.0, ended.CompletionRate(), 0.01)

	// 7. После завершения ответы не принимаются
	_, err = e.responseService.Submit(ctx, domain.Actor{UserID: members[2].ID}, standup.ID, input)
	assert.ErrorIs(t, err, domain.ErrNotAcceptingResponses)

	// Повторное завершение отклоняется
	_, err = e.standupService.End(ctx, leadActor, standup.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
}

func TestStandupPermissions(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	admin := e.registerAdmin(t, "boss")
	lead := e.registerUser(t, "lead")
	member := e.registerUser(t, "member")
	leadActor := domain.Actor{UserID: lead.ID}

	team := e.newTeam(t, admin, "backend", lead)
	_, err := e.membershipService.AddMember(ctx, leadActor, team.ID, member.ID, domain.RoleMember, "")
	require.NoError(t, err)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	standup, err := e.standupService.StartForDate(ctx, team.ID, today)
	require.NoError(t, err)

	// Обычный участник не может завершить или отменить стендап
	_, err = e.standupService.End(ctx, domain.Actor{UserID: member.ID}, standup.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.standupService.Cancel(ctx, domain.Actor{UserID: member.ID}, standup.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Администратор может, даже не состоя в команде
	cancelled, err := e.standupService.Cancel(ctx, domain.Actor{UserID: "u999", IsAdmin: true}, standup.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}

func TestScheduleConflict(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	admin := e.registerAdmin(t, "boss")
	lead := e.registerUser(t, "lead")
	adminActor := domain.Actor{UserID: admin.ID, IsAdmin: true}

	team := e.newTeam(t, admin, "backend", lead)

	schedule := &domain.StandupSchedule{
		TeamID:       team.ID,
		Weekdays:     []int{1, 2, 3, 4, 5},
		ReminderTime: domain.DayTime{Hour: 9, Minute: 30},
		EndTime:      domain.DayTime{Hour: 18, Minute: 0},
		Timezone:     "Europe/Moscow",
	}
	created, err := e.scheduleService.CreateSchedule(ctx, adminActor, schedule)
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	// Лид не может управлять расписанием, это операция администратора
	_, err = e.scheduleService.CreateSchedule(ctx, domain.Actor{UserID: lead.ID}, schedule)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Второе активное расписание для той же команды запрещено
	_, err = e.scheduleService.CreateSchedule(ctx, adminActor, schedule)
	assert.ErrorIs(t, err, domain.ErrScheduleConflict)

	// После удаления можно создать заново
	require.NoError(t, e.scheduleService.DeleteSchedule(ctx, adminActor, team.ID))
	_, err = e.scheduleService.CreateSchedule(ctx, adminActor, schedule)
	require.NoError(t, err)
}
