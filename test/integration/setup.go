//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/events"
	pgrepo "github.com/bagdasarian/standup-tracker/internal/repository/postgres"
	"github.com/bagdasarian/standup-tracker/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции. Проверьте, что файл migrations/000001_init.up.sql существует")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

// env - сервисы поверх реальной БД, общая точка сборки для сценарных тестов
type env struct {
	db *sql.DB

	teamService       service.TeamService
	membershipService service.MembershipService
	scheduleService   service.ScheduleService
	standupService    service.StandupService
	responseService   service.ResponseService
	analyticsService  service.AnalyticsService
	dashboardService  service.DashboardService
	userService       service.UserService
}

func setupEnv(t *testing.T) *env {
	db := setupTestDB(t)

	teamRepo := pgrepo.NewTeamRepository(db)
	userRepo := pgrepo.NewUserRepository(db)
	membershipRepo := pgrepo.NewMembershipRepository(db)
	scheduleRepo := pgrepo.NewScheduleRepository(db)
	standupRepo := pgrepo.NewStandupRepository(db)
	responseRepo := pgrepo.NewResponseRepository(db)
	analyticsRepo := pgrepo.NewAnalyticsRepository(db)

	publisher := events.NewNoopPublisher()
	membershipService := service.NewMembershipService(membershipRepo, teamRepo, userRepo)

	analyticsService, err := service.NewAnalyticsService(analyticsRepo, "UTC")
	require.NoError(t, err)
	dashboardService, err := service.NewDashboardService(teamRepo, standupRepo, responseRepo, analyticsRepo, "UTC")
	require.NoError(t, err)

	return &env{
		db:                db,
		teamService:       service.NewTeamService(teamRepo),
		membershipService: membershipService,
		scheduleService:   service.NewScheduleService(scheduleRepo, teamRepo),
		standupService:    service.NewStandupService(standupRepo, responseRepo, membershipRepo, membershipService, publisher),
		responseService:   service.NewResponseService(responseRepo, standupRepo, membershipRepo, publisher),
		analyticsService:  analyticsService,
		dashboardService:  dashboardService,
		userService:       service.NewUserService(userRepo),
	}
}

// registerUser создает пользователя от имени администратора
func (e *env) registerUser(t *testing.T, username string) *domain.User {
	user, err := e.userService.Register(context.Background(), domain.Actor{UserID: "u0", IsAdmin: true}, username, false)
	require.NoError(t, err)
	return user
}

func (e *env) registerAdmin(t *testing.T, username string) *domain.User {
	user, err := e.userService.Register(context.Background(), domain.Actor{UserID: "u0", IsAdmin: true}, username, true)
	require.NoError(t, err)
	return user
}

// newTeam создает команду и добавляет лида от имени администратора
func (e *env) newTeam(t *testing.T, admin *domain.User, name string, lead *domain.User) *domain.Team {
	ctx := context.Background()
	adminActor := domain.Actor{UserID: admin.ID, IsAdmin: true}

	team, err := e.teamService.CreateTeam(ctx, adminActor, name, "")
	require.NoError(t, err)

	_, err = e.membershipService.AddMember(ctx, adminActor, team.ID, lead.ID, domain.RoleLead, "")
	require.NoError(t, err)

	return team
}
