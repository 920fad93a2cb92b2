package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	teamModel "github.com/shafraaxz/horse-league-sub002/internal/team/model"
)

// SQLite-friendly mirror of the teams table (no postgres column types).
type testTeam struct {
	TeamID      string    `gorm:"primaryKey;column:team_id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	ShortCode   string    `gorm:"column:short_code"`
	Coach       string    `gorm:"column:coach"`
	FoundedYear int       `gorm:"column:founded_year"`
	Notes       string    `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string {
	return "teams"
}

func setupRepository(t *testing.T) Repository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&testTeam{}))
	return New(db, zap.NewNop().Sugar())
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a team", func(t *testing.T) {
		repo := setupRepository(t)

		team := &teamModel.Team{TeamID: "t-1", Name: "Thunder FC", ShortCode: "THU"}
		require.NoError(t, repo.Create(ctx, team))

		got, err := repo.GetByID(ctx, "t-1")
		require.NoError(t, err)
		assert.Equal(t, "Thunder FC", got.Name)
		assert.Equal(t, "THU", got.ShortCode)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := setupRepository(t)

		require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamID: "t-1", Name: "Thunder FC"}))
		err := repo.Create(ctx, &teamModel.Team{TeamID: "t-2", Name: "Thunder FC"})
		assert.ErrorIs(t, err, teamModel.ErrTeamExists)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)

	t.Run("empty list", func(t *testing.T) {
		teams, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})

	t.Run("ordered by name", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamID: "t-1", Name: "Zenith"}))
		require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamID: "t-2", Name: "Arsenal Reserves"}))

		teams, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Arsenal Reserves", teams[0].Name)
		assert.Equal(t, "Zenith", teams[1].Name)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)

	require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamID: "t-1", Name: "Thunder FC"}))
	require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamID: "t-2", Name: "Harbor United"}))

	t.Run("updates fields", func(t *testing.T) {
		team, err := repo.GetByID(ctx, "t-1")
		require.NoError(t, err)

		team.Coach = "M. Silva"
		require.NoError(t, repo.Update(ctx, team))

		got, err := repo.GetByID(ctx, "t-1")
		require.NoError(t, err)
		assert.Equal(t, "M. Silva", got.Coach)
	})

	t.Run("rename onto an existing name", func(t *testing.T) {
		team, err := repo.GetByID(ctx, "t-2")
		require.NoError(t, err)

		team.Name = "Thunder FC"
		assert.ErrorIs(t, repo.Update(ctx, team), teamModel.ErrTeamExists)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)

	require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamID: "t-1", Name: "Thunder FC"}))

	t.Run("deletes a team", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "t-1"))
		_, err := repo.GetByID(ctx, "t-1")
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("missing team", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, "missing"), teamModel.ErrTeamNotFound)
	})
}
