package repository

import (
	"path/filepath"
	"testing"

	"learnsphere_backend/internal/model"
	"learnsphere_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestLearnerCreateAndFind(t *testing.T) {
	repo := NewLearnerRepository(testDB(t))

	learner := &model.Learner{
		Username:        "alice",
		LearningGoals:   "Learn Go",
		ExperienceLevel: "beginner",
	}
	require.NoError(t, repo.Create(learner))
	assert.NotZero(t, learner.ID)

	byID, err := repo.FindByID(learner.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, learner.ID, byName.ID)
}

func TestLearnerFindMissing(t *testing.T) {
	repo := NewLearnerRepository(testDB(t))

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLearnerUsernameUniqueAtStorageLayer(t *testing.T) {
	repo := NewLearnerRepository(testDB(t))

	require.NoError(t, repo.Create(&model.Learner{Username: "alice"}))
	err := repo.Create(&model.Learner{Username: "alice"})
	assert.Error(t, err, "unique index must reject the duplicate insert")
}
