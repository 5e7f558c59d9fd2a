package checks

import (
	"regexp"
	"testing"

	"better-food-logs/core/database"
	"better-food-logs/feature/foodlog/remote/remotetest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestCheckServer_Migrated(t *testing.T) {
	report, err := CheckServer(remotetest.NewDB(t))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", report.Driver)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Errors)
	require.Contains(t, report.Tables, "foods")
	require.Contains(t, report.Tables, "food_logs")
	assert.Equal(t, "ok", report.Tables["foods"].Status)
	assert.Empty(t, report.Tables["food_logs"].MissingColumns)
}

func TestCheckServer_MissingTablesAndColumns(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE food_logs (id varchar(36), user_id TEXT, food_id TEXT)").Error)

	report, err := CheckServer(db)
	require.NoError(t, err)

	assert.False(t, report.Matched)
	assert.Contains(t, report.Errors, "Table foods does not exist")
	assert.Contains(t, report.Tables["foods"].MissingColumns, "name")

	logs := report.Tables["food_logs"]
	assert.Equal(t, "error", logs.Status)
	assert.ElementsMatch(t, []string{"servings_consumed", "consumed_date", "created_at"}, logs.MissingColumns)
	assert.Empty(t, logs.TypeMismatches)
}

func TestCheckServer_TypeMismatch(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	foods := sqlmock.NewRows([]string{"Field", "Type"})
	for _, col := range []string{"name", "brand_name", "serving_description", "serving_mass_g", "serving_volume_ml",
		"calories", "protein_g", "fat_g", "carbs_g", "sugar_g", "sodium_mg", "cholesterol_mg", "created_at"} {
		foods.AddRow(col, "double")
	}
	foods.AddRow("id", "INT")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `foods`")).WillReturnRows(foods)

	logs := sqlmock.NewRows([]string{"Field", "Type"}).
		AddRow("id", "varchar(36)").
		AddRow("user_id", "varchar(255)").
		AddRow("food_id", "varchar(255)").
		AddRow("servings_consumed", "double").
		AddRow("consumed_date", "varchar(32)").
		AddRow("created_at", "datetime")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `food_logs`")).WillReturnRows(logs)

	report, err := CheckServer(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"id: expected varchar(36), got int"}, report.Tables["foods"].TypeMismatches)
	assert.Equal(t, "ok", report.Tables["food_logs"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckServer_NilDB(t *testing.T) {
	_, err := CheckServer(nil)
	assert.Error(t, err)
}

func TestTypeMatches(t *testing.T) {
	assert.True(t, typeMatches("varchar(36)", "varchar(36)"))
	assert.True(t, typeMatches("varchar(36)", "character varying"))
	assert.False(t, typeMatches("varchar(36)", "integer"))
}
