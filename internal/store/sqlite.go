package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dhabedank/recipe-gpt/internal/core"
)

// recipeRow is the table layout for SQLiteStore.
type recipeRow struct {
	ID           int      `gorm:"primaryKey;autoIncrement"`
	Title        string   `gorm:"not null"`
	Ingredients  []string `gorm:"serializer:json"`
	Instructions []string `gorm:"serializer:json"`
	Equipment    []string `gorm:"serializer:json"`
}

func (recipeRow) TableName() string {
	return "recipes"
}

// SQLiteStore keeps recipes in a SQLite database through gorm.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database at path.
// Use ":memory:" for a throwaway store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise see its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&recipeRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Name() string {
	return "sqlite"
}

func (s *SQLiteStore) Insert(recipe *core.Recipe) (int, error) {
	if recipe == nil {
		return 0, fmt.Errorf("nil recipe")
	}
	row := recipeRow{
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Equipment:    recipe.Equipment,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	return row.ID, nil
}

func (s *SQLiteStore) All() ([]core.Record, error) {
	var rows []recipeRow
	if err := s.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	records := make([]core.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, core.Record{
			ID: row.ID,
			Recipe: core.Recipe{
				Title:        row.Title,
				Ingredients:  row.Ingredients,
				Instructions: row.Instructions,
				Equipment:    row.Equipment,
			},
		})
	}
	return records, nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
