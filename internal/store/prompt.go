// Package store persists saved prompts in a local sqlite database.
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Prompt struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PromptStore struct {
	db   *gorm.DB
	path string
}

func NewPromptStore(path string) (*PromptStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreInit, err)
	}

	if err := db.AutoMigrate(&Prompt{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreInit, err)
	}

	return &PromptStore{db: db, path: path}, nil
}

// Path returns the database file location, for the health check.
func (s *PromptStore) Path() string {
	return s.path
}

// List returns every saved prompt, newest first.
func (s *PromptStore) List() ([]Prompt, error) {
	var prompts []Prompt
	if err := s.db.Order("created_at DESC").Find(&prompts).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreOperation, err)
	}
	return prompts, nil
}

func (s *PromptStore) Create(content string) (*Prompt, error) {
	prompt := &Prompt{Content: content, CreatedAt: time.Now()}
	if err := s.db.Create(prompt).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreOperation, err)
	}
	return prompt, nil
}

// Update replaces the content and refreshes created_at, so edited prompts
// surface at the top of the list again.
func (s *PromptStore) Update(id uint, content string) (*Prompt, error) {
	result := s.db.Model(&Prompt{}).Where("id = ?", id).Updates(map[string]interface{}{
		"content":    content,
		"created_at": time.Now(),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreOperation, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrPromptNotFound
	}

	var prompt Prompt
	if err := s.db.First(&prompt, id).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreOperation, err)
	}
	return &prompt, nil
}

func (s *PromptStore) Delete(id uint) error {
	result := s.db.Delete(&Prompt{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreOperation, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPromptNotFound
	}
	return nil
}
