package models

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository interface {
	CreateSpecialist(specialist *Specialist) error
	ListSpecialists() ([]Specialist, error)
	CreateAssessment(assessment *Assessment) error
	ListAssessments() ([]Assessment, error)
	Ping() error
	Close() error
}

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository() (*PostgresRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Specialist{}, &Assessment{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) CreateSpecialist(specialist *Specialist) error {
	return r.db.Create(specialist).Error
}

// ListSpecialists returns every directory entry in storage order. There
// is no pagination; the directory page filters client-side.
func (r *PostgresRepository) ListSpecialists() ([]Specialist, error) {
	specialists := make([]Specialist, 0)
	if err := r.db.Find(&specialists).Error; err != nil {
		return nil, err
	}
	return specialists, nil
}

func (r *PostgresRepository) CreateAssessment(assessment *Assessment) error {
	if assessment.SubmittedAt.IsZero() {
		assessment.SubmittedAt = time.Now().UTC()
	}
	return r.db.Create(assessment).Error
}

func (r *PostgresRepository) ListAssessments() ([]Assessment, error) {
	assessments := make([]Assessment, 0)
	if err := r.db.Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *PostgresRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (r *PostgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
