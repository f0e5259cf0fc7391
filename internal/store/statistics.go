// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"royalsite/internal/models"
)

// StatisticsStore handles the CompanyStatistics singleton. Creation is
// rejected once a row exists and the row can never be deleted; both guards
// are explicit here rather than first-row-wins conventions at call sites.
type StatisticsStore struct {
	db *sql.DB
}

// NewStatisticsStore creates a new StatisticsStore with the given database connection.
func NewStatisticsStore(db *sql.DB) *StatisticsStore {
	return &StatisticsStore{db: db}
}

const statisticsColumns = `id, years_in_business, projects_completed, happy_clients, team_members,
	years_label, years_label_ar, projects_label, projects_label_ar,
	clients_label, clients_label_ar, team_label, team_label_ar, updated_at`

func scanStatistics(scanner interface{ Scan(...any) error }) (*models.CompanyStatistics, error) {
	st := &models.CompanyStatistics{}
	err := scanner.Scan(
		&st.ID, &st.YearsInBusiness, &st.ProjectsCompleted, &st.HappyClients, &st.TeamMembers,
		&st.YearsLabel.EN, &st.YearsLabel.AR, &st.ProjectsLabel.EN, &st.ProjectsLabel.AR,
		&st.ClientsLabel.EN, &st.ClientsLabel.AR, &st.TeamLabel.EN, &st.TeamLabel.AR,
		&st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Get returns the statistics row, or nil when none exists.
func (s *StatisticsStore) Get() (*models.CompanyStatistics, error) {
	row := s.db.QueryRow(`SELECT ` + statisticsColumns + ` FROM company_statistics LIMIT 1`)
	st, err := scanStatistics(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get company statistics: %w", err)
	}
	return st, nil
}

// Create inserts the statistics row. Returns ErrSingletonExists when one
// is already present. The existence check and insert share a transaction.
func (s *StatisticsStore) Create(st *models.CompanyStatistics) (*models.CompanyStatistics, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM company_statistics`).Scan(&count); err != nil {
		return nil, fmt.Errorf("count company statistics: %w", err)
	}
	if count > 0 {
		return nil, ErrSingletonExists
	}

	row := tx.QueryRow(`
		INSERT INTO company_statistics (years_in_business, projects_completed, happy_clients, team_members,
			years_label, years_label_ar, projects_label, projects_label_ar,
			clients_label, clients_label_ar, team_label, team_label_ar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+statisticsColumns,
		st.YearsInBusiness, st.ProjectsCompleted, st.HappyClients, st.TeamMembers,
		st.YearsLabel.EN, st.YearsLabel.AR, st.ProjectsLabel.EN, st.ProjectsLabel.AR,
		st.ClientsLabel.EN, st.ClientsLabel.AR, st.TeamLabel.EN, st.TeamLabel.AR,
	)
	result, err := scanStatistics(row)
	if err != nil {
		return nil, fmt.Errorf("create company statistics: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return result, nil
}

// Update modifies the statistics row in place.
func (s *StatisticsStore) Update(st *models.CompanyStatistics) error {
	_, err := s.db.Exec(`
		UPDATE company_statistics SET
			years_in_business = $1, projects_completed = $2, happy_clients = $3, team_members = $4,
			years_label = $5, years_label_ar = $6, projects_label = $7, projects_label_ar = $8,
			clients_label = $9, clients_label_ar = $10, team_label = $11, team_label_ar = $12,
			updated_at = NOW()
		WHERE id = $13
	`, st.YearsInBusiness, st.ProjectsCompleted, st.HappyClients, st.TeamMembers,
		st.YearsLabel.EN, st.YearsLabel.AR, st.ProjectsLabel.EN, st.ProjectsLabel.AR,
		st.ClientsLabel.EN, st.ClientsLabel.AR, st.TeamLabel.EN, st.TeamLabel.AR, st.ID)
	if err != nil {
		return fmt.Errorf("update company statistics: %w", err)
	}
	return nil
}

// Delete always fails: the homepage depends on this row existing.
func (s *StatisticsStore) Delete() error {
	return ErrSingletonProtected
}
