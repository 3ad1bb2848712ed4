package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"campus-placement-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile is the YAML document loaded by `ledgerctl seed`
type SeedFile struct {
	Enterprises []EnterpriseSeed `yaml:"enterprises" validate:"dive"`
	Teachers    []TeacherSeed    `yaml:"teachers" validate:"dive"`
	Students    []StudentSeed    `yaml:"students" validate:"dive"`
}

// EnterpriseSeed is a primary enterprise account. Secondaries are attached to it.
type EnterpriseSeed struct {
	Name         string           `yaml:"name" validate:"required,max=200"`
	ContactName  string           `yaml:"contact_name" validate:"max=100"`
	ContactEmail string           `yaml:"contact_email" validate:"omitempty,email"`
	Industry     string           `yaml:"industry" validate:"max=100"`
	Secondaries  []EnterpriseSeed `yaml:"secondaries,omitempty" validate:"dive"`
}

// TeacherSeed is a primary teacher account. Secondaries are attached to it.
type TeacherSeed struct {
	Name        string        `yaml:"name" validate:"required,max=100"`
	Email       string        `yaml:"email" validate:"omitempty,email"`
	School      string        `yaml:"school" validate:"max=200"`
	Department  string        `yaml:"department" validate:"max=200"`
	Secondaries []TeacherSeed `yaml:"secondaries,omitempty" validate:"dive"`
}

// StudentSeed is a candidate account, matched on email
type StudentSeed struct {
	Name           string `yaml:"name" validate:"required,max=100"`
	Email          string `yaml:"email" validate:"required,email"`
	StudentNumber  string `yaml:"student_number" validate:"max=40"`
	Major          string `yaml:"major" validate:"max=100"`
	GraduationYear int    `yaml:"graduation_year" validate:"omitempty,gte=1900,lte=2100"`
}

type seedCount struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}

type seedResult struct {
	Enterprises seedCount `json:"enterprises"`
	Teachers    seedCount `json:"teachers"`
	Students    seedCount `json:"students"`
}

func parseSeedFile(r io.Reader) (*SeedFile, error) {
	var file SeedFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := file.validate(validator.New()); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *SeedFile) validate(v *validator.Validate) error {
	if err := v.Struct(f); err != nil {
		return fmt.Errorf("invalid seed file: %w", err)
	}

	// accounts are two levels deep: a secondary never has secondaries of its own
	for _, e := range f.Enterprises {
		for _, s := range e.Secondaries {
			if len(s.Secondaries) > 0 {
				return fmt.Errorf("invalid seed file: enterprise %q is a secondary of %q and cannot have secondaries", s.Name, e.Name)
			}
		}
	}
	for _, t := range f.Teachers {
		for _, s := range t.Secondaries {
			if len(s.Secondaries) > 0 {
				return fmt.Errorf("invalid seed file: teacher %q is a secondary of %q and cannot have secondaries", s.Name, t.Name)
			}
		}
	}

	emails := make(map[string]struct{}, len(f.Students))
	for _, s := range f.Students {
		key := strings.ToLower(s.Email)
		if _, dup := emails[key]; dup {
			return fmt.Errorf("invalid seed file: student email %q is listed twice", s.Email)
		}
		emails[key] = struct{}{}
	}
	return nil
}

// findOrCreate returns the first row matching query, creating it from build when there is none
func findOrCreate[T any](tx *gorm.DB, build func() *T, query interface{}, args ...interface{}) (*T, bool, error) {
	var existing T
	err := tx.Where(query, args...).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	record := build()
	if err := tx.Create(record).Error; err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func hierarchyOf(primaryID *uuid.UUID) models.AccountHierarchy {
	return models.AccountHierarchy{IsPrimary: primaryID == nil, PrimaryAccountID: primaryID}
}

// accountScope matches an account by name under the same position in the hierarchy
func accountScope(name string, primaryID *uuid.UUID) (string, []interface{}) {
	if primaryID == nil {
		return "name = ? AND is_primary = ?", []interface{}{name, true}
	}
	return "name = ? AND primary_account_id = ?", []interface{}{name, *primaryID}
}

func seedEnterprise(tx *gorm.DB, seed EnterpriseSeed, primaryID *uuid.UUID, count *seedCount) error {
	query, args := accountScope(seed.Name, primaryID)
	enterprise, created, err := findOrCreate(tx, func() *models.Enterprise {
		return &models.Enterprise{
			AccountHierarchy: hierarchyOf(primaryID),
			Name:             seed.Name,
			ContactName:      seed.ContactName,
			ContactEmail:     seed.ContactEmail,
			Industry:         seed.Industry,
		}
	}, query, args...)
	if err != nil {
		return fmt.Errorf("failed to seed enterprise %s: %w", seed.Name, err)
	}
	count.Total++
	if created {
		count.Created++
	}

	for _, secondary := range seed.Secondaries {
		if err := seedEnterprise(tx, secondary, &enterprise.ID, count); err != nil {
			return err
		}
	}
	return nil
}

func seedTeacher(tx *gorm.DB, seed TeacherSeed, primaryID *uuid.UUID, count *seedCount) error {
	query, args := accountScope(seed.Name, primaryID)
	teacher, created, err := findOrCreate(tx, func() *models.Teacher {
		return &models.Teacher{
			AccountHierarchy: hierarchyOf(primaryID),
			Name:             seed.Name,
			Email:            seed.Email,
			School:           seed.School,
			Department:       seed.Department,
		}
	}, query, args...)
	if err != nil {
		return fmt.Errorf("failed to seed teacher %s: %w", seed.Name, err)
	}
	count.Total++
	if created {
		count.Created++
	}

	for _, secondary := range seed.Secondaries {
		if err := seedTeacher(tx, secondary, &teacher.ID, count); err != nil {
			return err
		}
	}
	return nil
}

func seedStudent(tx *gorm.DB, seed StudentSeed, count *seedCount) error {
	_, created, err := findOrCreate(tx, func() *models.Student {
		return &models.Student{
			Name:           seed.Name,
			Email:          seed.Email,
			StudentNumber:  seed.StudentNumber,
			Major:          seed.Major,
			GraduationYear: seed.GraduationYear,
		}
	}, "email = ?", seed.Email)
	if err != nil {
		return fmt.Errorf("failed to seed student %s: %w", seed.Email, err)
	}
	count.Total++
	if created {
		count.Created++
	}
	return nil
}

// applySeed creates whatever the file lists that the database does not have yet. Re-running it is a no-op.
func applySeed(ctx context.Context, db *gorm.DB, file *SeedFile) (*seedResult, error) {
	result := &seedResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range file.Enterprises {
			if err := seedEnterprise(tx, e, nil, &result.Enterprises); err != nil {
				return err
			}
		}
		for _, t := range file.Teachers {
			if err := seedTeacher(tx, t, nil, &result.Teachers); err != nil {
				return err
			}
		}
		for _, s := range file.Students {
			if err := seedStudent(tx, s, &result.Students); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
