package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/repositories"
	"github.com/tumelo/reportal/internal/pkg/auth"
)

// streamModules is the reference module catalogue per stream, keyed by the
// full stream name.
var streamModules = map[string][]models.Module{
	"Information Technology": {
		{Code: "IT101", Name: "IT Fundamentals"},
		{Code: "IT102", Name: "Network Infrastructure"},
		{Code: "IT103", Name: "Database Management"},
		{Code: "IT104", Name: "System Administration"},
		{Code: "IT105", Name: "IT Project Management"},
	},
	"Software Engineering": {
		{Code: "SE201", Name: "Software Design Patterns"},
		{Code: "SE202", Name: "Agile Development"},
		{Code: "SE203", Name: "Testing & Quality Assurance"},
		{Code: "SE204", Name: "Software Architecture"},
		{Code: "SE205", Name: "DevOps Practices"},
	},
	"Information Systems": {
		{Code: "IS301", Name: "Business Analysis"},
		{Code: "IS302", Name: "Enterprise Systems"},
		{Code: "IS303", Name: "Data Analytics"},
		{Code: "IS304", Name: "IT Governance"},
		{Code: "IS305", Name: "Digital Transformation"},
	},
	"Computer Science": {
		{Code: "CS401", Name: "Algorithms & Data Structures"},
		{Code: "CS402", Name: "Artificial Intelligence"},
		{Code: "CS403", Name: "Machine Learning"},
		{Code: "CS404", Name: "Computer Networks"},
		{Code: "CS405", Name: "Cybersecurity Fundamentals"},
	},
}

var defaultCourses = []models.Course{
	{Code: "DIWA2110", Name: "Web Application Development", Stream: "Software Engineering"},
	{Code: "DIDM2110", Name: "Database Management Systems", Stream: "Information Technology"},
	{Code: "DIBA2110", Name: "Business Analysis Foundations", Stream: "Information Systems"},
	{Code: "DICS2110", Name: "Data Structures and Algorithms", Stream: "Computer Science"},
}

type defaultAccount struct {
	name     string
	email    string
	password string
	role     models.Role
	// plaintext accounts exercise the legacy verification fallback until the
	// next startup re-hash pass picks them up
	plaintext bool
}

var defaultAccounts = []defaultAccount{
	{name: "Dr. Sarah Johnson", email: "sarah.johnson@luct.ac.ls", password: "lecturer123", role: models.RoleLecturer},
	{name: "Mpho Ranthimo", email: "prl@luct.ac.ls", password: "prl12345", role: models.RolePRL},
	{name: "Palesa Ntho", email: "pl@luct.ac.ls", password: "pl123456", role: models.RolePL},
	{name: "Teboho Letsie", email: "teboho@luct.ac.ls", password: "student123", role: models.RoleStudent},
	{name: "Naleli Seeiso", email: "naleli@luct.ac.ls", password: "password123", role: models.RoleStudent, plaintext: true},
}

// CreateDefaultData seeds the stream module tables, the course catalogue and
// the demo accounts. Every insert tolerates already-present rows so startup
// stays idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	moduleRepo := repositories.NewModuleRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	for streamName, modules := range streamModules {
		table := models.StreamTables[strings.ToLower(streamName)]
		for i := range modules {
			err := moduleRepo.CreateModule(ctx, table, &modules[i])
			if err != nil && !errors.Is(err, repositories.ErrModuleExists) {
				lgr.Error().Err(err).Str("stream", streamName).Str("module", modules[i].Code).Msg("Error seeding module")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	for i := range defaultCourses {
		err := courseRepo.CreateCourse(ctx, &defaultCourses[i])
		if err != nil && !errors.Is(err, repositories.ErrCourseExists) {
			lgr.Error().Err(err).Str("course", defaultCourses[i].Code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, account := range defaultAccounts {
		password := account.password
		if !account.plaintext {
			hashed, err := auth.HashPassword(password)
			if err != nil {
				finalErr = errors.Join(finalErr, err)
				continue
			}
			password = hashed
		}
		user := &models.User{
			Name:     account.name,
			Email:    account.email,
			Password: password,
			Role:     account.role,
		}
		if _, err := userRepo.CreateUser(ctx, user); err != nil && !errors.Is(err, repositories.ErrEmailExists) {
			lgr.Error().Err(err).Str("email", account.email).Msg("Error seeding account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

// RehashLegacyPasswords upgrades any stored plaintext credential to a bcrypt
// digest. Runs once per startup, before seeding, so rows written since the
// previous run get migrated. Verification keeps its plaintext fallback for
// whatever this pass has not seen yet.
func RehashLegacyPasswords(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	users, err := userRepo.ListPlaintextCredentials(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	var finalErr error
	for _, user := range users {
		hashed, err := auth.HashPassword(user.Password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
			lgr.Error().Err(err).Int64("userID", user.ID).Msg("Error re-hashing legacy password")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("count", len(users)).Msg("Re-hashed legacy plaintext credentials")
	return finalErr
}
