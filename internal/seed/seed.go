package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/studentms/internal/app/models"
	appRepos "github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/db"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// CreateSampleData inserts a small set of students, courses and enrollments
// when the database is empty. Errors are collected and returned but the
// caller is expected to continue startup regardless.
func CreateSampleData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(database)

	existing, err := repos.StudentRepository.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing students")
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Msg("Sample data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample students and courses...")
	var finalErr error

	students := sampleStudents()
	for _, s := range students {
		if err := repos.StudentRepository.Create(ctx, s); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", s.Email).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := sampleCourses()
	for _, c := range courses {
		if err := repos.CourseRepository.Create(ctx, c); err != nil && !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			lgr.Error().Err(err).Str("courseCode", c.CourseCode).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Enroll the first two students into the first two courses.
	if len(students) >= 2 && len(courses) >= 2 {
		pairs := [][2]int64{
			{students[0].ID, courses[0].ID},
			{students[0].ID, courses[1].ID},
			{students[1].ID, courses[0].ID},
		}
		for _, p := range pairs {
			if p[0] == 0 || p[1] == 0 {
				continue
			}
			if err := repos.EnrollmentRepository.Add(ctx, p[0], p[1]); err != nil {
				lgr.Error().Err(err).Int64("studentId", p[0]).Int64("courseId", p[1]).Msg("Error creating sample enrollment")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Int("students", len(students)).Int("courses", len(courses)).Msg("Sample data seeding finished")
	return finalErr
}

func sampleStudents() []*appModels.Student {
	phone1 := "+15550100101"
	phone2 := "+15550100102"
	return []*appModels.Student{
		{
			FirstName:   "Alice",
			LastName:    "Johnson",
			Email:       "alice.johnson@example.com",
			DateOfBirth: time.Date(2001, time.March, 14, 0, 0, 0, 0, time.UTC),
			PhoneNumber: &phone1,
		},
		{
			FirstName:   "Brian",
			LastName:    "Smith",
			Email:       "brian.smith@example.com",
			DateOfBirth: time.Date(2000, time.July, 2, 0, 0, 0, 0, time.UTC),
			PhoneNumber: &phone2,
		},
		{
			FirstName:   "Carla",
			LastName:    "Nguyen",
			Email:       "carla.nguyen@example.com",
			DateOfBirth: time.Date(2002, time.November, 23, 0, 0, 0, 0, time.UTC),
		},
	}
}

func sampleCourses() []*appModels.Course {
	introDesc := "Introduction to computer science fundamentals"
	calcDesc := "Differential and integral calculus"
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC)
	return []*appModels.Course{
		{
			CourseCode:  "CS101",
			CourseName:  "Intro to Computer Science",
			Description: &introDesc,
			Credits:     4,
			Price:       499.99,
			StartDate:   &start,
			EndDate:     &end,
			IsActive:    true,
		},
		{
			CourseCode:  "MATH201",
			CourseName:  "Calculus I for Engineers",
			Description: &calcDesc,
			Credits:     3,
			Price:       399.50,
			StartDate:   &start,
			EndDate:     &end,
			IsActive:    true,
		},
		{
			CourseCode: "HIST110",
			CourseName: "World History Survey",
			Credits:    2,
			Price:      250.00,
			IsActive:   false,
		},
	}
}
