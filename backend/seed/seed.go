package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
)

// SeedDatabase inserts sample language classes with three weekly sessions
// each. It is idempotent: a database that already has classes is left alone.
func SeedDatabase(ctx context.Context, store storage.Storage) error {
	existing, err := store.GetLanguageClasses(ctx, storage.ClassFilters{})
	if err != nil {
		return fmt.Errorf("check existing classes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	sampleClasses := []models.LanguageClass{
		{
			Title:           "Spanish Conversation for Beginners",
			Description:     "Build confidence speaking Spanish in everyday situations. Perfect for beginners who want to practice basic conversations.",
			Language:        "Spanish",
			Level:           models.LevelBeginner,
			Type:            models.TypeConversation,
			InstructorName:  "Maria Rodriguez",
			Location:        "Downtown Community Center",
			Address:         "123 Main St, Downtown",
			Price:           2500,
			Duration:        60,
			MaxStudents:     8,
			CurrentStudents: 3,
			ContactEmail:    "maria@linguaconnect.com",
			ContactPhone:    "(555) 123-4567",
			IsActive:        true,
		},
		{
			Title:           "French Grammar Workshop",
			Description:     "Master French grammar fundamentals in this intensive workshop. Covers verb conjugations, articles, and sentence structure.",
			Language:        "French",
			Level:           models.LevelIntermediate,
			Type:            models.TypeWorkshop,
			InstructorName:  "Pierre Dubois",
			Location:        "Language Institute",
			Address:         "456 Academic Ave, University District",
			Price:           4000,
			Duration:        90,
			MaxStudents:     12,
			CurrentStudents: 7,
			ContactEmail:    "pierre@languageinstitute.edu",
			ContactPhone:    "(555) 234-5678",
			IsActive:        true,
		},
		{
			Title:           "German for Business Professionals",
			Description:     "Learn professional German for business settings. Focus on meetings, presentations, and formal communication.",
			Language:        "German",
			Level:           models.LevelAdvanced,
			Type:            models.TypeClass,
			InstructorName:  "Hans Mueller",
			Location:        "Business Center",
			Address:         "789 Corporate Blvd, Business District",
			Price:           6000,
			Duration:        120,
			MaxStudents:     6,
			CurrentStudents: 4,
			ContactEmail:    "hans@businesslanguage.com",
			ContactPhone:    "(555) 345-6789",
			IsActive:        true,
		},
		{
			Title:           "Japanese Beginner's Course",
			Description:     "Start your Japanese journey with hiragana, basic vocabulary, and simple conversations.",
			Language:        "Japanese",
			Level:           models.LevelBeginner,
			Type:            models.TypeClass,
			InstructorName:  "Yuki Tanaka",
			Location:        "East Side Language School",
			Address:         "654 East St, Riverside",
			Price:           4500,
			Duration:        90,
			MaxStudents:     8,
			CurrentStudents: 2,
			ContactEmail:    "yuki@eastlanguage.com",
			ContactPhone:    "(555) 567-8901",
			IsActive:        true,
		},
		{
			Title:           "Portuguese for Travel",
			Description:     "Essential Portuguese phrases and vocabulary for travelers. Perfect for those planning trips to Brazil or Portugal.",
			Language:        "Portuguese",
			Level:           models.LevelBeginner,
			Type:            models.TypeWorkshop,
			InstructorName:  "Carlos Silva",
			Location:        "Travel Language Hub",
			Address:         "987 Explorer Way, Airport District",
			Price:           3000,
			Duration:        60,
			MaxStudents:     12,
			CurrentStudents: 8,
			ContactEmail:    "carlos@travellanguage.com",
			ContactPhone:    "(555) 678-9012",
			IsActive:        true,
		},
	}

	now := time.Now()
	for i := range sampleClasses {
		class := &sampleClasses[i]
		if err := store.CreateLanguageClass(ctx, class); err != nil {
			return fmt.Errorf("seed class %q: %w", class.Title, err)
		}

		// Three weekly sessions per class, starting at 2 PM.
		for week := 1; week <= 3; week++ {
			start := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, now.Location()).
				AddDate(0, 0, week*7)
			session := models.ClassSession{
				ClassID:          class.ID,
				StartTime:        start,
				EndTime:          start.Add(time.Duration(class.Duration) * time.Minute),
				AvailableSpots:   class.MaxStudents - class.CurrentStudents,
				IsRecurring:      true,
				RecurringPattern: "weekly",
				Status:           models.SessionScheduled,
			}
			if err := store.CreateClassSession(ctx, &session); err != nil {
				return fmt.Errorf("seed session for %q: %w", class.Title, err)
			}
		}
	}

	return nil
}
