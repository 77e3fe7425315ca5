package repositories

import (
	"context"
	"testing"

	"github.com/you/dmhub/domain"
)

func seedVolunteers(t *testing.T, repo domain.VolunteerRepository) {
	t.Helper()
	ctx := context.Background()
	for _, v := range []domain.Volunteer{
		{Name: "Asha", Email: "asha@example.com", Phone: "+911", Location: "Hyderabad, Telangana", Skills: "first aid"},
		{Name: "Ravi", Email: "ravi@example.com", Phone: "+912", Location: "Secunderabad near hyderabad"},
		{Name: "Meera", Email: "meera@example.com", Phone: "+913", Location: "Chennai"},
	} {
		vol := v
		if err := repo.Create(ctx, &vol); err != nil {
			t.Fatalf("seed %s: %v", v.Email, err)
		}
	}
}

func TestVolunteerRepositoryImpl_FindByLocationKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db)
	seedVolunteers(t, repo)

	tests := []struct {
		name    string
		key     string
		matches int
	}{
		{"known city lowercase", "hyderabad", 2},
		{"case insensitive key", "HYDERABAD", 2},
		{"other city", "chennai", 1},
		{"no match", "mumbai", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByLocationKey(context.Background(), tt.key)
			if err != nil {
				t.Fatalf("FindByLocationKey() error = %v", err)
			}
			if len(got) != tt.matches {
				t.Errorf("FindByLocationKey(%q) = %d volunteers, want %d", tt.key, len(got), tt.matches)
			}
		})
	}
}

func TestVolunteerRepositoryImpl_ExistsByEmailOrPhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db)
	seedVolunteers(t, repo)
	ctx := context.Background()

	tests := []struct {
		name   string
		email  string
		phone  string
		exists bool
	}{
		{"matching email", "asha@example.com", "+990", true},
		{"matching phone", "new@example.com", "+912", true},
		{"neither", "new@example.com", "+990", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsByEmailOrPhone(ctx, tt.email, tt.phone)
			if err != nil {
				t.Fatalf("ExistsByEmailOrPhone() error = %v", err)
			}
			if got != tt.exists {
				t.Errorf("ExistsByEmailOrPhone(%q, %q) = %v, want %v", tt.email, tt.phone, got, tt.exists)
			}
		})
	}
}
