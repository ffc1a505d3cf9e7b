package service

import (
	"context"
	"testing"

	"github.com/mule-triage/backend/internal/model"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "JD"},
		{"jane doe smith", "JD"},
		{"  jane   doe  ", "JD"},
		{"admin", "AD"},
		{"x", "X"},
		{"", "??"},
	}

	for _, tt := range tests {
		if got := Initials(tt.in); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type fakeProfileRepo struct {
	user        *model.User
	lastDisplay string
	lastEmail   string
}

func (f *fakeProfileRepo) GetUserByID(context.Context, int64) (*model.User, error) {
	return f.user, nil
}

func (f *fakeProfileRepo) UpdateUserProfile(_ context.Context, _ int64, displayName, email string) (*model.User, error) {
	f.lastDisplay = displayName
	f.lastEmail = email
	updated := *f.user
	updated.DisplayName = displayName
	updated.Email = email
	return &updated, nil
}

func TestProfileGetFallsBackToLoginID(t *testing.T) {
	repo := &fakeProfileRepo{user: &model.User{ID: 1, LoginID: "admin"}}
	svc := NewProfileService(repo)

	got, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DisplayName != "admin" || got.Initials != "AD" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestProfileUpdateTrims(t *testing.T) {
	repo := &fakeProfileRepo{user: &model.User{ID: 1, LoginID: "admin"}}
	svc := NewProfileService(repo)

	got, err := svc.Update(context.Background(), 1, model.ProfileRequest{
		DisplayName: "  Jane Doe ",
		Email:       " jane@example.com ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastDisplay != "Jane Doe" || repo.lastEmail != "jane@example.com" {
		t.Fatalf("values not trimmed before save: %q / %q", repo.lastDisplay, repo.lastEmail)
	}
	if got.Initials != "JD" {
		t.Fatalf("initials = %q, want JD", got.Initials)
	}
}
