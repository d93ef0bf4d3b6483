package domain

import "testing"

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{name: "first and last", user: User{FirstName: "Jane", LastName: "Doe"}, expected: "Jane Doe"},
		{name: "first only", user: User{FirstName: "Jane"}, expected: "Jane"},
		{name: "empty", user: User{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.FullName(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDefaultNotificationPrefs(t *testing.T) {
	prefs := DefaultNotificationPrefs()
	if !prefs.Email {
		t.Error("expected email notifications on by default")
	}
	if prefs.SMS {
		t.Error("expected sms notifications off by default")
	}
}
