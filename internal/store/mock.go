package store

import (
	"fjacquet/fintrack/internal/models"
)

// MockUserStore is an in-memory stand-in for UserStore in tests.
type MockUserStore struct {
	Profiles []*models.UserProfile
	Saves    int

	// Error flags for testing error conditions
	LoadError error
	SaveError error
}

// Load returns the stored profiles.
func (m *MockUserStore) Load() ([]*models.UserProfile, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	result := make([]*models.UserProfile, len(m.Profiles))
	copy(result, m.Profiles)
	return result, nil
}

// Save records the profiles and counts the call.
func (m *MockUserStore) Save(profiles []*models.UserProfile) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Saves++
	m.Profiles = make([]*models.UserProfile, len(profiles))
	copy(m.Profiles, profiles)
	return nil
}
