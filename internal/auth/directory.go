// Package auth holds the registered profiles and checks credentials against them.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/trackererror"
	"fjacquet/fintrack/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Directory indexes profiles by exact, case-sensitive username and keeps them in
// registration order.
type Directory struct {
	profiles      []*models.UserProfile
	byName        map[string]*models.UserProfile
	hashPasswords bool
}

// NewDirectory builds a directory over loaded profiles. When hashPasswords is set,
// newly registered passwords are stored as bcrypt hashes.
func NewDirectory(profiles []*models.UserProfile, hashPasswords bool) *Directory {
	d := &Directory{
		profiles:      make([]*models.UserProfile, 0, len(profiles)),
		byName:        make(map[string]*models.UserProfile, len(profiles)),
		hashPasswords: hashPasswords,
	}
	for _, p := range profiles {
		if _, exists := d.byName[p.Username]; exists {
			continue
		}
		d.profiles = append(d.profiles, p)
		d.byName[p.Username] = p
	}
	return d
}

// Register creates an empty profile for username. The directory is unchanged when the
// name is taken or either credential is unusable.
func (d *Directory) Register(username, password string) (*models.UserProfile, error) {
	if err := validation.ValidateCredential("username", username); err != nil {
		return nil, err
	}
	if err := validation.ValidateCredential("password", password); err != nil {
		return nil, err
	}
	if _, exists := d.byName[username]; exists {
		return nil, &trackererror.DuplicateUsernameError{Username: username}
	}

	stored := password
	if d.hashPasswords {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		stored = string(hash)
	}

	profile := models.NewUserProfile(username, stored)
	d.profiles = append(d.profiles, profile)
	d.byName[username] = profile
	return profile, nil
}

// Login returns the profile whose username and password both match exactly.
func (d *Directory) Login(username, password string) (*models.UserProfile, error) {
	profile, exists := d.byName[username]
	if !exists || !PasswordMatches(profile.Password, password) {
		return nil, &trackererror.InvalidCredentialsError{Username: username}
	}
	return profile, nil
}

// Lookup returns the profile registered under username.
func (d *Directory) Lookup(username string) (*models.UserProfile, bool) {
	profile, exists := d.byName[username]
	return profile, exists
}

// Profiles returns all profiles in registration order.
func (d *Directory) Profiles() []*models.UserProfile {
	result := make([]*models.UserProfile, len(d.profiles))
	copy(result, d.profiles)
	return result
}

// Len returns the number of registered profiles.
func (d *Directory) Len() int {
	return len(d.profiles)
}

// PasswordMatches compares a stored password with a candidate. Stored bcrypt hashes are
// verified with bcrypt; when that fails, or the stored value is plain text, the two are
// compared exactly in constant time, so a plaintext password that happens to look like
// a hash still matches itself.
func PasswordMatches(stored, candidate string) bool {
	if IsHashed(stored) && bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// IsHashed reports whether a stored password is a well-formed bcrypt hash: a known
// version prefix and a cost bcrypt can read back.
func IsHashed(stored string) bool {
	hasPrefix := false
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			hasPrefix = true
			break
		}
	}
	if !hasPrefix {
		return false
	}
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}
