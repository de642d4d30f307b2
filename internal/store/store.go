// Package store persists user profiles in a single flat data file.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"
)

// DefaultDataFile is the data file used when none is configured.
const DefaultDataFile = "users.txt"

// BackupSuffix is appended to the data file name for the copy kept before each save.
const BackupSuffix = ".bak"

// UserStore manages loading and saving of all user profiles.
type UserStore struct {
	FilePath      string
	BackupEnabled bool

	codec  *Codec
	logger logging.Logger
}

// NewUserStore creates a store for the given data file.
func NewUserStore(filePath string, backupEnabled bool, logger logging.Logger) *UserStore {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &UserStore{
		FilePath:      filePath,
		BackupEnabled: backupEnabled,
		codec:         NewCodec(logger),
		logger:        logger,
	}
}

// Load reads every profile from the data file. A missing file is an empty set, not an error.
func (s *UserStore) Load() ([]*models.UserProfile, error) {
	file, err := fileutils.OpenFile(s.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.WithField(logging.FieldFile, s.FilePath).Debug("Data file not found, starting empty")
			return []*models.UserProfile{}, nil
		}
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if info, statErr := file.Stat(); statErr == nil {
		if permErr := validation.IsValidFilePermissions(info.Mode()); permErr != nil {
			s.logger.WithError(permErr).WithField(logging.FieldFile, s.FilePath).Warn("Data file is readable by other users")
		}
	}

	profiles, stats, err := s.codec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("error reading data file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.FilePath},
		logging.Field{Key: logging.FieldCount, Value: stats.Users},
		logging.Field{Key: logging.FieldDropped, Value: stats.DroppedRecords},
	).Debug("Loaded profiles")
	if stats.DroppedRecords > 0 || stats.DuplicateUsers > 0 {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: s.FilePath},
			logging.Field{Key: logging.FieldDropped, Value: stats.DroppedRecords + stats.DuplicateUsers},
		).Warn("Data file contained malformed records that were skipped")
	}

	return profiles, nil
}

// Save rewrites the whole data file with profiles. The previous file is copied to
// FilePath+".bak" first when backups are enabled.
func (s *UserStore) Save(profiles []*models.UserProfile) error {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, profiles); err != nil {
		return err
	}

	if s.BackupEnabled && fileutils.FileExists(s.FilePath) {
		if err := fileutils.CopyFile(s.FilePath, s.BackupPath(), models.PermissionDataFile); err != nil {
			return fmt.Errorf("error writing backup: %w", err)
		}
	}

	if err := fileutils.WriteFileAtomic(s.FilePath, buf.Bytes(), models.PermissionDataFile); err != nil {
		return fmt.Errorf("error saving data file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.FilePath},
		logging.Field{Key: logging.FieldCount, Value: len(profiles)},
	).Debug("Saved profiles")
	return nil
}

// BackupPath returns the location of the backup copy.
func (s *UserStore) BackupPath() string {
	return s.FilePath + BackupSuffix
}
