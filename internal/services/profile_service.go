package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// withOwner resolves the stored user reference into the owning user's
// id, name and avatar on reads.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}

// GetByUserID loads a profile with its owning user joined in.
func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Preload("User", withOwner).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// List returns every profile with owning users joined in.
func (s *ProfileService) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Preload("User", withOwner).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates the caller's profile or updates it in place, keyed on
// user_id so a concurrent first write cannot produce two rows. Nested
// experience/education sequences are left untouched.
func (s *ProfileService) Upsert(userID uuid.UUID, req *dto.ProfileRequest) (*models.Profile, error) {
	profile := models.Profile{
		ID:             uuid.New(),
		UserID:         userID,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         datatypes.NewJSONSlice(NormalizeSkills(req.Skills)),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: datatypes.NewJSONType(models.SocialLinks{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Instagram: req.Instagram,
			Linkedin:  req.Linkedin,
		}),
		Experience: datatypes.NewJSONSlice([]models.Experience{}),
		Education:  datatypes.NewJSONSlice([]models.Education{}),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company", "website", "location", "status", "skills",
			"bio", "github_username", "social", "updated_at",
		}),
	}).Create(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return s.GetByUserID(userID)
}

// AddExperience prepends a new entry with a server-assigned identifier
// and persists the whole document.
func (s *ProfileService) AddExperience(userID uuid.UUID, req *dto.ExperienceRequest) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	profile.AddExperience(models.Experience{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})

	if err := s.saveEntries(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveExperience deletes the entry matching the identifier. An
// unknown identifier is reported, never mutated around.
func (s *ProfileService) RemoveExperience(userID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if !profile.RemoveExperience(entryID) {
		return nil, ErrExperienceNotFound
	}

	if err := s.saveEntries(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddEducation mirrors AddExperience for schooling entries.
func (s *ProfileService) AddEducation(userID uuid.UUID, req *dto.EducationRequest) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	profile.AddEducation(models.Education{
		ID:           uuid.New(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		Location:     req.Location,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})

	if err := s.saveEntries(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveEducation mirrors RemoveExperience.
func (s *ProfileService) RemoveEducation(userID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if !profile.RemoveEducation(entryID) {
		return nil, ErrEducationNotFound
	}

	if err := s.saveEntries(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// saveEntries writes the nested sequences back as a whole-document
// update. No optimistic concurrency check: last write wins, matching
// the document-store contract the API was built on.
func (s *ProfileService) saveEntries(profile *models.Profile) error {
	err := s.db.Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"experience": profile.Experience,
			"education":  profile.Education,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to save profile entries: %w", err)
	}
	return nil
}

// DeleteAccount removes the caller's posts, profile and user record in
// one transaction so no orphans survive a partial failure.
func (s *ProfileService) DeleteAccount(userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("failed to delete posts: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if err := tx.Where("id = ?", userID).Delete(&models.User{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// NormalizeSkills splits raw comma-separated input into trimmed skill
// names, dropping empty fragments. "node, css " becomes ["node","css"].
func NormalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
