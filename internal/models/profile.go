package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SocialLinks holds the optional named profile links.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

// Experience is one work-history entry. The ID is assigned server-side
// at insert time and is the only handle for later removal.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

// Education mirrors Experience for schooling entries.
type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy"`
	Location     string    `json:"location,omitempty"`
	From         string    `json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
}

// Profile is the per-user career document. Exactly one row per user
// (unique index on user_id, writes go through an upsert on that key).
// The nested sequences live in JSONB columns on this row, so entry
// mutations are whole-document read-modify-write with last write wins.
type Profile struct {
	ID             uuid.UUID                        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID                        `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Company        string                           `gorm:"size:255" json:"company,omitempty"`
	Website        string                           `gorm:"size:255" json:"website,omitempty"`
	Location       string                           `gorm:"size:255" json:"location,omitempty"`
	Status         string                           `gorm:"size:255;not null" json:"status"`
	Skills         datatypes.JSONSlice[string]      `gorm:"type:jsonb" json:"skills"`
	Bio            string                           `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string                           `gorm:"size:100" json:"githubusername,omitempty"`
	Social         datatypes.JSONType[SocialLinks]  `gorm:"type:jsonb" json:"social"`
	Experience     datatypes.JSONSlice[Experience]  `gorm:"type:jsonb" json:"experience"`
	Education      datatypes.JSONSlice[Education]   `gorm:"type:jsonb" json:"education"`
	User           *User                            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt      time.Time                        `json:"created_at"`
	UpdatedAt      time.Time                        `json:"updated_at"`
}

// AddExperience prepends the entry so the sequence stays newest-first.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append(datatypes.JSONSlice[Experience]{e}, p.Experience...)
}

// RemoveExperience deletes the entry whose ID matches. Reports whether a
// match was found; no other entries are touched either way.
func (p *Profile) RemoveExperience(id uuid.UUID) bool {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return true
		}
	}
	return false
}

// AddEducation prepends the entry so the sequence stays newest-first.
func (p *Profile) AddEducation(e Education) {
	p.Education = append(datatypes.JSONSlice[Education]{e}, p.Education...)
}

// RemoveEducation deletes the entry whose ID matches.
func (p *Profile) RemoveEducation(id uuid.UUID) bool {
	for i, e := range p.Education {
		if e.ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return true
		}
	}
	return false
}
