package models

import (
	"time"

	"kampus-admin/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Users & Sessions
// ============================================================

// User represents users table
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`

	// Capability flags - independent booleans, none implies another
	CanManageCustomers          bool `gorm:"default:false" json:"can_manage_customers"`
	CanManageFinancial          bool `gorm:"default:false" json:"can_manage_financial"`
	CanManageCollaborationCodes bool `gorm:"default:false" json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   bool `gorm:"default:false" json:"can_view_collaboration_stats"`
	CanManageAccess             bool `gorm:"default:false" json:"can_manage_access"`
	CanDeleteUsers              bool `gorm:"default:false" json:"can_delete_users"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Capabilities converts the flag columns into a capability set
func (u *User) Capabilities() domain.CapabilitySet {
	set := domain.CapabilitySet{}
	if u.CanManageCustomers {
		set[domain.CapManageCustomers] = true
	}
	if u.CanManageFinancial {
		set[domain.CapManageFinancial] = true
	}
	if u.CanManageCollaborationCodes {
		set[domain.CapManageCodes] = true
	}
	if u.CanViewCollaborationStats {
		set[domain.CapViewCollabStats] = true
	}
	if u.CanManageAccess {
		set[domain.CapManageAccess] = true
	}
	if u.CanDeleteUsers {
		set[domain.CapDeleteUsers] = true
	}
	return set
}

// UserResponse DTO - never carries the password hash
type UserResponse struct {
	ID                          string    `json:"id"`
	Email                       string    `json:"email"`
	CanManageCustomers          bool      `json:"can_manage_customers"`
	CanManageFinancial          bool      `json:"can_manage_financial"`
	CanManageCollaborationCodes bool      `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   bool      `json:"can_view_collaboration_stats"`
	CanManageAccess             bool      `json:"can_manage_access"`
	CanDeleteUsers              bool      `json:"can_delete_users"`
	CreatedAt                   time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:                          u.ID,
		Email:                       u.Email,
		CanManageCustomers:          u.CanManageCustomers,
		CanManageFinancial:          u.CanManageFinancial,
		CanManageCollaborationCodes: u.CanManageCollaborationCodes,
		CanViewCollaborationStats:   u.CanViewCollaborationStats,
		CanManageAccess:             u.CanManageAccess,
		CanDeleteUsers:              u.CanDeleteUsers,
		CreatedAt:                   u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"index;size:36;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Customers
// ============================================================

// Customer represents customers table.
// Prices is opaque text (JSON array or comma-separated numbers); the pricing
// package normalizes it at read time. Code is a plain text snapshot of the
// collaboration code cited at signup, not a foreign key.
type Customer struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Surname       string    `gorm:"size:100;not null" json:"surname"`
	Phone         string    `gorm:"size:30;not null" json:"phone"`
	Email         string    `gorm:"size:100;index;not null" json:"email"`
	Grade         string    `gorm:"size:30;not null" json:"grade"`
	Camps         string    `gorm:"type:text;not null" json:"camps"`
	Prices        string    `gorm:"type:text;not null" json:"prices"`
	Code          *string   `gorm:"size:50;index" json:"code"`
	PreviousRank  *string   `gorm:"size:50" json:"previous_rank"`
	City          string    `gorm:"size:100;not null" json:"city"`
	IsDeleted     bool      `gorm:"default:false;index" json:"is_deleted"`
	DeletedReason *string   `gorm:"size:255" json:"deleted_reason"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// FullName joins name and surname for display
func (c *Customer) FullName() string {
	return c.Name + " " + c.Surname
}

// HasCode reports whether a collaboration code was cited at signup
func (c *Customer) HasCode() bool {
	return c.Code != nil && *c.Code != ""
}

// ============================================================
// Collaboration Codes
// ============================================================

// CollaborationCode represents collaboration_codes table
type CollaborationCode struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Code      string    `gorm:"uniqueIndex;size:50;not null" json:"code"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CollaborationCode) TableName() string {
	return "collaboration_codes"
}

func (cc *CollaborationCode) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == "" {
		cc.ID = uuid.New().String()
	}
	return nil
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Customer{},
		&CollaborationCode{},
	)
}
