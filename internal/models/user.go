package models

import "time"

// Role is the closed set of user groups known to the system.
type Role string

const (
	RoleSystemUser Role = "SystemUser"
	RoleSuperAdmin Role = "SuperAdmin"
)

// IsSuperAdmin reports whether the role grants unrestricted write access to
// categories and to recipes created by other users.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// User represents a registered user of the recipe catalog.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserName    string    `json:"userName" gorm:"type:varchar(8)" validate:"required,min=4,max=8,username"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	PhoneNumber string    `json:"phoneNumber,omitempty" gorm:"type:varchar(32)"`
	Country     string    `json:"country,omitempty" gorm:"type:varchar(100)"`
	ImagePath   string    `json:"imagePath,omitempty" gorm:"type:varchar(255)"`
	UserGroup   Role      `json:"userGroup" gorm:"type:varchar(16);default:SystemUser" validate:"omitempty,oneof=SystemUser SuperAdmin"`
	IsVerified  bool      `json:"isVerified" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
