package ops

import (
	"time"

	"github.com/google/uuid"
)

// SystemSetting is a key-value configuration row. SettingKey is unique; a
// second writer for the same key loses with a constraint error.
type SystemSetting struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SettingKey   string    `gorm:"uniqueIndex;not null;column:setting_key" json:"setting_key"`
	SettingValue string    `gorm:"type:text;column:setting_value" json:"setting_value"`
	ValueType    string    `gorm:"not null;default:'string';column:value_type" json:"value_type"`
	Description  string    `gorm:"type:text;column:description" json:"description,omitempty"`
	IsPublic     bool      `gorm:"not null;default:false;column:is_public" json:"is_public"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SystemSetting) TableName() string { return "system_settings" }
