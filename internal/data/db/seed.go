package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
	"github.com/birthhealthnetwork/bhn-backend/internal/platform/envutil"
)

func defaultSettings() []types.SystemSetting {
	return []types.SystemSetting{
		{SettingKey: "site_name", SettingValue: "Birth Health Network", ValueType: "string", IsPublic: true, Description: "Display name shown to end users"},
		{SettingKey: "maintenance_mode", SettingValue: "false", ValueType: "boolean", IsPublic: true, Description: "When true the application rejects writes"},
		{SettingKey: "default_appointment_duration_minutes", SettingValue: "30", ValueType: "integer", IsPublic: false, Description: "Applied when a booking omits a duration"},
		{SettingKey: "session_ttl_hours", SettingValue: "24", ValueType: "integer", IsPublic: false, Description: "Lifetime of a newly issued session"},
		{SettingKey: "max_failed_login_attempts", SettingValue: "5", ValueType: "integer", IsPublic: false, Description: "Lockout threshold for login failures"},
		{SettingKey: "notification_retention_days", SettingValue: "90", ValueType: "integer", IsPublic: false, Description: "How long delivered notifications are kept"},
	}
}

// Seed inserts the fixture rows the application expects on first boot:
// default configuration, one admin account, and one facility. Safe to
// re-run; existing rows are left alone.
func (s *PostgresService) Seed(ctx context.Context) error {
	s.log.Info("Seeding fixture data...")

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, setting := range defaultSettings() {
			if err := tx.
				Where(types.SystemSetting{SettingKey: setting.SettingKey}).
				Attrs(setting).
				FirstOrCreate(&types.SystemSetting{}).Error; err != nil {
				return fmt.Errorf("seed setting %s: %w", setting.SettingKey, ClassifyError(err))
			}
		}

		adminEmail := envutil.String("BHN_SEED_ADMIN_EMAIL", "admin@birthhealthnetwork.org")
		adminPassword := envutil.String("BHN_SEED_ADMIN_PASSWORD", "change-me-on-first-login")
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed admin password: %w", err)
		}
		admin := types.User{
			Email:         adminEmail,
			PasswordHash:  string(hash),
			UserType:      enums.UserTypeAdmin,
			Status:        enums.UserStatusActive,
			EmailVerified: true,
		}
		if err := tx.
			Where(types.User{Email: adminEmail}).
			Attrs(admin).
			FirstOrCreate(&types.User{}).Error; err != nil {
			return fmt.Errorf("seed admin user: %w", ClassifyError(err))
		}

		facility := types.HealthcareFacility{
			Name:         "Central Maternity Hospital",
			FacilityType: "hospital",
			City:         "Metropolis",
			Country:      "US",
			IsActive:     true,
		}
		if err := tx.
			Where(types.HealthcareFacility{Name: facility.Name}).
			Attrs(facility).
			FirstOrCreate(&types.HealthcareFacility{}).Error; err != nil {
			return fmt.Errorf("seed facility: %w", ClassifyError(err))
		}

		return nil
	})
}
