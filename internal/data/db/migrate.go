package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	types "github.com/birthhealthnetwork/bhn-backend/internal/domain"
	"github.com/birthhealthnetwork/bhn-backend/internal/domain/enums"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Core identity
		// =========================
		&types.User{},
		&types.UserProfile{},
		&types.Doctor{},
		&types.Patient{},
		&types.HealthcareFacility{},

		// =========================
		// Clinical
		// =========================
		&types.BirthRegistration{},
		&types.HealthRecord{},
		&types.Medication{},
		&types.LabResult{},
		&types.Appointment{},
		&types.Document{},

		// =========================
		// Operational
		// =========================
		&types.Notification{},
		&types.AuditLog{},
		&types.UserSession{},
		&types.SystemSetting{},
	)
}

type enumSpec struct {
	name   string
	labels []string
}

func enumSpecs() []enumSpec {
	var specs []enumSpec
	add := func(name string, labels []string) {
		specs = append(specs, enumSpec{name: name, labels: labels})
	}

	add("user_type", labelsOf(enums.UserTypeValues()))
	add("user_status", labelsOf(enums.UserStatusValues()))
	add("gender_type", labelsOf(enums.GenderValues()))
	add("registration_status", labelsOf(enums.RegistrationStatusValues()))
	add("record_type", labelsOf(enums.RecordTypeValues()))
	add("urgency_level", labelsOf(enums.UrgencyLevelValues()))
	add("appointment_status", labelsOf(enums.AppointmentStatusValues()))
	add("appointment_type", labelsOf(enums.AppointmentTypeValues()))
	add("document_type", labelsOf(enums.DocumentTypeValues()))
	add("notification_type", labelsOf(enums.NotificationTypeValues()))
	add("session_status", labelsOf(enums.SessionStatusValues()))
	return specs
}

func labelsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// EnsureEnumTypes creates the native enum types before AutoMigrate needs
// them for column definitions. Extending a set is a migration, so existing
// types are left untouched.
func EnsureEnumTypes(db *gorm.DB) error {
	for _, spec := range enumSpecs() {
		quoted := make([]string, len(spec.labels))
		for i, l := range spec.labels {
			quoted[i] = "'" + l + "'"
		}
		stmt := fmt.Sprintf(`
			DO $$ BEGIN
				CREATE TYPE %s AS ENUM (%s);
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$;
		`, spec.name, strings.Join(quoted, ", "))
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create enum type %s: %w", spec.name, err)
		}
	}
	return nil
}

type fkSpec struct {
	name     string
	table    string
	column   string
	refTable string
	onDelete string
}

const (
	deleteCascade = "CASCADE"
	deleteSetNull = "SET NULL"
	deleteBlock   = "" // engine default NO ACTION
)

// Ownership model of the schema: cascade edges mean the child cannot
// outlive its parent; SET NULL edges keep the row but drop the attribution;
// plain edges are restrictive, so deleting the target fails until every
// reference is cleared.
func fkSpecs() []fkSpec {
	return []fkSpec{
		// Role and support rows die with their user.
		{"fk_user_profiles_user", "user_profiles", "user_id", "users", deleteCascade},
		{"fk_doctors_user", "doctors", "user_id", "users", deleteCascade},
		{"fk_patients_user", "patients", "user_id", "users", deleteCascade},
		{"fk_user_sessions_user", "user_sessions", "user_id", "users", deleteCascade},
		{"fk_notifications_user", "notifications", "user_id", "users", deleteCascade},

		// Clinical rows die with their patient (and record).
		{"fk_health_records_patient", "health_records", "patient_id", "patients", deleteCascade},
		{"fk_medications_patient", "medications", "patient_id", "patients", deleteCascade},
		{"fk_medications_health_record", "medications", "health_record_id", "health_records", deleteCascade},
		{"fk_lab_results_patient", "lab_results", "patient_id", "patients", deleteCascade},
		{"fk_lab_results_health_record", "lab_results", "health_record_id", "health_records", deleteCascade},
		{"fk_appointments_patient", "appointments", "patient_id", "patients", deleteCascade},
		{"fk_appointments_doctor", "appointments", "doctor_id", "doctors", deleteCascade},

		// Attribution edges: the row outlives the actor.
		{"fk_documents_uploader", "documents", "uploaded_by_user_id", "users", deleteSetNull},
		{"fk_audit_logs_user", "audit_logs", "user_id", "users", deleteSetNull},

		// Restrictive context references, defensively checked by readers.
		{"fk_patients_primary_doctor", "patients", "primary_doctor_id", "doctors", deleteBlock},
		{"fk_doctors_facility", "doctors", "facility_id", "healthcare_facilities", deleteBlock},
		{"fk_health_records_doctor", "health_records", "doctor_id", "doctors", deleteBlock},
		{"fk_health_records_facility", "health_records", "facility_id", "healthcare_facilities", deleteBlock},
		{"fk_appointments_facility", "appointments", "facility_id", "healthcare_facilities", deleteBlock},
		{"fk_medications_prescriber", "medications", "prescribed_by_doctor_id", "doctors", deleteBlock},
		{"fk_lab_results_orderer", "lab_results", "ordered_by_doctor_id", "doctors", deleteBlock},
		{"fk_birth_registrations_facility", "birth_registrations", "facility_id", "healthcare_facilities", deleteBlock},
		{"fk_birth_registrations_registrar", "birth_registrations", "registered_by_user_id", "users", deleteBlock},
		{"fk_birth_registrations_reviewer", "birth_registrations", "reviewed_by_user_id", "users", deleteBlock},
		{"fk_birth_registrations_patient", "birth_registrations", "patient_id", "patients", deleteBlock},
		{"fk_documents_patient", "documents", "patient_id", "patients", deleteBlock},
		{"fk_documents_health_record", "documents", "health_record_id", "health_records", deleteBlock},
		{"fk_documents_birth_registration", "documents", "birth_registration_id", "birth_registrations", deleteBlock},
		{"fk_notifications_appointment", "notifications", "appointment_id", "appointments", deleteBlock},
		{"fk_notifications_health_record", "notifications", "health_record_id", "health_records", deleteBlock},
		{"fk_notifications_birth_registration", "notifications", "birth_registration_id", "birth_registrations", deleteBlock},
	}
}

func EnsureForeignKeys(db *gorm.DB) error {
	for _, fk := range fkSpecs() {
		onDelete := ""
		if fk.onDelete != "" {
			onDelete = " ON DELETE " + fk.onDelete
		}
		stmt := fmt.Sprintf(`
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE %s
					ADD CONSTRAINT %s
					FOREIGN KEY (%s) REFERENCES %s(id)%s;
				END IF;
			END $$;
		`, fk.name, fk.table, fk.name, fk.column, fk.refTable, onDelete)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create %s: %w", fk.name, err)
		}
	}
	return nil
}

func EnsureCheckConstraints(db *gorm.DB) error {
	checks := []struct {
		name  string
		table string
		expr  string
	}{
		{"chk_birth_registrations_apgar_1min", "birth_registrations", "apgar_score_1min IS NULL OR (apgar_score_1min >= 0 AND apgar_score_1min <= 10)"},
		{"chk_birth_registrations_apgar_5min", "birth_registrations", "apgar_score_5min IS NULL OR (apgar_score_5min >= 0 AND apgar_score_5min <= 10)"},
		{"chk_birth_registrations_weight", "birth_registrations", "birth_weight_grams IS NULL OR birth_weight_grams > 0"},
		{"chk_appointments_duration", "appointments", "duration_minutes > 0"},
		{"chk_documents_file_size", "documents", "file_size_bytes >= 0"},
	}
	for _, c := range checks {
		stmt := fmt.Sprintf(`
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s);
				END IF;
			END $$;
		`, c.name, c.table, c.name, c.expr)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create %s: %w", c.name, err)
		}
	}
	return nil
}

func EnsureIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_users_user_type ON users (user_type);`,
		`CREATE INDEX IF NOT EXISTS idx_users_status ON users (status);`,

		`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_scheduled ON appointments (doctor_id, scheduled_at);`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_patient_scheduled ON appointments (patient_id, scheduled_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status);`,

		`CREATE INDEX IF NOT EXISTS idx_health_records_patient_date ON health_records (patient_id, record_date DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_health_records_type ON health_records (record_type);`,

		`CREATE INDEX IF NOT EXISTS idx_birth_registrations_status ON birth_registrations (registration_status, created_at DESC);`,

		`CREATE INDEX IF NOT EXISTS idx_notifications_user_unread ON notifications (user_id, is_read, created_at DESC);`,

		`CREATE INDEX IF NOT EXISTS idx_user_sessions_expires_at ON user_sessions (expires_at);`,
		`CREATE INDEX IF NOT EXISTS idx_user_sessions_user_status ON user_sessions (user_id, status);`,

		`CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs (resource_type, resource_id, created_at DESC);`,

		// Trigram indexes back the name searches.
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_first_name_trgm ON user_profiles USING GIN (first_name gin_trgm_ops);`,
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_last_name_trgm ON user_profiles USING GIN (last_name gin_trgm_ops);`,
		`CREATE INDEX IF NOT EXISTS idx_healthcare_facilities_name_trgm ON healthcare_facilities USING GIN (name gin_trgm_ops);`,
		`CREATE INDEX IF NOT EXISTS idx_birth_registrations_child_trgm ON birth_registrations USING GIN (child_last_name gin_trgm_ops);`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Every mutable table gets the same trigger; audit_logs stays out because
// it is append-only and carries no updated_at.
var timestampedTables = []string{
	"users", "user_profiles", "doctors", "patients", "healthcare_facilities",
	"birth_registrations", "health_records", "medications", "lab_results",
	"appointments", "documents", "notifications", "user_sessions",
	"system_settings",
}

func EnsureTimestampTriggers(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE OR REPLACE FUNCTION set_updated_at()
		RETURNS trigger AS $$
		BEGIN
			NEW.updated_at = now();
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql;
	`).Error; err != nil {
		return fmt.Errorf("create set_updated_at function: %w", err)
	}
	for _, table := range timestampedTables {
		stmt := fmt.Sprintf(`
			DROP TRIGGER IF EXISTS trg_%s_updated_at ON %s;
			CREATE TRIGGER trg_%s_updated_at
			BEFORE UPDATE ON %s
			FOR EACH ROW EXECUTE FUNCTION set_updated_at();
		`, table, table, table, table)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create updated_at trigger for %s: %w", table, err)
		}
	}
	return nil
}

// rlsTables have row-level security enabled but no policies: the predicate
// functions are placeholders and enforcement is the application's
// responsibility. Policy bodies must not be invented here.
var rlsTables = []string{
	"users", "user_profiles", "doctors", "patients",
	"birth_registrations", "health_records", "appointments", "documents",
}

func EnsureRowLevelSecurity(db *gorm.DB) error {
	stubs := []string{
		`CREATE OR REPLACE FUNCTION current_user_id() RETURNS uuid AS $$ SELECT NULL::uuid $$ LANGUAGE sql STABLE;`,
		`CREATE OR REPLACE FUNCTION is_admin() RETURNS boolean AS $$ SELECT false $$ LANGUAGE sql STABLE;`,
		`CREATE OR REPLACE FUNCTION is_healthcare_provider() RETURNS boolean AS $$ SELECT false $$ LANGUAGE sql STABLE;`,
	}
	for _, stmt := range stubs {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create authorization stub: %w", err)
		}
	}
	for _, table := range rlsTables {
		if err := db.Exec(fmt.Sprintf(`ALTER TABLE %s ENABLE ROW LEVEL SECURITY;`, table)).Error; err != nil {
			return fmt.Errorf("enable row level security on %s: %w", table, err)
		}
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Migrating postgres schema...")
	if err := EnsureEnumTypes(s.db); err != nil {
		s.log.Error("Enum type migration failed", "error", err)
		return err
	}
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureForeignKeys(s.db); err != nil {
		s.log.Error("Foreign key migration failed", "error", err)
		return err
	}
	if err := EnsureCheckConstraints(s.db); err != nil {
		s.log.Error("Check constraint migration failed", "error", err)
		return err
	}
	if err := EnsureIndexes(s.db); err != nil {
		s.log.Error("Index migration failed", "error", err)
		return err
	}
	if err := EnsureTimestampTriggers(s.db); err != nil {
		s.log.Error("Timestamp trigger migration failed", "error", err)
		return err
	}
	if err := EnsureRowLevelSecurity(s.db); err != nil {
		s.log.Error("Row level security migration failed", "error", err)
		return err
	}
	return nil
}
