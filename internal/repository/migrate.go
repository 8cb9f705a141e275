package repository

import "gorm.io/gorm"

// overlapConstraintDDL is the commit-time backstop for the
// no-double-booking invariant: Postgres rejects a second booked
// reservation whose [start_minute, end_minute) range intersects an
// existing one on the same court and date. The DO block makes the
// statement idempotent across restarts.
const overlapConstraintDDL = `
DO $$
BEGIN
	ALTER TABLE reservations
		ADD CONSTRAINT idx_no_overlap EXCLUDE USING gist (
			court_id WITH =,
			date WITH =,
			int4range(start_minute, end_minute) WITH &&
		) WHERE (status = 'booked');
EXCEPTION
	WHEN duplicate_object THEN NULL;
	WHEN duplicate_table THEN NULL;
END $$;
`

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&courtModel{},
		&courtClosedDateModel{},
		&reservationModel{},
	); err != nil {
		return err
	}

	// sqlite deployments are single-process and covered by the engine's
	// keyed locks; the exclusion constraint is Postgres-only.
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	return db.Exec(overlapConstraintDDL).Error
}
