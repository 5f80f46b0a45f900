package reconcile

import (
	"fmt"

	"gorm.io/gorm"
)

// Apply executes a plan inside one transaction. keyColumn is the external-key
// column of the entity's table; deletes target it exclusively. Any failure
// rolls the whole pass back so no partial reconciliation is ever committed.
func Apply[E Entity](db *gorm.DB, plan Plan[E], keyColumn string) error {
	if plan.Empty() {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if len(plan.Inserts) > 0 {
			if err := tx.Create(&plan.Inserts).Error; err != nil {
				return fmt.Errorf("insert %d rows: %w", len(plan.Inserts), err)
			}
		}
		for i := range plan.Updates {
			if err := tx.Save(&plan.Updates[i]).Error; err != nil {
				return fmt.Errorf("update row %s: %w", plan.Updates[i].ExternalKey(), err)
			}
		}
		if len(plan.Deletes) > 0 {
			var zero E
			if err := tx.Where(keyColumn+" IN ?", plan.Deletes).Delete(&zero).Error; err != nil {
				return fmt.Errorf("delete %d rows: %w", len(plan.Deletes), err)
			}
		}
		return nil
	})
}
