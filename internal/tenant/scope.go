// Package tenant holds gorm scopes that pin queries to the caller's company.
package tenant

import "gorm.io/gorm"

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// OwnedBy narrows a company scope to rows belonging to one employee. The
// company condition is applied inline so it always renders first.
func OwnedBy(companyID, employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return Scope(companyID)(db).Where("employee_id = ?", employeeID)
	}
}
