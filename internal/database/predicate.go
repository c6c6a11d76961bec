package database

import "github.com/fekuna/omnipos-scm-service/internal/model"

// NotCustomerFacing is the shared location predicate used by low-stock
// alerts, origin listings and origin suggestions. column must hold a
// model.LocationKind. The fragment uses ? placeholders; Rebind before use.
func NotCustomerFacing(column string) (string, []interface{}) {
	return column + " NOT IN (?, ?)", []interface{}{
		string(model.LocationRetailHub),
		string(model.LocationCustomer),
	}
}
