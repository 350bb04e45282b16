package entity

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across the ledger.
// Dates are stored and compared as plain YYYY-MM-DD strings; there is
// no time component and no timezone handling.
const DateLayout = "2006-01-02"

// Date is a calendar date carried as a plain YYYY-MM-DD string. The
// ledger columns are Postgres dates and the driver hands those back as
// time.Time, which database/sql would otherwise render into a string as
// RFC3339; Scan reformats it so the wire format stays YYYY-MM-DD.
type Date string

// Scan implements sql.Scanner
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = Date(v)
	case []byte:
		*d = Date(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

func (d Date) String() string {
	return string(d)
}
