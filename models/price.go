package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is a float64 that survives whatever the catalog throws at it.
// Partner feeds deliver prices as numbers, quoted numbers, nulls or junk;
// anything unparseable becomes 0 instead of an error so a single bad row
// never takes down outfit generation.
type Price float64

func (p Price) Float64() float64 {
	return float64(p)
}

// UnmarshalJSON coerces numbers, numeric strings and null. It never fails.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Scan accepts the numeric representations Postgres drivers hand back.
func (p *Price) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = 0
	case float64:
		*p = Price(v)
	case float32:
		*p = Price(v)
	case int64:
		*p = Price(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			*p = 0
			return nil
		}
		*p = Price(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*p = 0
			return nil
		}
		*p = Price(f)
	default:
		return fmt.Errorf("cannot scan %T into Price", value)
	}
	return nil
}

func (p Price) Value() (driver.Value, error) {
	return float64(p), nil
}
