package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded list of strings stored in a single column
type StringList []string

// Value implements driver.Valuer for database storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan type %T into StringList", value)
	}
}

// NutritionRow is a single label/value pair on the nutrition facts panel
type NutritionRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NutritionFacts is the ordered nutrition panel stored as a JSON column
type NutritionFacts []NutritionRow

// Value implements driver.Valuer for database storage
func (n NutritionFacts) Value() (driver.Value, error) {
	if n == nil {
		return "[]", nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (n *NutritionFacts) Scan(value interface{}) error {
	if value == nil {
		*n = NutritionFacts{}
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), n)
	case []byte:
		return json.Unmarshal(v, n)
	default:
		return fmt.Errorf("cannot scan type %T into NutritionFacts", value)
	}
}
