package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Role identifies the account type
type Role int

const (
	RoleCustomer Role = 0
	RoleTailor   Role = 1
)

func (r Role) String() string {
	return [...]string{"customer", "tailor"}[r]
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = Role(i)
		return nil
	}
	switch str {
	case "customer":
		*r = RoleCustomer
	case "tailor":
		*r = RoleTailor
	}
	return nil
}

func (r Role) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleCustomer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = Role(v)
	case int:
		*r = Role(v)
	}
	return nil
}

// ParseRole maps an API role string to its enum value, defaulting to customer
func ParseRole(s string) Role {
	if s == "tailor" {
		return RoleTailor
	}
	return RoleCustomer
}
