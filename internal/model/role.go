package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Role is the numeric account role. The wire format sometimes carries it as a
// numeric string, so every deserialization path must go through ParseRole
// instead of comparing raw values.
type Role int

const (
	RoleAdmin Role = iota
	RoleOwner
	RoleStaff
	RoleUser
)

func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleUser
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleOwner:
		return "owner"
	case RoleStaff:
		return "staff"
	case RoleUser:
		return "user"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
func (r Role) IsOwner() bool { return r == RoleOwner }
func (r Role) IsStaff() bool { return r == RoleStaff }
func (r Role) IsUser() bool  { return r == RoleUser }

// CanManageBookings reports whether the role may set status, staff assignment
// and staff preferences on an appointment.
func (r Role) CanManageBookings() bool {
	return r == RoleAdmin || r == RoleOwner
}

// ParseRole normalizes a role arriving as a number or a numeric string.
func ParseRole(v interface{}) (Role, error) {
	switch val := v.(type) {
	case Role:
		if !val.Valid() {
			return 0, fmt.Errorf("invalid role: %d", int(val))
		}
		return val, nil
	case int:
		return validateRole(val)
	case int64:
		return validateRole(int(val))
	case float64:
		if val != float64(int(val)) {
			return 0, fmt.Errorf("invalid role: %v", val)
		}
		return validateRole(int(val))
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("invalid role: %q", val.String())
		}
		return validateRole(int(n))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("invalid role: %q", val)
		}
		return validateRole(n)
	case nil:
		return 0, fmt.Errorf("missing role")
	default:
		return 0, fmt.Errorf("invalid role type %T", v)
	}
}

func validateRole(n int) (Role, error) {
	r := Role(n)
	if !r.Valid() {
		return 0, fmt.Errorf("invalid role: %d", n)
	}
	return r, nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

// UnmarshalJSON accepts both 1 and "1".
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
