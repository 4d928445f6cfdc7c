package models

// Account types are a closed set; the database CHECK constraint mirrors it.
const (
	TypeEmployee = "employee"
	TypeStudent  = "student"
)

// ValidUserType reports whether t is one of the known account types.
func ValidUserType(t string) bool {
	return t == TypeEmployee || t == TypeStudent
}
