package models

// Role of an account within the department.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is an officer or administrator account.
// Passwords are stored and compared as plaintext to match the seeded demo
// accounts; swap in salted hashing before any production rollout.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;column:id;size:50"`
	Name     string `json:"name" gorm:"column:name;size:255;not null"`
	Role     Role   `json:"role" gorm:"column:role;size:20;not null;index"`
	Password string `json:"password,omitempty" gorm:"column:password;size:255"`
}

func (User) TableName() string {
	return "users"
}
