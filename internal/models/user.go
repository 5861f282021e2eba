package models

const RoleTeacher = "teacher"

// User carries only what the course service needs: identity and role. The
// auth service owns the rest of the account.
type User struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}
