package api

// Request bodies sent to the LearnHouse backend. Responses are passed
// through undecoded.

type CreateCollectionRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Public      bool     `json:"public"`
	OrgID       int64    `json:"org_id"`
	Courses     []string `json:"courses"` // course UUIDs
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
