package model

// ChangeEvent is broadcast over the events channel whenever a resource is
// created, updated, or deleted, so connected clients can refresh views.
type ChangeEvent struct {
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	FamilyID  int    `json:"family_id"`
	EntityID  int    `json:"entity_id,omitempty"`
	StudentID int    `json:"student_id,omitempty"`
	Date      string `json:"date,omitempty"`
}
