package author

import "time"

// DateLayout is the wire format for birthdates.
const DateLayout = "2006-01-02"

// Author is the domain entity, independent of transport concerns.
// IDs are assigned by the store.
type Author struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"-"`
}

// SaveAuthorRequest is the body for both create and update.
// Pointer fields keep absent JSON keys distinguishable from zero values,
// which the validation rules depend on.
type SaveAuthorRequest struct {
	Name      *string `json:"name"`
	Birthdate *string `json:"birthdate"`
}

// AuthorResponse is the author as it appears inside query results.
type AuthorResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Birthdate: a.Birthdate.Format(DateLayout),
	}
}
