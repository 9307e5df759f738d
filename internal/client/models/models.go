// Package models defines the journal domain types exchanged with the backend.
package models

// User is the authenticated identity. Populated from the login/register
// response together with the submitted form values.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Entry is a journal record. The id is always server-assigned; the client
// never generates identifiers.
type Entry struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// EntryDraft is the client-authored part of an entry, sent on create.
type EntryDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// EntryPatch is a partial update. Nil fields are omitted from the request
// body and left untouched by the server.
type EntryPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Date     *string `json:"date,omitempty"`
}

// Profile is the user-editable account data shown on the settings screen.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// FrequencyBucket is one point of the per-day entry count summary.
type FrequencyBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CategoryCount is one slice of the per-category summary.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// WordCount is the aggregate word statistics summary.
type WordCount struct {
	TotalWords   int `json:"totalWords"`
	TotalEntries int `json:"totalEntries"`
}
