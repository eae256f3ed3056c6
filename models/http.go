package models

// Request and response envelopes of the HTTP API. Every payload is wrapped
// in a top-level object keyed by the entity name ("user", "note", "notes").

// RegisterUserRequest is the body of POST /api/auth/register.
type RegisterUserRequest struct {
	User RegisterUserData `json:"user"`
}

// RegisterUserData carries the credentials of a new account.
type RegisterUserData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserRequest is the body of POST /api/auth/login.
type LoginUserRequest struct {
	User LoginUserData `json:"user"`
}

// LoginUserData carries the credentials presented at login.
type LoginUserData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /api/user. Absent fields leave the
// current profile values unchanged.
type UpdateUserRequest struct {
	User UpdateUserData `json:"user"`
}

// UpdateUserData carries the optional profile fields of a partial update.
type UpdateUserData struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

// UserResponse is the envelope returned by all auth and profile endpoints.
type UserResponse struct {
	User UserData `json:"user"`
}

// UserData is the outward-facing representation of a user together with a
// freshly issued token. The password hash is deliberately absent.
type UserData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}

// NewUserData builds the outward-facing representation of user carrying the
// given signed token.
func NewUserData(user User, token Token) UserData {
	return UserData{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token.SignedString,
	}
}

// CreateNoteRequest is the body of POST /api/notes.
type CreateNoteRequest struct {
	Note CreateNoteData `json:"note"`
}

// CreateNoteData carries the content of a new note.
type CreateNoteData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the body of PATCH /api/notes/{id}. Absent fields leave
// the current note values unchanged.
type UpdateNoteRequest struct {
	Note UpdateNoteData `json:"note"`
}

// UpdateNoteData carries the optional fields of a partial note update.
type UpdateNoteData struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse is the envelope returned by single-note endpoints.
type NoteResponse struct {
	Note NoteData `json:"note"`
}

// NoteData is the outward-facing representation of a note.
type NoteData struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewNoteData builds the outward-facing representation of note.
func NewNoteData(note Note) NoteData {
	return NoteData{
		ID:      note.ID.String(),
		UserID:  note.UserID.String(),
		Title:   note.Title,
		Content: note.Content,
	}
}

// NoteListResponse is the envelope returned by GET /api/notes/me.
type NoteListResponse struct {
	Notes []NoteData `json:"notes"`
}

// NewNoteListResponse builds the list envelope for notes. The Notes slice is
// never nil so that the JSON form is always an array.
func NewNoteListResponse(notes []Note) NoteListResponse {
	data := make([]NoteData, 0, len(notes))
	for _, note := range notes {
		data = append(data, NewNoteData(note))
	}
	return NoteListResponse{Notes: data}
}
