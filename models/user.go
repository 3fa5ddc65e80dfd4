package models

// UserSession is the locally persisted identity of the reporting citizen.
// There is no real authentication behind it.
type UserSession struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the request body for starting a session.
type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// LocateRequest asks for a human-readable label for raw coordinates.
type LocateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
