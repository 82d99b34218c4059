// Package api defines the wire types exchanged with the Mayhem backend API.
// The backend owns these records; the admin application only reads them.
package api

import "time"

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the authenticated principal returned at login time. It is an
// immutable snapshot held for display only and never re-validated locally.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthResponse is the response of POST /admin/login.
type AuthResponse struct {
	Token string `json:"token"`
	Admin User   `json:"admin"`
}

// Song is a record in the music catalog. All mutation happens on the backend;
// the admin application lists and filters songs only.
type Song struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Artist             string     `json:"artist"`
	LengthInSeconds    string     `json:"length_in_seconds"`
	Year               *int       `json:"year,omitempty"`
	Genre              string     `json:"genre,omitempty"`
	Path               string     `json:"path,omitempty"`
	DirectURL          string     `json:"direct_url,omitempty"`
	DirectURLExpiresAt *time.Time `json:"direct_url_expires_at,omitempty"`
	PlayCount          int        `json:"play_count"`
	ITunesAffiliateURL string     `json:"itunes_affiliate_url,omitempty"`
	ITunesArtworkURL   string     `json:"itunes_artwork_url,omitempty"`
	Active             bool       `json:"active"`
	PublicURL          string     `json:"public_url,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// SongPage is the pagination envelope returned by GET /songs.
type SongPage struct {
	Items      []Song `json:"items"`
	TotalCount int    `json:"total_count"`
}
