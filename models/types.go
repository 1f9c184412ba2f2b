package models

import "time"

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VoteRequest struct {
	SongID *int `json:"songId"`
}

type AddSongRequest struct {
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Genre     string `json:"genre"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail"`
}

type SavePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	SongIDs     []int  `json:"songIds"`
}

type CreateSubmissionRequest struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`
	Link   string `json:"link"`
}

type UpdateSubmissionRequest struct {
	Approved *bool `json:"approved"`
}

// Response types

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
}

type SearchResponse struct {
	Songs     []Song     `json:"songs"`
	Playlists []Playlist `json:"playlists"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Song struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Genre     string `json:"genre"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail"`
	Liked     bool   `json:"liked"`
}

// VotableSong is a catalog song annotated with whether the requesting
// user currently has an active vote for it.
type VotableSong struct {
	Song
	Voted bool `json:"voted"`
}

// RankedSong is one leaderboard row: a catalog projection plus the
// current vote count.
type RankedSong struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	VoteCount int    `json:"voteCount"`
}

// SelectedSong is one entry of the final selection list.
type SelectedSong struct {
	Song
	VoteCount int `json:"voteCount"`
}

type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Owner       string    `json:"owner"`
	SongIDs     []int     `json:"songIds"`
	CreatedAt   time.Time `json:"created_at"`
}

type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Artist    string    `json:"artist"`
	Genre     string    `json:"genre"`
	Link      string    `json:"link"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
