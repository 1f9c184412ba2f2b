// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest / LoginRequest: username, password
  - VoteRequest: songId
  - AddSongRequest: name, artist, genre, src, thumbnail
  - SavePlaylistRequest: name, description, thumbnail, songIds
  - CreateSubmissionRequest: name, artist, genre, link
  - UpdateSubmissionRequest: approved

# Response Types

Types for JSON responses:

  - TokenResponse: token
  - MessageResponse: message
  - LikeResponse: liked
  - SearchResponse: songs, playlists
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account record (password hash never serializes)
  - Song: catalog entry
  - VotableSong: Song plus a per-user voted flag
  - RankedSong: leaderboard row (id, name, artist, voteCount)
  - SelectedSong: final-selection row (full song plus voteCount)
  - Playlist: playlist metadata plus ordered song ids
  - Submission: song submission pending moderation
*/
package models
