package model

// PlaylistTrack is an entry of the live playlist. The backend marks the
// most recently appended track as playing.
type PlaylistTrack struct {
	ID        int64  `json:"id"`
	TrackName string `json:"track_name"`
	Artist    string `json:"artist"`
	IsPlaying bool   `json:"is_playing"`
	AddedAt   string `json:"added_at"`
}
