package dto

// LikeCreateDTO is the like submission payload
type LikeCreateDTO struct {
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"` // "user" or "property"
}

// LikeResultDTO reports the persisted edge and, for user likes that completed
// a mutual pair, the match it produced or re-detected.
type LikeResultDTO struct {
	LikeID  int  `json:"like_id"`
	MatchID int  `json:"match_id,omitempty"`
	IsMatch bool `json:"is_match"`
}

// MatchEventDTO is the payload published on match creation for the
// notification collaborator.
type MatchEventDTO struct {
	MatchID   int    `json:"match_id"`
	UserA     string `json:"user_a"`
	UserB     string `json:"user_b"`
	CreatedAt string `json:"created_at"`
}
