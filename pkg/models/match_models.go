package models

import "time"

// Like is a directed interest edge. The composite unique index makes a
// duplicate submission fail at the store instead of silently merging.
type Like struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceID   string    `gorm:"size:36;not null;uniqueIndex:idx_like_edge" json:"source_id"`
	TargetID   string    `gorm:"size:36;not null;uniqueIndex:idx_like_edge" json:"target_id"`
	TargetKind string    `gorm:"size:16;not null;uniqueIndex:idx_like_edge" json:"target_kind"`
	CreatedAt  time.Time `json:"created_at"`
}

// Match is the undirected mutual-interest record. PairKey is the sorted
// "low:high" of the two user ids; its unique index is what keeps concurrent
// mutual-like completions from producing two rows for one pair.
type Match struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserA     string    `gorm:"size:36;not null;index" json:"user_a"`
	UserB     string    `gorm:"size:36;not null;index" json:"user_b"`
	PairKey   string    `gorm:"size:80;not null;uniqueIndex" json:"-"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchPairKey canonicalizes an unordered user pair
func MatchPairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// Partner returns the other side of the match for the given user
func (m Match) Partner(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}
