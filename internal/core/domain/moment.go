package domain

type MomentStatus int

const (
	MomentHidden  MomentStatus = 0
	MomentVisible MomentStatus = 1
)

// Moment is a short post published by a user.
type Moment struct {
	Entity       `bson:",inline"`
	UserID       int64        `json:"userId" bson:"user_id"`
	Content      string       `json:"content" bson:"content"`
	ImageURLs    []string     `json:"imageUrls,omitempty" bson:"image_urls,omitempty"`
	LikeCount    int          `json:"likeCount" bson:"like_count"`
	CommentCount int          `json:"commentCount" bson:"comment_count"`
	Status       MomentStatus `json:"status" bson:"status"`
}
