package domain

import "time"

type Category struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}

type Review struct {
	ID           int64     `json:"review_id" db:"review_id"`
	Title        string    `json:"title" db:"title"`
	Designer     string    `json:"designer" db:"designer"`
	Owner        string    `json:"owner" db:"owner"`
	ReviewImgURL string    `json:"review_img_url" db:"review_img_url"`
	ReviewBody   string    `json:"review_body" db:"review_body"`
	Category     string    `json:"category" db:"category"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int       `json:"votes" db:"votes"`
}

// ReviewSummary is a listing row: the review without its body, plus the
// number of comments attached to it.
type ReviewSummary struct {
	ID           int64     `json:"review_id" db:"review_id"`
	Owner        string    `json:"owner" db:"owner"`
	Title        string    `json:"title" db:"title"`
	Category     string    `json:"category" db:"category"`
	ReviewImgURL string    `json:"review_img_url" db:"review_img_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Designer     string    `json:"designer" db:"designer"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

type Comment struct {
	ID        int64     `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	Author    string    `json:"author" db:"author"`
	ReviewID  int64     `json:"review_id" db:"review_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type NewComment struct {
	ReviewID int64
	Author   string
	Body     string
}
