package blogservice

import (
	"database/sql"
	"time"
)

type BlogService struct {
	m *BlogModel
}

type BlogModel struct {
	db *sql.DB
}

// Blog is a post row joined with its author's display fields and the
// per-request aggregate counts. IsLiked is only set when the request
// carries an authenticated viewer.
type Blog struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	AuthorID    int       `json:"author_id"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	AuthorUsername string  `json:"author_username"`
	AuthorFullName *string `json:"author_full_name,omitempty"`
	LikesCount     int     `json:"likes_count"`
	CommentsCount  int     `json:"comments_count"`
	IsLiked        *bool   `json:"is_liked,omitempty"`
}

// Comment is a comment row joined with its author's display fields.
type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	UserID    int       `json:"user_id"`
	BlogID    int       `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string  `json:"username"`
	FullName *string `json:"full_name,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// newPagination derives the page metadata; totalPages rounds up.
func newPagination(page, limit, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

type CreateBlogRequest struct {
	Title       string
	Content     string
	Excerpt     *string
	IsPublished *bool
	AuthorID    int
}

// UpdateBlogRequest carries a partial update; nil fields are left
// untouched.
type UpdateBlogRequest struct {
	Title       *string
	Content     *string
	Excerpt     *string
	IsPublished *bool
}
