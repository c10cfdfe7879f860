package blogservice

import (
	"context"
	"database/sql"

	"github.com/apiflux/blogapi/internal/common"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

// normalizePageLimit falls back to the defaults rather than failing:
// pagination parameters are never a validation error.
func normalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// CreateBlog inserts a new post for the author and returns it enriched
// with the author's display fields and zero-valued counts.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	validateExcerpt(v, req.Excerpt)
	validateID(v, req.AuthorID, "author_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	id, err := s.m.insert(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.m.getByID(ctx, id, &req.AuthorID)
}

// GetPublishedBlogs lists published posts, newest first. When viewerID
// is set each row also reports whether that viewer has liked it.
func (s *BlogService) GetPublishedBlogs(ctx context.Context, page, limit int, viewerID *int) ([]Blog, Pagination, error) {
	page, limit = normalizePageLimit(page, limit)

	total, err := s.m.countPublished(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	blogs, err := s.m.getPublished(ctx, limit, (page-1)*limit, viewerID)
	if err != nil {
		return nil, Pagination{}, err
	}

	return blogs, newPagination(page, limit, total), nil
}

// GetBlogsByAuthor lists every post of the author, drafts included.
func (s *BlogService) GetBlogsByAuthor(ctx context.Context, authorID, page, limit int) ([]Blog, Pagination, error) {
	v := common.NewValidator()
	validateID(v, authorID, "author_id")
	if !v.Valid() {
		return nil, Pagination{}, v.ValidationError()
	}

	page, limit = normalizePageLimit(page, limit)

	total, err := s.m.countByAuthor(ctx, authorID)
	if err != nil {
		return nil, Pagination{}, err
	}

	blogs, err := s.m.getByAuthor(ctx, authorID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	return blogs, newPagination(page, limit, total), nil
}

// GetBlogByID returns a post that is published or owned by the viewer;
// anything else is ErrRecordNotFound so non-owners cannot probe for
// drafts.
func (s *BlogService) GetBlogByID(ctx context.Context, id int, viewerID *int) (*Blog, error) {
	v := common.NewValidator()
	validateID(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id, viewerID)
}

// UpdateBlog applies a partial update to a post the caller owns and
// returns the refreshed enriched row. A post that is missing and a post
// owned by someone else produce the same ErrRecordNotFound.
func (s *BlogService) UpdateBlog(ctx context.Context, id, authorID int, req *UpdateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateID(v, id, "id")
	if req.Title != nil {
		validateTitle(v, *req.Title)
	}
	if req.Content != nil {
		validateContent(v, *req.Content)
	}
	validateExcerpt(v, req.Excerpt)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	owned, err := s.m.ownedExists(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrRecordNotFound
	}

	if err := s.m.update(ctx, id, authorID, req); err != nil {
		return nil, err
	}

	return s.m.getByID(ctx, id, &authorID)
}

// DeleteBlog removes a post the caller owns; comments and likes go with
// it via the cascading foreign keys.
func (s *BlogService) DeleteBlog(ctx context.Context, id, authorID int) error {
	v := common.NewValidator()
	validateID(v, id, "id")
	validateID(v, authorID, "author_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, id, authorID)
}

// ToggleLike flips the caller's like on a published post and reports
// the resulting state: true when the post is now liked.
func (s *BlogService) ToggleLike(ctx context.Context, blogID, userID int) (bool, error) {
	v := common.NewValidator()
	validateID(v, blogID, "id")
	validateID(v, userID, "user_id")
	if !v.Valid() {
		return false, v.ValidationError()
	}

	published, err := s.m.publishedExists(ctx, blogID)
	if err != nil {
		return false, err
	}
	if !published {
		return false, ErrRecordNotFound
	}

	removed, err := s.m.deleteLike(ctx, userID, blogID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	if err := s.m.insertLike(ctx, userID, blogID); err != nil {
		return false, err
	}

	return true, nil
}

// AddComment attaches a comment to a published post and returns it
// enriched with the commenter's display fields.
func (s *BlogService) AddComment(ctx context.Context, blogID, userID int, content string) (*Comment, error) {
	v := common.NewValidator()
	validateID(v, blogID, "id")
	validateCommentContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	published, err := s.m.publishedExists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, ErrRecordNotFound
	}

	id, err := s.m.insertComment(ctx, content, userID, blogID)
	if err != nil {
		return nil, err
	}

	return s.m.getCommentByID(ctx, id)
}

// GetComments lists a published post's comments, newest first.
func (s *BlogService) GetComments(ctx context.Context, blogID, page, limit int) ([]Comment, Pagination, error) {
	v := common.NewValidator()
	validateID(v, blogID, "id")
	if !v.Valid() {
		return nil, Pagination{}, v.ValidationError()
	}

	published, err := s.m.publishedExists(ctx, blogID)
	if err != nil {
		return nil, Pagination{}, err
	}
	if !published {
		return nil, Pagination{}, ErrRecordNotFound
	}

	page, limit = normalizePageLimit(page, limit)

	total, err := s.m.countComments(ctx, blogID)
	if err != nil {
		return nil, Pagination{}, err
	}

	comments, err := s.m.getComments(ctx, blogID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	return comments, newPagination(page, limit, total), nil
}
