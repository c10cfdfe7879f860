package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/apiflux/blogapi/internal/common"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrAuthorForeignKey = errors.New("author does not exist")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// enrichedBlogColumns joins the author's display fields and computes the
// aggregate counts per row. Fixed query text only; every variable value
// goes through a placeholder.
const enrichedBlogColumns = `
	b.id, b.title, b.content, b.excerpt, b.author_id, b.is_published, b.created_at, b.updated_at,
	u.username, u.full_name,
	(SELECT COUNT(*) FROM likes l WHERE l.blog_id = b.id) AS likes_count,
	(SELECT COUNT(*) FROM comments c WHERE c.blog_id = b.id) AS comments_count`

func scanBlog(row interface{ Scan(dest ...any) error }, withLiked bool) (*Blog, error) {
	var b Blog

	dest := []any{
		&b.ID, &b.Title, &b.Content, &b.Excerpt, &b.AuthorID, &b.IsPublished, &b.CreatedAt, &b.UpdatedAt,
		&b.AuthorUsername, &b.AuthorFullName, &b.LikesCount, &b.CommentsCount,
	}
	if withLiked {
		b.IsLiked = new(bool)
		dest = append(dest, b.IsLiked)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (m *BlogModel) insert(ctx context.Context, req *CreateBlogRequest) (int, error) {
	query := `
		INSERT INTO blogs (title, content, excerpt, author_id, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	var id int
	err := m.db.QueryRowContext(ctx, query, req.Title, req.Content, req.Excerpt, req.AuthorID, published).Scan(&id)
	if err != nil {
		switch {
		case common.ForeignKeyViolation(err, "blogs_author_id_fkey"):
			return 0, ErrAuthorForeignKey
		default:
			return 0, err
		}
	}

	return id, nil
}

// getByID returns a blog that is published or owned by the viewer.
// Hidden and missing rows are indistinguishable to the caller.
func (m *BlogModel) getByID(ctx context.Context, id int, viewerID *int) (*Blog, error) {
	var (
		row       *sql.Row
		withLiked bool
	)

	if viewerID == nil {
		query := `
			SELECT ` + enrichedBlogColumns + `
			FROM blogs b
			JOIN users u ON b.author_id = u.id
			WHERE b.id = $1 AND b.is_published = true`
		row = m.db.QueryRowContext(ctx, query, id)
	} else {
		query := `
			SELECT ` + enrichedBlogColumns + `,
				EXISTS (SELECT 1 FROM likes l WHERE l.blog_id = b.id AND l.user_id = $2) AS is_liked
			FROM blogs b
			JOIN users u ON b.author_id = u.id
			WHERE b.id = $1 AND (b.is_published = true OR b.author_id = $2)`
		row = m.db.QueryRowContext(ctx, query, id, *viewerID)
		withLiked = true
	}

	blog, err := scanBlog(row, withLiked)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return blog, nil
}

func (m *BlogModel) countPublished(ctx context.Context) (int, error) {
	var total int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE is_published = true`).Scan(&total)
	return total, err
}

func (m *BlogModel) getPublished(ctx context.Context, limit, offset int, viewerID *int) ([]Blog, error) {
	var (
		rows      *sql.Rows
		err       error
		withLiked bool
	)

	if viewerID == nil {
		query := `
			SELECT ` + enrichedBlogColumns + `
			FROM blogs b
			JOIN users u ON b.author_id = u.id
			WHERE b.is_published = true
			ORDER BY b.created_at DESC, b.id DESC
			LIMIT $1 OFFSET $2`
		rows, err = m.db.QueryContext(ctx, query, limit, offset)
	} else {
		query := `
			SELECT ` + enrichedBlogColumns + `,
				EXISTS (SELECT 1 FROM likes l WHERE l.blog_id = b.id AND l.user_id = $3) AS is_liked
			FROM blogs b
			JOIN users u ON b.author_id = u.id
			WHERE b.is_published = true
			ORDER BY b.created_at DESC, b.id DESC
			LIMIT $1 OFFSET $2`
		rows, err = m.db.QueryContext(ctx, query, limit, offset, *viewerID)
		withLiked = true
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBlogs(rows, withLiked)
}

func (m *BlogModel) countByAuthor(ctx context.Context, authorID int) (int, error) {
	var total int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE author_id = $1`, authorID).Scan(&total)
	return total, err
}

// getByAuthor returns the author's own blogs regardless of publish
// state, newest first.
func (m *BlogModel) getByAuthor(ctx context.Context, authorID, limit, offset int) ([]Blog, error) {
	query := `
		SELECT ` + enrichedBlogColumns + `
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.author_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBlogs(rows, false)
}

func collectBlogs(rows *sql.Rows, withLiked bool) ([]Blog, error) {
	blogs := []Blog{}

	for rows.Next() {
		blog, err := scanBlog(rows, withLiked)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// ownedExists reports whether the blog exists and belongs to authorID.
func (m *BlogModel) ownedExists(ctx context.Context, id, authorID int) (bool, error) {
	var found bool
	err := m.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM blogs WHERE id = $1 AND author_id = $2)`, id, authorID).Scan(&found)
	return found, err
}

// update applies only the fields present in req. The SET clause is
// assembled from fixed column fragments; values travel as placeholders.
func (m *BlogModel) update(ctx context.Context, id, authorID int, req *UpdateBlogRequest) error {
	var (
		set  []string
		args []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Content != nil {
		add("content", *req.Content)
	}
	if req.Excerpt != nil {
		add("excerpt", *req.Excerpt)
	}
	if req.IsPublished != nil {
		add("is_published", *req.IsPublished)
	}

	if len(set) == 0 {
		return ErrNoFieldsToUpdate
	}

	set = append(set, "updated_at = now()")
	args = append(args, id, authorID)

	query := fmt.Sprintf(`
		UPDATE blogs
		SET %s
		WHERE id = $%d AND author_id = $%d`, strings.Join(set, ", "), len(args)-1, len(args))

	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (m *BlogModel) delete(ctx context.Context, id, authorID int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1 AND author_id = $2`

	res, err := m.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (m *BlogModel) publishedExists(ctx context.Context, id int) (bool, error) {
	var found bool
	err := m.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM blogs WHERE id = $1 AND is_published = true)`, id).Scan(&found)
	return found, err
}

func (m *BlogModel) deleteLike(ctx context.Context, userID, blogID int) (bool, error) {
	res, err := m.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1 AND blog_id = $2`, userID, blogID)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// insertLike tolerates a concurrent duplicate: losing the race to
// another insert for the same (user, blog) pair still counts as liked.
func (m *BlogModel) insertLike(ctx context.Context, userID, blogID int) error {
	query := `
		INSERT INTO likes (user_id, blog_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, blog_id) DO NOTHING`

	_, err := m.db.ExecContext(ctx, query, userID, blogID)
	return err
}

func (m *BlogModel) insertComment(ctx context.Context, content string, userID, blogID int) (int, error) {
	query := `
		INSERT INTO comments (content, user_id, blog_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := m.db.QueryRowContext(ctx, query, content, userID, blogID).Scan(&id)
	return id, err
}

func (m *BlogModel) getCommentByID(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT c.id, c.content, c.user_id, c.blog_id, c.created_at, c.updated_at, u.username, u.full_name
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.id = $1`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt, &c.Username, &c.FullName)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *BlogModel) countComments(ctx context.Context, blogID int) (int, error) {
	var total int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE blog_id = $1`, blogID).Scan(&total)
	return total, err
}

func (m *BlogModel) getComments(ctx context.Context, blogID, limit, offset int) ([]Comment, error) {
	query := `
		SELECT c.id, c.content, c.user_id, c.blog_id, c.created_at, c.updated_at, u.username, u.full_name
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.blog_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, blogID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt, &c.Username, &c.FullName)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
