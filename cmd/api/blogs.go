package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/apiflux/blogapi/internal/blogservice"
	"github.com/apiflux/blogapi/internal/common"
)

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string  `json:"title"`
		Content     string  `json:"content"`
		Excerpt     *string `json:"excerpt"`
		IsPublished *bool   `json:"is_published"`
	}

	if err := app.parseJSON(w, r, &input); err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	identity := app.getIdentity(r)

	blog, err := app.blogService.CreateBlog(r.Context(), &blogservice.CreateBlogRequest{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		IsPublished: input.IsPublished,
		AuthorID:    identity.UserID,
	})
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "blog created successfully",
		"data":    blog,
	}

	if err := app.writeJSON(w, http.StatusCreated, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := app.readPageLimitParams(r)

	blogs, pagination, err := app.blogService.GetPublishedBlogs(r.Context(), page, limit, app.viewerID(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	env := envelope{
		"success":    true,
		"data":       blogs,
		"pagination": pagination,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// getBlogHandler also serves GET /blogs/my: httprouter cannot register
// a static sibling of the :id wildcard, so the literal segment is
// dispatched here.
func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	if params.ByName("id") == "my" {
		app.requireAuth(app.myBlogsHandler)(w, r)
		return
	}

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id, app.viewerID(r))
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, "blog not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"data":    blog,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) myBlogsHandler(w http.ResponseWriter, r *http.Request) {
	identity := app.getIdentity(r)
	page, limit := app.readPageLimitParams(r)

	blogs, pagination, err := app.blogService.GetBlogsByAuthor(r.Context(), identity.UserID, page, limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	env := envelope{
		"success":    true,
		"data":       blogs,
		"pagination": pagination,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Content     *string `json:"content"`
		Excerpt     *string `json:"excerpt"`
		IsPublished *bool   `json:"is_published"`
	}

	if err := app.parseJSON(w, r, &input); err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	identity := app.getIdentity(r)

	blog, err := app.blogService.UpdateBlog(r.Context(), id, identity.UserID, &blogservice.UpdateBlogRequest{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		IsPublished: input.IsPublished,
	})
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, blogservice.ErrNoFieldsToUpdate):
			app.badRequestErrorResponse(w, r, err)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, "blog not found or you are not authorized to update it")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "blog updated successfully",
		"data":    blog,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	identity := app.getIdentity(r)

	if err := app.blogService.DeleteBlog(r.Context(), id, identity.UserID); err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, "blog not found or you are not authorized to delete it")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "blog deleted successfully",
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) toggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	identity := app.getIdentity(r)

	liked, err := app.blogService.ToggleLike(r.Context(), id, identity.UserID)
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, "blog not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	message := "blog unliked successfully"
	if liked {
		message = "blog liked successfully"
	}

	env := envelope{
		"success": true,
		"message": message,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input struct {
		Content string `json:"content"`
	}

	if err := app.parseJSON(w, r, &input); err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	identity := app.getIdentity(r)

	comment, err := app.blogService.AddComment(r.Context(), id, identity.UserID, input.Content)
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, "blog not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "comment added successfully",
		"data":    comment,
	}

	if err := app.writeJSON(w, http.StatusCreated, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	page, limit := app.readPageLimitParams(r)

	comments, pagination, err := app.blogService.GetComments(r.Context(), id, page, limit)
	if err != nil {
		var ve common.ValidationError
		switch {
		case errors.As(err, &ve):
			app.failedValidationErrorResponse(w, r, ve)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r, "blog not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success":    true,
		"data":       comments,
		"pagination": pagination,
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
