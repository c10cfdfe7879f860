package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/apiflux/blogapi/internal/blogservice"
)

// render executes a cached page template into a buffer first so a
// template error never leaves a half-written page behind.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templates[page]
	if !ok {
		app.serverErrorPage(w, r, fmt.Errorf("the template %s does not exist", page))
		return
	}

	buf := new(bytes.Buffer)

	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (app *application) serverErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) homePage(w http.ResponseWriter, r *http.Request) {
	blogs, pagination, err := app.blogService.GetPublishedBlogs(r.Context(), 1, 5, nil)
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "home.html", templateData{Blogs: blogs, Pagination: pagination})
}

func (app *application) blogListPage(w http.ResponseWriter, r *http.Request) {
	page, limit := app.readPageLimitParams(r)

	blogs, pagination, err := app.blogService.GetPublishedBlogs(r.Context(), page, limit, nil)
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "blogs.html", templateData{Blogs: blogs, Pagination: pagination})
}

// blogDetailPage renders the published view of a post. Drafts are only
// reachable through the JSON API with an access token, so the page uses
// the anonymous projection.
func (app *application) blogDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id, nil)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			http.Redirect(w, r, "/error", http.StatusSeeOther)
		default:
			app.serverErrorPage(w, r, err)
		}
		return
	}

	page, limit := app.readPageLimitParams(r)

	comments, pagination, err := app.blogService.GetComments(r.Context(), id, page, limit)
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "blog.html", templateData{Blog: blog, Comments: comments, Pagination: pagination})
}

func (app *application) loginPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "login.html", templateData{})
}

func (app *application) registerPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "register.html", templateData{})
}

func (app *application) dashboardPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "dashboard.html", templateData{})
}

func (app *application) createBlogPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "create-blog.html", templateData{})
}

func (app *application) editBlogPage(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}

	app.render(w, r, http.StatusOK, "edit-blog.html", templateData{BlogID: id})
}

func (app *application) errorPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "error.html", templateData{})
}
