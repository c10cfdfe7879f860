package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/health", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/auth/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/auth/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodGet, "/auth/me", app.requireAuth(app.currentUserHandler))

	router.HandlerFunc(http.MethodGet, "/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/blogs", app.requireAuth(app.createBlogHandler))
	// GET /blogs/my shares the wildcard with GET /blogs/:id; the handler
	// dispatches on the literal segment.
	router.HandlerFunc(http.MethodGet, "/blogs/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodPut, "/blogs/:id", app.requireAuth(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/blogs/:id", app.requireAuth(app.deleteBlogHandler))

	router.HandlerFunc(http.MethodPost, "/blogs/:id/like", app.requireAuth(app.toggleLikeHandler))
	router.HandlerFunc(http.MethodGet, "/blogs/:id/comments", app.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/blogs/:id/comments", app.requireAuth(app.addCommentHandler))

	router.HandlerFunc(http.MethodGet, "/", app.homePage)
	router.HandlerFunc(http.MethodGet, "/login", app.loginPage)
	router.HandlerFunc(http.MethodGet, "/register", app.registerPage)
	router.HandlerFunc(http.MethodGet, "/blog", app.blogListPage)
	router.HandlerFunc(http.MethodGet, "/blog/:id", app.blogDetailPage)
	router.HandlerFunc(http.MethodGet, "/dashboard", app.dashboardPage)
	router.HandlerFunc(http.MethodGet, "/create-blog", app.createBlogPage)
	router.HandlerFunc(http.MethodGet, "/edit-blog/:id", app.editBlogPage)
	router.HandlerFunc(http.MethodGet, "/error", app.errorPage)

	return app.recoverPanic(app.rateLimit(app.logRequest(app.authenticate(router))))
}
