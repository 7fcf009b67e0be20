package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.jwtAuth)

	mux := pat.New()

	// User items
	mux.Get("/user-items", authMiddleware.ThenFunc(app.itemHandler.ListUserItems))
	mux.Post("/user-items", authMiddleware.ThenFunc(app.itemHandler.CreateUserItem))
	mux.Get("/user-items/:id", authMiddleware.ThenFunc(app.itemHandler.GetUserItemByID))
	mux.Put("/user-items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateUserItem))
	mux.Del("/user-items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteUserItem))

	// Comments
	mux.Get("/comments", standardMiddleware.ThenFunc(app.commentHandler.ListComments))
	mux.Post("/comments", authMiddleware.ThenFunc(app.commentHandler.CreateComment))
	mux.Put("/comments/:id", authMiddleware.ThenFunc(app.commentHandler.UpdateComment))
	mux.Del("/comments/:id", authMiddleware.ThenFunc(app.commentHandler.DeleteComment))

	// Upstream item catalog
	mux.Get("/items", standardMiddleware.ThenFunc(app.proxyHandler.ListItems))
	mux.Post("/items", standardMiddleware.ThenFunc(app.proxyHandler.SearchItems))

	// Uploads
	mux.Post("/upload", authMiddleware.ThenFunc(app.uploadHandler.UploadImage))

	return standardMiddleware.Then(mux)
}
