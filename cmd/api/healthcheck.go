package main

import (
	"net/http"
	"time"
)

func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	status := "available"

	if err := app.db.PingContext(r.Context()); err != nil {
		app.logError(r, err)
		database = "unreachable"
		status = "degraded"
	}

	env := envelope{
		"status": status,
		"system_info": envelope{
			"environment": app.config.Environment,
			"uptime":      time.Since(app.started).Round(time.Second).String(),
			"database":    database,
		},
	}

	if err := app.writeJSON(w, http.StatusOK, env, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
