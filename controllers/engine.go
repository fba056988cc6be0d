package controllers

import "github.com/agendafacil/backend/scheduler"

var engine *scheduler.Engine

// Init wires the scheduling engine the booking handlers delegate to. Called
// once from main after the database connection is established.
func Init(e *scheduler.Engine) {
	engine = e
}
