// Package http implements the HTTP transport layer of the application.
// It provides the chi router, middleware, and route handlers for the REST
// API. Authentication, tracing, and request logging are all handled at this
// layer before requests are forwarded to the service layer.
package http
