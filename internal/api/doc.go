// Package api handles incoming HTTP requests for users, categories, clients
// and transactions. Each route is an explicit pipeline of stages (validate,
// authenticate) ending in a handler that talks to the store interfaces and
// returns a {status, data} envelope.
package api
