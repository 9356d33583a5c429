// Package service contains the application use cases that span more than one
// collaborator. Signup and login coordinate the credential store, the
// password hasher and the token service; the resource handlers talk to their
// stores directly.
package service
