package models

// Grupo documents carry a required nombreGrupo plus an integrantes list of
// plain user id strings. The list has set semantics: the membership endpoint
// adds with $addToSet and nothing ever removes entries.

// MembershipRequest is the body of POST /grupos/{idGrupo}/agregar-usuario.
// IDUsuario is stored as given; it is not checked against the usuarios
// collection.
type MembershipRequest struct {
	IDUsuario string `json:"idUsuario" validate:"required"`
}
