package models

// Usuario documents are schema-less: clients may attach any extra fields and
// they are stored verbatim, so documents travel as bson.M rather than a
// struct. Only the fields below are mandatory, and only at creation time.
var UsuarioRequiredFields = []string{"nombre", "apellido", "telefono", "edad"}
