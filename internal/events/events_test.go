package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopNotifier(t *testing.T) {
	n := &NoopNotifier{}
	assert.NoError(t, n.Notify(EventPayload{Recurso: "usuario", Accion: "crear", ID: "abc"}))
	n.Close()
}

func TestEventPayloadWireKeys(t *testing.T) {
	// Downstream consumers key on these names.
	buf, err := json.Marshal(EventPayload{Recurso: "grupo", Accion: "eliminar", ID: "abc"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"recurso":"grupo","accion":"eliminar","id":"abc"}`, string(buf))
}
