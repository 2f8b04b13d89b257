package domain

import "errors"

// Errores sentinela del core. Cualquier otro fallo se envuelve con %w y
// se reporta al caller tal cual; nada se reintenta.
var (
	// ErrNoJSON: la respuesta del modelo no contenia un objeto JSON
	// extraible o el substring no parseo. Unico modo de fallo del parser.
	ErrNoJSON = errors.New("model reply did not contain valid JSON")

	// ErrMissingRubric: el style id pedido no tiene rubric registrado.
	ErrMissingRubric = errors.New("no rubric for requested style")

	// ErrMissingImage: falta la captura requerida para el rating.
	ErrMissingImage = errors.New("missing capture image")

	// ErrMissingStyle: falta el style id objetivo.
	ErrMissingStyle = errors.New("missing target style")
)
