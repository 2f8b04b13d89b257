package llm

import "context"

// VisionClient define la capacidad de vision que consume el engine: recibe
// un prompt mas una imagen y devuelve texto libre. El engine no asume nada
// sobre el formato de la respuesta; el parser es la unica guardia.
type VisionClient interface {
	// Generate produce texto a partir de un prompt plano.
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateVisionRating evalua una captura (jpeg base64) contra el prompt.
	GenerateVisionRating(ctx context.Context, prompt, imageBase64 string) (string, error)
}

// TryOnClient genera una imagen de try-on a partir de una foto del cuerpo
// y una prenda. Devuelve la imagen generada en base64 y una descripcion.
type TryOnClient interface {
	GenerateTryOn(ctx context.Context, prompt, bodyBase64, clothingBase64 string) (imageBase64, description string, err error)
}
