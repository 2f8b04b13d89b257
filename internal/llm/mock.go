package llm

import "context"

// MockClient permite tests sin llamar al modelo real.
type MockClient struct {
	Response string
	Err      error

	// LastPrompt y LastImage guardan la ultima llamada para asserts.
	LastPrompt string
	LastImage  string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	return m.Response, m.Err
}

func (m *MockClient) GenerateVisionRating(ctx context.Context, prompt, imageBase64 string) (string, error) {
	m.LastPrompt = prompt
	m.LastImage = imageBase64
	return m.Response, m.Err
}

// MockTryOnClient simula la generacion de try-on.
type MockTryOnClient struct {
	Image       string
	Description string
	Err         error
}

func (m *MockTryOnClient) GenerateTryOn(ctx context.Context, prompt, bodyBase64, clothingBase64 string) (string, string, error) {
	return m.Image, m.Description, m.Err
}
