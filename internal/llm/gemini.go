package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implementa VisionClient y TryOnClient contra la API de Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient construye el cliente con API key y nombre de modelo.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Close libera la conexion subyacente.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Generate produce texto a partir de un prompt plano.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return joinTextParts(resp)
}

// GenerateVisionRating envia prompt + captura jpeg y devuelve el texto crudo.
func (c *GeminiClient) GenerateVisionRating(ctx context.Context, prompt, imageBase64 string) (string, error) {
	imageBytes, err := decodeImage(imageBase64)
	if err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData("jpeg", imageBytes),
	)
	if err != nil {
		return "", fmt.Errorf("gemini vision rating: %w", err)
	}
	return joinTextParts(resp)
}

// GenerateTryOn pide una imagen generada de la persona con la prenda puesta.
// Falla si el modelo solo devuelve texto.
func (c *GeminiClient) GenerateTryOn(ctx context.Context, prompt, bodyBase64, clothingBase64 string) (string, string, error) {
	bodyBytes, err := decodeImage(bodyBase64)
	if err != nil {
		return "", "", err
	}
	clothingBytes, err := decodeImage(clothingBase64)
	if err != nil {
		return "", "", err
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData("jpeg", bodyBytes),
		genai.ImageData("jpeg", clothingBytes),
	)
	if err != nil {
		return "", "", fmt.Errorf("gemini try-on: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", "", fmt.Errorf("gemini try-on: no response candidates")
	}

	var image, description string
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Blob:
			if image == "" {
				image = base64.StdEncoding.EncodeToString(p.Data)
			}
		case genai.Text:
			description += string(p)
		}
	}

	if image == "" {
		return "", "", fmt.Errorf("gemini try-on: model returned text but no image")
	}
	return image, strings.TrimSpace(description), nil
}

// joinTextParts concatena las partes de texto del primer candidato.
func joinTextParts(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("gemini: empty model response")
	}
	return text, nil
}

// decodeImage acepta base64 pelado o data URLs (data:image/jpeg;base64,...).
func decodeImage(imageBase64 string) ([]byte, error) {
	payload := imageBase64
	if idx := strings.IndexByte(payload, ','); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode image base64: %w", err)
	}
	return data, nil
}
