// File: services/chat/gemini.go
package chat

import (
	"context"
	"fmt"
	"strings"

	"clinicdesk/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxToolRounds caps tool-call round trips within one chat turn.
const maxToolRounds = 4

// ToolHandler executes one function call from the model and returns the
// payload sent back as the function response.
type ToolHandler func(ctx context.Context, name string, args map[string]any) map[string]any

// GeminiAssistant drives the receptionist conversation, including the
// fixed tool-call protocol for slots and bookings.
type GeminiAssistant struct {
	client    *genai.Client
	modelName string
}

func NewGeminiAssistant(apiKey string) *GeminiAssistant {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}
	return &GeminiAssistant{client: client, modelName: "models/gemini-1.5-pro"}
}

// Converse sends the user input with the prior transcript and resolves any
// tool calls the model makes before returning its final text.
func (g *GeminiAssistant) Converse(ctx context.Context, systemPrompt string, history []models.ChatMessage, userInput string, handle ToolHandler) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0.1)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = []*genai.Tool{receptionTools()}

	cs := model.StartChat()
	cs.History = toGenaiHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(userInput))
	if err != nil {
		return "", fmt.Errorf("gemini send error: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		var replies []genai.Part
		for _, fc := range calls {
			replies = append(replies, genai.FunctionResponse{
				Name:     fc.Name,
				Response: handle(ctx, fc.Name, fc.Args),
			})
		}
		resp, err = cs.SendMessage(ctx, replies...)
		if err != nil {
			return "", fmt.Errorf("gemini tool response error: %w", err)
		}
	}

	return responseText(resp), nil
}

// receptionTools declares the two engine operations exposed to the model.
func receptionTools() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "available_slots",
				Description: "Get available appointment slots for a specific service (automatically finds the right practitioner)",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"service": {
							Type:        genai.TypeString,
							Description: "The specific service/treatment requested (e.g. 'Hydrafacial', 'Braces', 'Botox')",
						},
						"date": {
							Type:        genai.TypeString,
							Description: "Date in YYYY-MM-DD format, or 'today'/'tomorrow'",
						},
					},
					Required: []string{"service", "date"},
				},
			},
			{
				Name:        "book_appointment",
				Description: "Book a confirmed appointment for a patient (automatically finds the right practitioner for the service)",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"service": {
							Type:        genai.TypeString,
							Description: "The specific service/treatment being booked",
						},
						"patient_name": {
							Type:        genai.TypeString,
							Description: "Full name of the patient",
						},
						"slot": {
							Type:        genai.TypeString,
							Description: "The selected time slot in format 'YYYY-MM-DD HH:MM AM/PM'",
						},
						"patient_phone": {
							Type:        genai.TypeString,
							Description: "Patient's phone number (optional but recommended)",
						},
					},
					Required: []string{"service", "patient_name", "slot"},
				},
			},
		},
	}
}

func toGenaiHistory(history []models.ChatMessage) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		// Tool records are kept for auditing, not replayed to the model.
		var role string
		switch msg.Role {
		case models.RoleUser:
			role = "user"
		case models.RoleAssistant:
			role = "model"
		default:
			continue
		}
		if msg.Content == "" {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if fc, ok := part.(genai.FunctionCall); ok {
				calls = append(calls, fc)
			}
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
