package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
)

// AssistService wraps the generative-text API behind three narrow
// request/response operations. Responses are validated for shape only;
// the model is treated as a non-deterministic oracle and nothing is
// retried or cached.
type AssistService interface {
	// VehicleInfo looks up fictional registration details for a vehicle
	// number.
	VehicleInfo(ctx context.Context, vehicleNumber string) (*models.VehicleInfo, error)
	// SuggestOffenses matches a free-text incident description against
	// the offense catalog and returns the applicable subset. Callers
	// replace their current selection with the result; they do not merge.
	SuggestOffenses(ctx context.Context, description string, catalog []models.Offense) ([]models.Offense, error)
	// SearchRules answers a free-text traffic-rule query.
	SearchRules(ctx context.Context, query string) (string, error)
}

type assistService struct {
	client *genai.Client
	model  string
	logger *log.Logger
}

// NewAssistService creates the Gemini-backed assist service.
func NewAssistService(ctx context.Context, apiKey, model string) (AssistService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &assistService{
		client: client,
		model:  model,
		logger: log.New(os.Stdout, "[ASSIST] ", log.LstdFlags|log.Lmsgprefix),
	}, nil
}

func (s *assistService) VehicleInfo(ctx context.Context, vehicleNumber string) (*models.VehicleInfo, error) {
	prompt := fmt.Sprintf("You are a vehicle registration database API. Given the vehicle number '%s', "+
		"return a JSON object with the following details: ownerName, registrationDate (DD-MM-YYYY), "+
		"vehicleModel, insuranceStatus ('Active' or 'Expired'), pucStatus ('Active' or 'Expired'). "+
		"Provide realistic but fictional data.", vehicleNumber)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ownerName":        {Type: genai.TypeString},
				"registrationDate": {Type: genai.TypeString},
				"vehicleModel":     {Type: genai.TypeString},
				"insuranceStatus":  {Type: genai.TypeString, Enum: []string{"Active", "Expired"}},
				"pucStatus":        {Type: genai.TypeString, Enum: []string{"Active", "Expired"}},
			},
			Required: []string{"ownerName", "registrationDate", "vehicleModel", "insuranceStatus", "pucStatus"},
		},
	})
	if err != nil {
		s.logger.Printf("vehicle lookup failed for %s: %v", vehicleNumber, err)
		return nil, err
	}

	var info models.VehicleInfo
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &info); err != nil {
		s.logger.Printf("vehicle lookup returned malformed JSON: %v", err)
		return nil, err
	}
	if err := validateVehicleInfo(&info); err != nil {
		s.logger.Printf("vehicle lookup returned bad shape: %v", err)
		return nil, err
	}
	return &info, nil
}

func (s *assistService) SuggestOffenses(ctx context.Context, description string, catalog []models.Offense) ([]models.Offense, error) {
	names := make([]string, len(catalog))
	for i, o := range catalog {
		names[i] = o.Name
	}

	prompt := fmt.Sprintf("As an expert traffic law assistant, analyze the following situation and list "+
		"the applicable traffic offenses from the provided list. Situation: '%s'. List of offenses: %s. "+
		"Return a JSON array of strings, where each string is the exact name of an offense from the list.",
		description, strings.Join(names, "; "))

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		s.logger.Printf("offense suggestion failed: %v", err)
		return nil, err
	}

	var suggested []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &suggested); err != nil {
		s.logger.Printf("offense suggestion returned malformed JSON: %v", err)
		return nil, err
	}

	// Keep only exact catalog names so the result is always a subset of
	// the input, whatever the model dreamed up.
	wanted := make(map[string]bool, len(suggested))
	for _, name := range suggested {
		wanted[name] = true
	}
	matched := make([]models.Offense, 0, len(suggested))
	for _, o := range catalog {
		if wanted[o.Name] {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s *assistService) SearchRules(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf("You are a search engine for the Indian Motor Vehicles Act. Answer the user's "+
		"query about traffic rules clearly and concisely. Explain the rule and mention the penalty if "+
		"applicable. Query: '%s'", query)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.logger.Printf("rule search failed: %v", err)
		return "", err
	}
	return resp.Text(), nil
}

func validateVehicleInfo(info *models.VehicleInfo) error {
	if info.OwnerName == "" || info.RegistrationDate == "" || info.VehicleModel == "" {
		return fmt.Errorf("missing required fields")
	}
	for _, status := range []string{info.InsuranceStatus, info.PUCStatus} {
		if status != "Active" && status != "Expired" {
			return fmt.Errorf("unexpected status %q", status)
		}
	}
	return nil
}
