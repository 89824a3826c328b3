package receipt

import (
	"Finora-Backend/domain"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type (
	// Extractor turns a stored receipt file into structured fields. Implemented
	// by the vision-model client; replaced by a fake in tests.
	Extractor interface {
		ExtractReceiptData(ctx context.Context, fileURL string) (domain.ExtractedReceiptData, error)
	}

	openAIExtractor struct {
		client *openai.Client
		model  string
	}
)

func NewExtractor(apiKey, baseURL, model string) Extractor {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &openAIExtractor{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

const extractionPrompt = `You are reading an Australian purchase receipt (tax invoice).
Respond ONLY with a valid JSON object containing exactly these fields:
'merchant_name' (string), 'business_number' (string, the 11-digit ABN if printed),
'date' (string in YYYY-MM-DD format; receipts print dates as DD/MM/YYYY),
'total_amount' (number, the GST-inclusive total in AUD),
'tax_amount' (number, the GST; by convention 1/11th of the total),
'line_items' (array of {description, quantity, unit_price, line_total}),
'payment_method' (string), 'receipt_number' (string), 'address' (string),
'confidence' (number between 0 and 1).
Omit fields you cannot read. Do not include explanations, markdown formatting, or extra text.`

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

type rawExtraction struct {
	MerchantName   string                   `json:"merchant_name"`
	BusinessNumber string                   `json:"business_number"`
	Date           string                   `json:"date"`
	TotalAmount    *float64                 `json:"total_amount"`
	TaxAmount      *float64                 `json:"tax_amount"`
	LineItems      []domain.ReceiptLineItem `json:"line_items"`
	PaymentMethod  string                   `json:"payment_method"`
	ReceiptNumber  string                   `json:"receipt_number"`
	Address        string                   `json:"address"`
	Confidence     float64                  `json:"confidence"`
}

func (e *openAIExtractor) ExtractReceiptData(ctx context.Context, fileURL string) (domain.ExtractedReceiptData, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.1,
		MaxTokens:   1200,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: extractionPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    fileURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return domain.ExtractedReceiptData{}, err
	}

	if len(resp.Choices) == 0 {
		return domain.ExtractedReceiptData{}, domain.ErrExtractionFailed
	}

	return parseExtractionResponse(resp.Choices[0].Message.Content)
}

func parseExtractionResponse(responseText string) (domain.ExtractedReceiptData, error) {
	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	if matches := jsonObjectPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	var raw rawExtraction
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return domain.ExtractedReceiptData{}, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	data := domain.ExtractedReceiptData{
		MerchantName:   strings.TrimSpace(raw.MerchantName),
		BusinessNumber: strings.TrimSpace(raw.BusinessNumber),
		TotalAmount:    raw.TotalAmount,
		TaxAmount:      raw.TaxAmount,
		LineItems:      raw.LineItems,
		PaymentMethod:  raw.PaymentMethod,
		ReceiptNumber:  raw.ReceiptNumber,
		Address:        raw.Address,
		Confidence:     raw.Confidence,
	}

	if raw.Date != "" {
		if date, err := parseReceiptDate(raw.Date); err == nil {
			data.Date = &date
		}
	}

	if data.Confidence < 0 {
		data.Confidence = 0
	}
	if data.Confidence > 1 {
		data.Confidence = 1
	}

	return data, nil
}

func parseReceiptDate(value string) (time.Time, error) {
	formats := []string{"2006-01-02", "02/01/2006", "02-01-2006"}
	var err error
	var date time.Time
	for _, format := range formats {
		date, err = time.Parse(format, value)
		if err == nil {
			return date, nil
		}
	}
	return time.Time{}, err
}
