// Package ai contiene el adaptador del puerto LLMService sobre la API REST de
// Anthropic (Claude).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `You are a financial analyst for a real estate brokerage.
You receive the figures of a monthly income statement and must produce a short
executive analysis in plain prose (no markdown, no bullet lists, no headings):
2 to 4 paragraphs covering revenue drivers, the weight of commissions and
property transaction costs, and whether the period closed at a profit or loss.
Mention concrete amounts from the data. Do not invent figures.`
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateReportNarrative envía las cifras del estado de resultados a Claude y
// devuelve el análisis en prosa.
func (s *AnthropicService) GenerateReportNarrative(
	ctx context.Context,
	report *dto.FinancialReportDTO,
	periodLabel string,
) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: reportDigest(report, periodLabel)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	narrative := strings.TrimSpace(anthResp.Content[0].Text)
	if narrative == "" {
		return "", fmt.Errorf("AI: Claude devolvió texto vacío")
	}
	return narrative, nil
}

// reportDigest serializa las cifras relevantes del reporte en texto plano para
// el prompt, sin depender de la forma JSON de los DTOs.
func reportDigest(r *dto.FinancialReportDTO, periodLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Income statement for %s\n\n", periodLabel)
	fmt.Fprintf(&b, "Income:\n")
	fmt.Fprintf(&b, "  Sales revenue: %s\n", r.Income.SalesRevenue)
	fmt.Fprintf(&b, "  Service revenue (3%% brokerage fee): %s\n", r.Income.ServiceRevenue)
	fmt.Fprintf(&b, "  Interest income: %s\n", r.Income.InterestIncome)
	fmt.Fprintf(&b, "  Other income: %s\n", r.Income.OtherIncome)
	fmt.Fprintf(&b, "  Total income: %s\n", r.Income.TotalIncome)
	fmt.Fprintf(&b, "  Properties sold: %d\n", len(r.Income.Details.SoldProducts))
	for _, s := range r.Income.Details.SoldProducts {
		fmt.Fprintf(&b, "    - %s at %s\n", s.Title, s.Price)
	}
	fmt.Fprintf(&b, "\nExpenses:\n")
	fmt.Fprintf(&b, "  Salaries and wages (base + commissions): %s\n", r.Expenses.SalariesWages)
	for _, c := range r.Expenses.Details.Commissions {
		fmt.Fprintf(&b, "    - commission %s: %s (%d points)\n", c.Name, c.Amount, c.Points)
	}
	fmt.Fprintf(&b, "  Property transaction costs: %s\n", r.Expenses.PropertyTransactionCosts)
	fmt.Fprintf(&b, "  Rent: %s\n", r.Expenses.Rent)
	fmt.Fprintf(&b, "  Utilities: %s\n", r.Expenses.Utilities)
	fmt.Fprintf(&b, "  Marketing: %s\n", r.Expenses.MarketingAdvertising)
	fmt.Fprintf(&b, "  Taxes: %s\n", r.Expenses.Taxes)
	fmt.Fprintf(&b, "  Total expenses: %s\n", r.Expenses.TotalExpenses)
	fmt.Fprintf(&b, "\nNet profit/loss: %s\n", r.NetProfitLoss)
	return b.String()
}
