package store

// Source is a cited page returned alongside an answer
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Image is a candidate image extracted during scraping
type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	FullURL string `json:"fullUrl"`
}

// Classification is the result of routing a query to a website section
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	BaseURL    string  `json:"baseUrl"`
}

// URLStatus records the per-URL outcome of a scrape batch
type URLStatus struct {
	URL        string `json:"url"`
	Status     string `json:"status"` // "success" | "error"
	StatusCode int    `json:"statusCode,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TokenUsage holds input/output token counts for one LLM exchange
type TokenUsage struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}

// LLMDetails is the telemetry attached to every generated answer.
// It is populated on fallback and error paths too, with zeroed tokens.
type LLMDetails struct {
	Model          string     `json:"model"`
	Tokens         TokenUsage `json:"tokens"`
	ProcessingTime float64    `json:"processingTimeSeconds"`
}

// Sentinel source URLs. These are recognized markers, not real links;
// clients filter them out of source display.
const (
	SentinelNoInformation = "No relevant information found"
	SentinelError         = "Error processing request"
)
