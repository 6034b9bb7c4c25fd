package model

// Impact classifies how a factor moves the price.
type Impact string

const (
	ImpactBullish   Impact = "Bullish"
	ImpactBearish   Impact = "Bearish"
	ImpactNeutral   Impact = "Neutral"
	ImpactUncertain Impact = "Uncertain"
	ImpactStable    Impact = "Stable"
)

// Confidence of a single factor reading.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// PredictionFactor is one market driver behind the forecast.
type PredictionFactor struct {
	Factor         string     `json:"factor"`
	Value          string     `json:"value"`
	Interpretation string     `json:"interpretation"`
	Impact         Impact     `json:"impact"`
	Confidence     Confidence `json:"confidence"`
}

// SentimentSummary counts factors by direction.
type SentimentSummary struct {
	BullishFactors int `json:"bullish_factors"`
	BearishFactors int `json:"bearish_factors"`
	NeutralFactors int `json:"neutral_factors"`
	TotalFactors   int `json:"total_factors"`
}

// PredictionExplanation is the payload of GET /xauusd/explanation.
type PredictionExplanation struct {
	CurrentPrice         float64            `json:"current_price"`
	OverallSentiment     Impact             `json:"overall_sentiment"`
	SentimentExplanation string             `json:"sentiment_explanation"`
	Factors              []PredictionFactor `json:"factors"`
	Summary              SentimentSummary   `json:"summary"`
	Error                string             `json:"error,omitempty"`
}
