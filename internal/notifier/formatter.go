package notifier

import (
	"fmt"
	"strings"

	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/dashboard"
)

// HelpText lists the chat commands.
const HelpText = "Available commands:\n• /price - live gold price\n• /prediction - next-day prediction\n• /rate - USD/LKR exchange rate"

// unavailable returns the status message for a view that cannot be reported.
func unavailable(v dashboard.View) (string, bool) {
	switch v.Status {
	case dashboard.StatusOK:
		return "", false
	case dashboard.StatusLoading:
		return "⏳ Data is still loading, try again shortly.", true
	default:
		return "⚠️ " + v.Message, true
	}
}

// FormatPriceReport formats the live price in both units.
func FormatPriceReport(usd, lkr dashboard.View) string {
	if msg, ok := unavailable(usd); ok {
		return msg
	}
	var b strings.Builder
	b.WriteString("🪙 <b>Gold Price</b>\n\n")
	b.WriteString(fmt.Sprintf("Live: %s | %s\n", usd.LivePrice.DisplayText, lkr.LivePrice.DisplayText))
	if usd.ExpectedChange != nil {
		b.WriteString(fmt.Sprintf("Next day: %s\n", usd.ExpectedChange.Text))
	}
	if st := usd.Stats; st != nil {
		if st.RSI14 != nil {
			b.WriteString(fmt.Sprintf("RSI(14): %.1f\n", *st.RSI14))
		}
		b.WriteString(fmt.Sprintf("30d range: %s - %s\n",
			converter.FormatUSD(st.Low30d), converter.FormatUSD(st.High30d)))
	}
	if usd.UpdatedAgo != "" {
		b.WriteString(fmt.Sprintf("Updated %s\n", usd.UpdatedAgo))
	}
	return b.String()
}

// FormatPrediction formats the next-day prediction with model accuracy.
func FormatPrediction(usd, lkr dashboard.View) string {
	if msg, ok := unavailable(usd); ok {
		return msg
	}
	if usd.Prediction == nil {
		return "No prediction available yet."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔮 <b>Prediction for %s</b>\n\n", usd.PredictionDate))
	b.WriteString(fmt.Sprintf("Price: %s | %s\n", usd.Prediction.DisplayText, lkr.Prediction.DisplayText))
	b.WriteString(fmt.Sprintf("Expected change: %s | %s\n", usd.ExpectedChange.Text, lkr.ExpectedChange.Text))
	b.WriteString(fmt.Sprintf("Method: %s\n", usd.Method))
	if a := usd.Accuracy; a != nil {
		b.WriteString(fmt.Sprintf("\n📐 R²: %s (%s)\n", a.R2Text, a.Rating))
		b.WriteString(fmt.Sprintf("Predictions: %d total, %d evaluated, %d pending\n", a.Total, a.Evaluated, a.Pending))
	}
	if e := usd.Explanation; e != nil && e.OverallSentiment != "" {
		b.WriteString(fmt.Sprintf("Sentiment: %s\n", e.OverallSentiment))
	}
	return b.String()
}

// FormatRate formats the exchange rate used for Pawn prices.
func FormatRate(v dashboard.View) string {
	text := fmt.Sprintf("💱 USD/LKR: %s", converter.Fixed(v.ExchangeRate, 2))
	if v.RateFallback {
		text += " (fallback)"
	}
	return text
}

// FormatPredictionAlert announces a prediction for a new day.
func FormatPredictionAlert(usd, lkr dashboard.View) string {
	if usd.Prediction == nil {
		return ""
	}
	return fmt.Sprintf("🔔 <b>New gold prediction</b> | %s\n\n%s | %s\n%s",
		usd.PredictionDate,
		usd.Prediction.DisplayText, lkr.Prediction.DisplayText,
		usd.ExpectedChange.Text)
}
