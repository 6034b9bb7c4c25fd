package model

// ConvertedPrice is a price expressed in a display unit. DisplayText is only
// ever produced by the converter's formatting rule.
type ConvertedPrice struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Unit        string  `json:"unit"`
	DisplayText string  `json:"displayText"`
}
