package dto

type EmotionPredictionResponse struct {
	Emotions      map[string]float64 `json:"emotions"`
	MaxEmotion    string             `json:"max_emotion"`
	MaxPercentage float64            `json:"max_percentage"`
}
