package service

import (
	"context"
	"errors"
	"io"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/pkg/emotion"
)

// ErrNoFaceDetected is surfaced to the caller as a client error.
var ErrNoFaceDetected = errors.New("no face detected in image")

type IEmotionService interface {
	Predict(ctx context.Context, filename string, image io.Reader) (*dto.EmotionPredictionResponse, error)
}

type emotionService struct {
	client *emotion.Client
	log    logger.ILogger
}

func NewEmotionService(client *emotion.Client, log logger.ILogger) IEmotionService {
	return &emotionService{
		client: client,
		log:    log,
	}
}

func (s *emotionService) Predict(ctx context.Context, filename string, image io.Reader) (*dto.EmotionPredictionResponse, error) {
	prediction, err := s.client.Predict(ctx, filename, image)
	if err != nil {
		if errors.Is(err, emotion.ErrNoFace) {
			return nil, ErrNoFaceDetected
		}
		s.log.Error("emotion", "inference request failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	return &dto.EmotionPredictionResponse{
		Emotions:      prediction.Emotions,
		MaxEmotion:    prediction.MaxEmotion,
		MaxPercentage: prediction.MaxPercentage,
	}, nil
}
