package models

import "guidingpath-service/internal/pkg/dto/responses"

type Slot struct {
	Time   string
	Status string
}

func (s Slot) ConvertIntoResponse() responses.Slot {
	return responses.Slot{
		Time:   s.Time,
		Status: s.Status,
	}
}
