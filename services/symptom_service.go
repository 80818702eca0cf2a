package services

import (
	"time"

	"MedzenGo/models"
	"MedzenGo/storage"
	"MedzenGo/utils"
)

// SymptomService 症状记录的增删改查
type SymptomService struct {
	store storage.Store
	now   func() time.Time
}

func NewSymptomService(store storage.Store, now func() time.Time) *SymptomService {
	if now == nil {
		now = time.Now
	}
	return &SymptomService{store: store, now: now}
}

func (s *SymptomService) Symptoms() []models.Symptom {
	var symptoms []models.Symptom
	if !load(s.store, symptomsKey, &symptoms) {
		return []models.Symptom{}
	}
	return symptoms
}

func (s *SymptomService) AddSymptom(req models.SymptomRequest) (*models.Symptom, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date := req.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	symptom := models.Symptom{
		ID:        utils.GenerateID(),
		Name:      req.Name,
		Severity:  req.Severity,
		Notes:     req.Notes,
		Date:      date,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	symptoms := s.Symptoms()
	symptoms = append(symptoms, symptom)
	save(s.store, symptomsKey, symptoms)
	return &symptom, nil
}

// UpdateSymptom id不存在时返回nil且无错误
func (s *SymptomService) UpdateSymptom(id string, req models.SymptomRequest) (*models.Symptom, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	symptoms := s.Symptoms()
	for i := range symptoms {
		if symptoms[i].ID != id {
			continue
		}
		symptoms[i].Name = req.Name
		symptoms[i].Severity = req.Severity
		symptoms[i].Notes = req.Notes
		if req.Date != "" {
			symptoms[i].Date = req.Date
		}
		save(s.store, symptomsKey, symptoms)
		return &symptoms[i], nil
	}
	return nil, nil
}

func (s *SymptomService) DeleteSymptom(id string) bool {
	symptoms := s.Symptoms()
	remaining := symptoms[:0]
	for _, sym := range symptoms {
		if sym.ID != id {
			remaining = append(remaining, sym)
		}
	}
	if len(remaining) == len(symptoms) {
		return false
	}
	save(s.store, symptomsKey, remaining)
	return true
}
