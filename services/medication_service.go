package services

import (
	"MedzenGo/models"
	"MedzenGo/storage"
	"MedzenGo/utils"
)

// MedicationService 用药记录的增删改查
type MedicationService struct {
	store storage.Store
}

func NewMedicationService(store storage.Store) *MedicationService {
	return &MedicationService{store: store}
}

func (s *MedicationService) Medications() []models.Medication {
	var medications []models.Medication
	if !load(s.store, medicationsKey, &medications) {
		return []models.Medication{}
	}
	return medications
}

func (s *MedicationService) AddMedication(req models.MedicationRequest) (*models.Medication, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	medication := models.Medication{
		ID:        utils.GenerateID(),
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	medications := s.Medications()
	medications = append(medications, medication)
	save(s.store, medicationsKey, medications)
	return &medication, nil
}

// UpdateMedication id不存在时返回nil且无错误
func (s *MedicationService) UpdateMedication(id string, req models.MedicationRequest) (*models.Medication, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	medications := s.Medications()
	for i := range medications {
		if medications[i].ID != id {
			continue
		}
		medications[i].Name = req.Name
		medications[i].Dosage = req.Dosage
		medications[i].Frequency = req.Frequency
		medications[i].StartDate = req.StartDate
		medications[i].EndDate = req.EndDate
		save(s.store, medicationsKey, medications)
		return &medications[i], nil
	}
	return nil, nil
}

func (s *MedicationService) DeleteMedication(id string) bool {
	medications := s.Medications()
	remaining := medications[:0]
	for _, m := range medications {
		if m.ID != id {
			remaining = append(remaining, m)
		}
	}
	if len(remaining) == len(medications) {
		return false
	}
	save(s.store, medicationsKey, remaining)
	return true
}
