package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

type SoilService interface {
	SubmitSoilData(ctx context.Context, sample models.SoilSample) (*models.SoilData, error)
	SoilData(ctx context.Context, id int64) (*models.SoilData, error)
	UserSoilData(ctx context.Context) ([]models.SoilData, error)
	HealthReport(ctx context.Context, id int64) (*models.SoilHealthReport, error)
	FertilizerRecommendation(ctx context.Context, soilDataID int64, crop string) (*models.FertilizerRecommendation, error)
	ConservationPractices(ctx context.Context, soilDataID int64, topography string) ([]models.SoilConservationPractice, error)
	RegionalSoilTypes(ctx context.Context, state, district string) (*models.RegionalSoilTypes, error)
}

type soilService struct {
	api Requester
}

func NewSoilService(r Requester) SoilService {
	return &soilService{api: r}
}

func (s *soilService) SubmitSoilData(ctx context.Context, sample models.SoilSample) (*models.SoilData, error) {
	var resp models.SoilData
	if err := s.api.Post(ctx, "/soil/data", sample, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *soilService) SoilData(ctx context.Context, id int64) (*models.SoilData, error) {
	var resp models.SoilData
	if err := s.api.Get(ctx, fmt.Sprintf("/soil/data/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *soilService) UserSoilData(ctx context.Context) ([]models.SoilData, error) {
	var resp []models.SoilData
	if err := s.api.Get(ctx, "/soil/data/user", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *soilService) HealthReport(ctx context.Context, id int64) (*models.SoilHealthReport, error) {
	var resp models.SoilHealthReport
	if err := s.api.Get(ctx, fmt.Sprintf("/soil/health-report/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *soilService) FertilizerRecommendation(ctx context.Context, soilDataID int64, crop string) (*models.FertilizerRecommendation, error) {
	q := api.NewQuery().Add("soil_data_id", fmt.Sprint(soilDataID)).Add("crop", crop)

	var resp models.FertilizerRecommendation
	if err := s.api.Get(ctx, q.Path("/soil/fertilizer-recommendation"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *soilService) ConservationPractices(ctx context.Context, soilDataID int64, topography string) ([]models.SoilConservationPractice, error) {
	q := api.NewQuery().Add("soil_data_id", fmt.Sprint(soilDataID)).String("topography", topography)

	var resp []models.SoilConservationPractice
	if err := s.api.Get(ctx, q.Path("/soil/conservation-practices"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *soilService) RegionalSoilTypes(ctx context.Context, state, district string) (*models.RegionalSoilTypes, error) {
	q := api.NewQuery().Add("state", state).String("district", district)

	var resp models.RegionalSoilTypes
	if err := s.api.Get(ctx, q.Path("/soil/regional-types"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
