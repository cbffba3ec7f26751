package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

type VarietyQuery struct {
	Crop     string
	State    string
	District string
	SoilType string
	Purpose  string
}

type CropService interface {
	Crops(ctx context.Context, category string) ([]models.Crop, error)
	CropDetails(ctx context.Context, id int64) (*models.Crop, error)
	Pests(ctx context.Context, crop string) ([]models.CropPest, error)
	Diseases(ctx context.Context, crop string) ([]models.CropDisease, error)
	Stages(ctx context.Context, crop string) ([]models.CropStage, error)
	Schedule(ctx context.Context, crop, region, variety string) (*models.CropSchedule, error)
	VarietyRecommendations(ctx context.Context, q VarietyQuery) (*models.VarietyRecommendations, error)
}

type cropService struct {
	api Requester
}

func NewCropService(r Requester) CropService {
	return &cropService{api: r}
}

func (c *cropService) Crops(ctx context.Context, category string) ([]models.Crop, error) {
	q := api.NewQuery().String("category", category)

	var resp []models.Crop
	if err := c.api.Get(ctx, q.Path("/crops"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *cropService) CropDetails(ctx context.Context, id int64) (*models.Crop, error) {
	var resp models.Crop
	if err := c.api.Get(ctx, fmt.Sprintf("/crops/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *cropService) Pests(ctx context.Context, crop string) ([]models.CropPest, error) {
	var resp []models.CropPest
	if err := c.api.Get(ctx, byCrop("/crops/pests", crop), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *cropService) Diseases(ctx context.Context, crop string) ([]models.CropDisease, error) {
	var resp []models.CropDisease
	if err := c.api.Get(ctx, byCrop("/crops/diseases", crop), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *cropService) Stages(ctx context.Context, crop string) ([]models.CropStage, error) {
	var resp []models.CropStage
	if err := c.api.Get(ctx, byCrop("/crops/stages", crop), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *cropService) Schedule(ctx context.Context, crop, region, variety string) (*models.CropSchedule, error) {
	q := api.NewQuery().Add("crop", crop).Add("region", region).String("variety", variety)

	var resp models.CropSchedule
	if err := c.api.Get(ctx, q.Path("/crops/schedule"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *cropService) VarietyRecommendations(ctx context.Context, vq VarietyQuery) (*models.VarietyRecommendations, error) {
	q := api.NewQuery().
		Add("crop", vq.Crop).
		Add("state", vq.State).
		String("district", vq.District).
		String("soil_type", vq.SoilType).
		String("purpose", vq.Purpose)

	var resp models.VarietyRecommendations
	if err := c.api.Get(ctx, q.Path("/crops/varieties"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func byCrop(path, crop string) string {
	return api.NewQuery().Add("crop", crop).Path(path)
}
