package models

// Range is a min/max pair with a unit, used for temperatures, durations and
// the like.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit,omitempty"`
}

type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Crop struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	ScientificName     string     `json:"scientific_name"`
	Category           string     `json:"category"`
	Description        string     `json:"description,omitempty"`
	GrowingSeason      []string   `json:"growing_season"`
	WaterRequirement   string     `json:"water_requirement"`
	TemperatureRange   Range      `json:"temperature_range"`
	GrowthDuration     Range      `json:"growth_duration"`
	PreferredSoilTypes []string   `json:"preferred_soil_types"`
	Nutrients          []Nutrient `json:"nutrients"`
}

type CropPest struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	ScientificName     string   `json:"scientific_name"`
	Description        string   `json:"description"`
	AffectedCrops      []string `json:"affected_crops"`
	Symptoms           []string `json:"symptoms"`
	ControlMeasures    []string `json:"control_measures"`
	PreventionMeasures []string `json:"prevention_measures"`
	Images             []string `json:"images,omitempty"`
}

type CropDisease struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name"`
	CausalAgent    string   `json:"causal_agent"`
	Description    string   `json:"description"`
	AffectedCrops  []string `json:"affected_crops"`
	Symptoms       []string `json:"symptoms"`
	Treatment      []string `json:"treatment"`
	Prevention     []string `json:"prevention"`
	Images         []string `json:"images,omitempty"`
}

type CropStage struct {
	ID                  int64    `json:"id"`
	Crop                string   `json:"crop"`
	StageName           string   `json:"stage_name"`
	Description         string   `json:"description"`
	Duration            Range    `json:"duration"`
	WaterRequirement    string   `json:"water_requirement"`
	NutrientRequirement string   `json:"nutrient_requirement"`
	CommonIssues        []string `json:"common_issues"`
	CareTips            []string `json:"care_tips"`
	Images              []string `json:"images,omitempty"`
}

type DateWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ScheduleStage struct {
	Name       string   `json:"name"`
	StartDays  int      `json:"start_days"`
	EndDays    int      `json:"end_days"`
	Activities []string `json:"activities"`
}

type CropSchedule struct {
	Crop           string          `json:"crop"`
	Variety        string          `json:"variety,omitempty"`
	Region         string          `json:"region"`
	PlantingWindow DateWindow      `json:"planting_window"`
	HarvestWindow  DateWindow      `json:"harvest_window"`
	KeyStages      []ScheduleStage `json:"key_stages"`
}

type CropVariety struct {
	Name              string   `json:"name"`
	Suitability       float64  `json:"suitability"`
	YieldPotential    string   `json:"yield_potential"`
	DiseaseResistance string   `json:"disease_resistance"`
	MaturityDays      int      `json:"maturity_days"`
	SpecialFeatures   []string `json:"special_features"`
}

type VarietyRecommendations struct {
	Crop      string        `json:"crop"`
	Varieties []CropVariety `json:"varieties"`
}
