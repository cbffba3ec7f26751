package models

type SoilLocation struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	State     string   `json:"state"`
	District  string   `json:"district"`
	Village   string   `json:"village,omitempty"`
}

// SoilNutrients holds macro nutrients, always present, and optional micro
// nutrients.
type SoilNutrients struct {
	Nitrogen   float64  `json:"nitrogen"`
	Phosphorus float64  `json:"phosphorus"`
	Potassium  float64  `json:"potassium"`
	Calcium    *float64 `json:"calcium,omitempty"`
	Magnesium  *float64 `json:"magnesium,omitempty"`
	Sulfur     *float64 `json:"sulfur,omitempty"`
	Zinc       *float64 `json:"zinc,omitempty"`
	Iron       *float64 `json:"iron,omitempty"`
	Manganese  *float64 `json:"manganese,omitempty"`
	Copper     *float64 `json:"copper,omitempty"`
	Boron      *float64 `json:"boron,omitempty"`
}

// SoilSample is the body of POST /soil/data.
type SoilSample struct {
	Location               SoilLocation  `json:"location"`
	SampleDate             string        `json:"sample_date"`
	SoilType               string        `json:"soil_type"`
	Texture                string        `json:"texture"`
	Color                  string        `json:"color"`
	PHLevel                float64       `json:"ph_level"`
	OrganicMatter          float64       `json:"organic_matter"`
	Nutrients              SoilNutrients `json:"nutrients"`
	Salinity               *float64      `json:"salinity,omitempty"`
	MoistureContent        *float64      `json:"moisture_content,omitempty"`
	WaterHoldingCapacity   *float64      `json:"water_holding_capacity,omitempty"`
	CationExchangeCapacity *float64      `json:"cation_exchange_capacity,omitempty"`
}

// SoilData is a stored sample as returned by the server.
type SoilData struct {
	ID     int64 `json:"id,omitempty"`
	UserID int64 `json:"user_id,omitempty"`
	SoilSample
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type NutrientLevel struct {
	Nutrient   string  `json:"nutrient"`
	Level      float64 `json:"level"`
	IdealRange Range   `json:"ideal_range"`
	Severity   string  `json:"severity"`
}

type SoilRecommendation struct {
	Issue          string `json:"issue,omitempty"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
}

type SoilHealthReport struct {
	SoilData           SoilData             `json:"soil_data"`
	HealthScore        float64              `json:"health_score"`
	FertilityStatus    string               `json:"fertility_status"`
	DeficientNutrients []NutrientLevel      `json:"deficient_nutrients"`
	ExcessNutrients    []NutrientLevel      `json:"excess_nutrients"`
	Recommendations    []SoilRecommendation `json:"recommendations"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Cost struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type FertilizerAlternative struct {
	Name            string   `json:"name"`
	ApplicationRate Quantity `json:"application_rate"`
}

type Fertilizer struct {
	Name              string                  `json:"name"`
	Type              string                  `json:"type"`
	ApplicationRate   Quantity                `json:"application_rate"`
	ApplicationMethod string                  `json:"application_method"`
	Timing            string                  `json:"timing"`
	CostEstimate      *Cost                   `json:"cost_estimate,omitempty"`
	Alternatives      []FertilizerAlternative `json:"alternatives,omitempty"`
}

type SoilAmendment struct {
	Name            string   `json:"name"`
	Purpose         string   `json:"purpose"`
	ApplicationRate Quantity `json:"application_rate"`
	Notes           string   `json:"notes,omitempty"`
}

type FertilizerRecommendation struct {
	Crop                 string          `json:"crop"`
	SoilData             SoilData        `json:"soil_data"`
	Fertilizers          []Fertilizer    `json:"fertilizers"`
	AdditionalAmendments []SoilAmendment `json:"additional_amendments,omitempty"`
	Notes                string          `json:"notes,omitempty"`
}

type ConservationSuitability struct {
	SoilTypes  []string `json:"soil_types"`
	Topography []string `json:"topography"`
	FarmTypes  []string `json:"farm_types"`
}

type SoilConservationPractice struct {
	ID                  int64                   `json:"id"`
	Name                string                  `json:"name"`
	Description         string                  `json:"description"`
	Benefits            []string                `json:"benefits"`
	SuitableFor         ConservationSuitability `json:"suitable_for"`
	ImplementationSteps []string                `json:"implementation_steps"`
	CostLevel           string                  `json:"cost_level"`
	TimeToBenefit       string                  `json:"time_to_benefit"`
	ResourcesNeeded     []string                `json:"resources_needed"`
	SuccessIndicators   []string                `json:"success_indicators"`
	Images              []string                `json:"images,omitempty"`
}

type SoilCharacteristics struct {
	Texture        string   `json:"texture"`
	Color          string   `json:"color"`
	TypicalPHRange Range    `json:"typical_ph_range"`
	Fertility      string   `json:"fertility"`
	SuitableCrops  []string `json:"suitable_crops"`
	Challenges     []string `json:"challenges"`
	ManagementTips []string `json:"management_tips"`
}

type RegionalSoilType struct {
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Characteristics    SoilCharacteristics `json:"characteristics"`
	PercentageOfRegion *float64            `json:"percentage_of_region,omitempty"`
}

type Region struct {
	State    string `json:"state"`
	District string `json:"district,omitempty"`
}

type RegionalSoilTypes struct {
	Region    Region             `json:"region"`
	SoilTypes []RegionalSoilType `json:"soil_types"`
}
