package models

type WeatherCondition struct {
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WeatherLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

type CurrentWeather struct {
	TempC     float64          `json:"temp_c"`
	TempF     float64          `json:"temp_f"`
	Condition WeatherCondition `json:"condition"`
	WindKph   float64          `json:"wind_kph"`
	WindDir   string           `json:"wind_dir"`
	Humidity  float64          `json:"humidity"`
	PrecipMM  float64          `json:"precip_mm"`
	Cloud     float64          `json:"cloud"`
	UV        float64          `json:"uv"`
}

type WeatherData struct {
	Location WeatherLocation `json:"location"`
	Current  CurrentWeather  `json:"current"`
}

type ForecastDaySummary struct {
	MaxTempC    float64          `json:"maxtemp_c"`
	MinTempC    float64          `json:"mintemp_c"`
	TotalRainMM float64          `json:"totalrain_mm"`
	Condition   WeatherCondition `json:"condition"`
	UV          float64          `json:"uv"`
}

type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type ForecastHour struct {
	Time         string           `json:"time"`
	TempC        float64          `json:"temp_c"`
	Condition    WeatherCondition `json:"condition"`
	WindKph      float64          `json:"wind_kph"`
	WindDir      string           `json:"wind_dir"`
	Humidity     float64          `json:"humidity"`
	PrecipMM     float64          `json:"precip_mm"`
	WillItRain   int              `json:"will_it_rain"`
	ChanceOfRain float64          `json:"chance_of_rain"`
}

type ForecastDay struct {
	Date      string             `json:"date"`
	DateEpoch int64              `json:"date_epoch"`
	Day       ForecastDaySummary `json:"day"`
	Astro     Astro              `json:"astro"`
	Hour      []ForecastHour     `json:"hour"`
}

type ForecastData struct {
	WeatherData
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type WeatherAlert struct {
	Title       string `json:"title"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type WeatherAlerts struct {
	Location string         `json:"location"`
	Alerts   []WeatherAlert `json:"alerts"`
}

type WeatherAdvisory struct {
	Crop     string `json:"crop"`
	Advisory string `json:"advisory"`
}
