// Package models defines the JSON request/response shapes exchanged with the
// agroassist backend. They are plain data contracts with no behaviour.
package models

// User is an authenticated account as returned by GET /auth/profile.
//
// Optional fields are pointers or omitempty slices so that a profile the
// server sends without them decodes to nil rather than a zero value.
type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email,omitempty"`

	FullName          *string `json:"full_name,omitempty"`
	PreferredLanguage *string `json:"preferred_language,omitempty"`
	State             *string `json:"state,omitempty"`
	District          *string `json:"district,omitempty"`
	Village           *string `json:"village,omitempty"`

	// Farm profile.
	FarmLocation *string  `json:"farm_location,omitempty"`
	FarmSize     *float64 `json:"farm_size,omitempty"`
	FarmSizeUnit *string  `json:"farm_size_unit,omitempty"`
	Crops        []string `json:"crops,omitempty"`
	Livestock    []string `json:"livestock,omitempty"`
	SoilType     *string  `json:"soil_type,omitempty"`

	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login,omitempty"`
}

// ProfileUpdate is the body of PUT /auth/profile. Only non-nil fields are
// serialized, so the server receives exactly the fields the caller supplied.
type ProfileUpdate struct {
	Username          *string  `json:"username,omitempty"`
	Email             *string  `json:"email,omitempty"`
	FullName          *string  `json:"full_name,omitempty"`
	PreferredLanguage *string  `json:"preferred_language,omitempty"`
	State             *string  `json:"state,omitempty"`
	District          *string  `json:"district,omitempty"`
	Village           *string  `json:"village,omitempty"`
	FarmLocation      *string  `json:"farm_location,omitempty"`
	FarmSize          *float64 `json:"farm_size,omitempty"`
	FarmSizeUnit      *string  `json:"farm_size_unit,omitempty"`
	Crops             []string `json:"crops,omitempty"`
	Livestock         []string `json:"livestock,omitempty"`
	SoilType          *string  `json:"soil_type,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.FullName == nil &&
		p.PreferredLanguage == nil && p.State == nil && p.District == nil &&
		p.Village == nil && p.FarmLocation == nil && p.FarmSize == nil &&
		p.FarmSizeUnit == nil && p.Crops == nil && p.Livestock == nil &&
		p.SoilType == nil
}

type RegisterRequest struct {
	Username          string   `json:"username"`
	PhoneNumber       string   `json:"phone_number"`
	Password          string   `json:"password"`
	Email             string   `json:"email,omitempty"`
	PreferredLanguage string   `json:"preferred_language,omitempty"`
	State             string   `json:"state,omitempty"`
	District          string   `json:"district,omitempty"`
	Village           string   `json:"village,omitempty"`
	FarmSize          *float64 `json:"farm_size,omitempty"`
	FarmSizeUnit      string   `json:"farm_size_unit,omitempty"`
}

// LoginRequest identifies the account by phone number, email or username;
// only the identifiers that are set are sent.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password"`
}

// AuthUser is the abbreviated user echoed by login and register.
type AuthUser struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email,omitempty"`
}

type AuthResponse struct {
	User        AuthUser `json:"user"`
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
}

type ProfileUpdateResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type TokenCheck struct {
	Valid  bool  `json:"valid"`
	UserID int64 `json:"user_id"`
}

// MessageResponse is the bare {"message": ...} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
